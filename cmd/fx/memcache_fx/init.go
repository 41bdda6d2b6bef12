package memcache_fx

import (
	"go.uber.org/fx"

	mem "github.com/ogghostdeveloper/Tourism-sub000/pkg/memcache"
)

var Module = fx.Provide(provideSessionStore)

func provideSessionStore() mem.BuilderSessionStore {
	return mem.NewBuilderSessions()
}

package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"github.com/ogghostdeveloper/Tourism-sub000/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {
	port := 587 // STARTTLS; use 465 with UseSSL=true for SMTPS
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Tourism Desk",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName:       "Tourism Desk",
		OperatorEmail: os.Getenv("OPERATOR_EMAIL"),
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
	}

	return mailService
}

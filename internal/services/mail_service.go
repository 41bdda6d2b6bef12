// services/mail_service.go
package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendBookingConfirmation(to, travelerName, bookingRef string) error
	SendOperatorNotification(bookingRef, summary string) error
}

// SMTPConfig holds the SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // 587 (STARTTLS) or 465 (SMTPS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@example.com"
	FromName   string // display name
	UseSSL     bool   // true for SMTPS 465, false for STARTTLS 587
	RequireTLS bool   // if true, fail when STARTTLS is unavailable

	AppName       string
	OperatorEmail string // where enquiry notifications land
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl := template.Must(template.New("bookingHTML").Parse(bookingHTMLTemplate))
	textTpl := template.Must(template.New("bookingText").Parse(bookingTextTemplate))

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendBookingConfirmation(to, travelerName, bookingRef string) error {
	subject := "We received your custom itinerary"
	html, text, err := s.renderEmail(mailData{
		Title: subject,
		Intro: fmt.Sprintf(
			"Hi %s, thank you for planning your trip with us. Your enquiry %s is pending review; our team will get back to you within one working day.",
			travelerName, bookingRef),
		Reference: bookingRef,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendOperatorNotification(bookingRef, summary string) error {
	subject := fmt.Sprintf("New itinerary enquiry %s", bookingRef)
	html, text, err := s.renderEmail(mailData{
		Title:     subject,
		Intro:     fmt.Sprintf("A new custom itinerary was submitted: %s.", summary),
		Reference: bookingRef,
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(s.cfg.OperatorEmail, subject, html, text)
}

// ------------------- Rendering -------------------

type mailData struct {
	Title     string
	Intro     string
	Reference string
	AppName   string
	Year      int
}

const bookingHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f6f8; color: #1f2933;
      font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff;
      border-radius: 12px; overflow: hidden; box-shadow: 0 4px 16px rgba(0,0,0,0.08); }
    .header { padding: 24px 32px; background: #14532d; }
    .brand { font-weight: 700; letter-spacing: 0.5px; font-size: 20px; color: #ecfdf5; text-transform: uppercase; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; color: #14532d; }
    p { margin: 0 0 16px; line-height: 1.6; color: #3e4c59; }
    .ref { display: inline-block; padding: 8px 16px; background: #f0fdf4;
      border: 1px solid #bbf7d0; border-radius: 8px; font-family: monospace; }
    .footer { padding: 20px 32px; color: #7b8794; font-size: 13px;
      text-align: center; border-top: 1px solid #e4e7eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header"><div class="brand">{{.AppName}}</div></div>
    <div class="hero">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .Reference}}<p class="ref">{{.Reference}}</p>{{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}. All rights reserved.</div>
  </div>
</body>
</html>`

const bookingTextTemplate = `{{.Title}}

{{.Intro}}

{{if .Reference}}Reference: {{.Reference}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data mailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	fromHeader := s.formatFromHeader()
	date := time.Now().Format(time.RFC1123Z)
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	// Headers
	write("From: %s\r\n", fromHeader)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", date)
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	// Plaintext part
	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	// HTML part
	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 7bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	// End
	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	if s.cfg.UseSSL {
		// SMTPS (implicit TLS, usually port 465)
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		conn, err := tls.Dial("tcp", addr, tlsCfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		c, err := smtp.NewClient(conn, s.cfg.Host)
		if err != nil {
			return err
		}
		defer c.Quit()

		return s.push(c, auth, to, msg.Bytes())
	}

	// STARTTLS path (typically port 587)
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	return s.push(c, auth, to, msg.Bytes())
}

func (s *smtpMailService) push(c *smtp.Client, auth smtp.Auth, to string, msg []byte) error {
	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), s.cfg.From)
}

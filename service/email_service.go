package service

import (
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strings"

	"formulario-clientes/models"
)

// defaultEmailTemplate is used when no template file is configured.
// Placeholders: {{name}}, {{phone}}, {{additionalNotes}}, {{logo}},
// {{products}}.
const defaultEmailTemplate = `<html>
  <body>
    <h2>Thank you for your submission!</h2>
    <p>Dear {{name}},</p>
    <p>We received your information and will be in touch shortly.</p>
    <p>Phone: {{phone}}</p>
    <p>Notes: {{additionalNotes}}</p>
    <h3>Our products</h3>
    {{products}}
    <p><img src="{{logo}}" alt="Your logo" width="120"></p>
  </body>
</html>
`

// EmailService sends templated thank-you emails over SMTP
type EmailService struct {
	host     string
	port     string
	username string
	password string
	from     string
	subject  string
	template string
}

// NewEmailService creates a new EmailService from environment configuration.
// When EMAIL_TEMPLATE_PATH is set, the template is read once at startup;
// otherwise the built-in default is used.
func NewEmailService() (*EmailService, error) {
	tmpl := defaultEmailTemplate
	if path := os.Getenv("EMAIL_TEMPLATE_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read email template: %w", err)
		}
		tmpl = string(data)
		log.Printf("✅ EmailService: Loaded email template from %s", path)
	}

	subject := os.Getenv("EMAIL_SUBJECT")
	if subject == "" {
		subject = "Thank you for contacting us"
	}

	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	return &EmailService{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     os.Getenv("SMTP_FROM"),
		subject:  subject,
		template: tmpl,
	}, nil
}

// Ensure EmailService implements EmailServiceInterface
var _ EmailServiceInterface = (*EmailService)(nil)

// ApplyTemplate substitutes the thank-you placeholders. Every client-derived
// value is HTML-escaped before insertion; the products fragment is inserted
// as-is because the catalog renderer already escaped it.
func ApplyTemplate(tmpl string, client *models.Client, productsHTML string) string {
	replacer := strings.NewReplacer(
		"{{name}}", template.HTMLEscapeString(client.Name),
		"{{phone}}", template.HTMLEscapeString(client.Phone),
		"{{additionalNotes}}", template.HTMLEscapeString(client.AdditionalNotes),
		"{{logo}}", template.HTMLEscapeString(client.LogoURL),
		"{{products}}", productsHTML,
	)
	return replacer.Replace(tmpl)
}

// BuildMessage assembles the full RFC 5322 message for one recipient
func (s *EmailService) BuildMessage(to string, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + s.subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}

// SendThankYou delivers the thank-you email to the client
func (s *EmailService) SendThankYou(ctx context.Context, client *models.Client, productsHTML string) error {
	if client.Email == "" {
		return fmt.Errorf("client %d has no email address", client.ID)
	}
	if s.host == "" || s.from == "" {
		return fmt.Errorf("SMTP is not configured. Set SMTP_HOST and SMTP_FROM")
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	body := ApplyTemplate(s.template, client, productsHTML)
	msg := s.BuildMessage(client.Email, body)

	addr := s.host + ":" + s.port
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.from, []string{client.Email}, msg); err != nil {
		return fmt.Errorf("failed to send thank-you email: %w", err)
	}

	log.Printf("✅ SendThankYou: Email sent to %s (client %d)", client.Email, client.ID)
	return nil
}

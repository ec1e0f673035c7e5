package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resendlabs/resend-go"
	"go.uber.org/zap"
)

const welcomeTemplate = `
<h2>Welcome to CampusConnect, {{.Name}}!</h2>
<p>Your account is ready. Browse upcoming campus events and pick your interests
to get personal recommendations.</p>
`

const organizerVerifiedTemplate = `
<h2>You are now a verified organizer</h2>
<p>Hi {{.Name}}, an administrator has verified your organizer account.
Your events now carry a verified badge.</p>
`

// EmailService sends transactional mail through Resend. With an empty API key
// it logs and skips sending, which keeps local development mail-free.
type EmailService struct {
	client   *resend.Client
	from     string
	fromName string
	logger   *zap.Logger
}

func NewEmailService(apiKey, from, fromName string, logger *zap.Logger) *EmailService {
	var client *resend.Client
	if apiKey != "" {
		client = resend.NewClient(apiKey)
	}
	return &EmailService{
		client:   client,
		from:     from,
		fromName: fromName,
		logger:   logger,
	}
}

func (s *EmailService) SendWelcomeEmail(to, name string) error {
	return s.send(to, name, "Welcome to CampusConnect!", welcomeTemplate)
}

func (s *EmailService) SendOrganizerVerifiedEmail(to, name string) error {
	return s.send(to, name, "Your organizer account has been verified", organizerVerifiedTemplate)
}

func (s *EmailService) send(to, name, subject, tmpl string) error {
	if s.client == nil {
		s.logger.Info("email sending disabled, skipping",
			zap.String("to", to),
			zap.String("subject", subject),
		)
		return nil
	}

	html, err := renderTemplate(tmpl, map[string]interface{}{"Name": name})
	if err != nil {
		s.logger.Error("email template render failed", zap.Error(err))
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.fromName + " <" + s.from + ">",
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}
	if _, err := s.client.Emails.Send(params); err != nil {
		s.logger.Error("email send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package email

import (
	"fmt"

	"crewboard_backend/internal/logger"

	"gopkg.in/gomail.v2"
)

// GomailSender delivers mail over SMTP via gomail.
type GomailSender struct {
	config    Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewGomailSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	return &GomailSender{
		config:    config,
		templates: tm,
		dialer:    gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password),
	}, nil
}

func (s *GomailSender) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromEmail, s.config.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	if msg.Body != "" {
		m.SetBody("text/plain", msg.Body)
	}
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	return s.dialer.DialAndSend(m)
}

func (s *GomailSender) SendMagicLink(to, actionURL string, ttlMinutes int) error {
	html, err := s.templates.Render("magic_link", MagicLinkData{
		ActionURL:  actionURL,
		TTLMinutes: ttlMinutes,
	})
	if err != nil {
		return err
	}

	return s.Send(&Message{
		To:       []string{to},
		Subject:  "Sign in to CrewBoard",
		Body:     "Sign in to CrewBoard: " + actionURL,
		HTMLBody: html,
	})
}

func (s *GomailSender) SendApplicationStatus(to, crewName, jobTitle, orgName, status string) error {
	html, err := s.templates.Render("application_status", ApplicationStatusData{
		CrewName: crewName,
		JobTitle: jobTitle,
		OrgName:  orgName,
		Status:   status,
	})
	if err != nil {
		return err
	}

	return s.Send(&Message{
		To:       []string{to},
		Subject:  fmt.Sprintf("Your application for %s", jobTitle),
		Body:     fmt.Sprintf("Your application for %s at %s is now %s.", jobTitle, orgName, status),
		HTMLBody: html,
	})
}

// LogSender is a no-op Sender used in development and tests. It only logs.
type LogSender struct{}

func (s *LogSender) Send(msg *Message) error {
	logger.Info("email (log sender)", "to", msg.To, "subject", msg.Subject)
	return nil
}

func (s *LogSender) SendMagicLink(to, actionURL string, ttlMinutes int) error {
	logger.Info("magic link (log sender)", "to", to, "url", actionURL)
	return nil
}

func (s *LogSender) SendApplicationStatus(to, crewName, jobTitle, orgName, status string) error {
	logger.Info("application status mail (log sender)", "to", to, "job", jobTitle, "status", status)
	return nil
}

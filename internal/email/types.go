package email

import "fmt"

// Message is an outbound email.
type Message struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Config for the SMTP sender.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c Config) Validate() error {
	if c.SMTPHost == "" {
		return fmt.Errorf("smtp host is required")
	}
	if c.SMTPPort == 0 {
		return fmt.Errorf("smtp port is required")
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// MagicLinkData feeds the magic-link template.
type MagicLinkData struct {
	ActionURL  string
	TTLMinutes int
}

// ApplicationStatusData feeds the application-status template.
type ApplicationStatusData struct {
	CrewName   string
	JobTitle   string
	OrgName    string
	Status     string
}

// Sender delivers transactional mail.
type Sender interface {
	Send(msg *Message) error
	SendMagicLink(to, actionURL string, ttlMinutes int) error
	SendApplicationStatus(to, crewName, jobTitle, orgName, status string) error
}

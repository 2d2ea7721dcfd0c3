package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/aea-eng/aea-backend/internal/domain"
)

// Mailer is the interface for sending emails
type Mailer interface {
	// SendContactNotification notifies the business inbox of a new
	// contact form submission
	SendContactNotification(to string, submission *domain.ContactSubmission) error
}

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer implements the Mailer interface using SMTP
type SMTPMailer struct {
	config   *Config
	testMode bool
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: false,
	}
}

// NewTestSMTPMailer creates a new SMTP mailer in test mode (won't connect to SMTP server)
func NewTestSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{
		config:   config,
		testMode: true,
	}
}

// SendContactNotification sends the new-submission notification email
func (m *SMTPMailer) SendContactNotification(to string, submission *domain.ContactSubmission) error {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set email from address: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("failed to set email recipient: %w", err)
	}

	if err := msg.ReplyTo(submission.Email); err != nil {
		return fmt.Errorf("failed to set reply-to address: %w", err)
	}

	subject := fmt.Sprintf("New contact form submission: %s", submission.Subject)
	msg.Subject(subject)

	htmlBody := fmt.Sprintf(`
	<html>
		<body>
			<h1>New contact form submission</h1>
			<p><strong>From:</strong> %s &lt;%s&gt;</p>
			<p><strong>Subject:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
			<p>Reply directly to this email to answer.</p>
		</body>
	</html>`, submission.Name, submission.Email, submission.Subject, submission.Message)

	plainBody := fmt.Sprintf(
		"New contact form submission\n\n"+
			"From: %s <%s>\n"+
			"Subject: %s\n\n"+
			"%s\n\n"+
			"Reply directly to this email to answer.",
		submission.Name, submission.Email, submission.Subject, submission.Message)

	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	// For testing - log information if client is nil
	if client == nil {
		log.Printf("Sending contact notification to: %s", to)
		log.Printf("From: %s <%s>", m.config.FromName, m.config.FromEmail)
		log.Printf("Subject: %s", subject)
		return nil
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send contact notification email: %w", err)
	}

	return nil
}

// createSMTPClient creates and configures a new SMTP client
func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	// In test mode, return nil client to avoid SMTP connections
	if m.testMode {
		return nil, nil
	}

	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Only add authentication if username and password are provided
	// This allows for unauthenticated SMTP servers (e.g., local relays, port 25)
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer is a development implementation that just logs emails
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer for development
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendContactNotification logs the submission details to console
func (m *ConsoleMailer) SendContactNotification(to string, submission *domain.ContactSubmission) error {
	fmt.Println("==============================================================")
	fmt.Println("               CONTACT FORM NOTIFICATION EMAIL                ")
	fmt.Println("==============================================================")
	fmt.Printf("To: %s\n", to)
	fmt.Printf("Subject: New contact form submission: %s\n\n", submission.Subject)
	fmt.Println("Email Content:")
	fmt.Printf("From: %s <%s>\n\n", submission.Name, submission.Email)
	fmt.Printf("%s\n", submission.Message)
	fmt.Println("==============================================================")

	return nil
}

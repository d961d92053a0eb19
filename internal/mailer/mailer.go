package mailer

import (
	"fmt"
	"log"
	"net"
	"net/smtp"
	"time"

	"helpdesk/internal/config"
)

const verifyTimeout = 10 * time.Second

// Mailer is the process-wide mail relay client. It is constructed once at
// startup and has no teardown beyond process exit.
type Mailer struct {
	cfg *config.EmailConfig
}

// New creates a mailer over the configured SMTP relay.
func New(cfg *config.EmailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// Verify dials the relay and issues a NOOP as a startup diagnostic. A
// failure here is for operator visibility only; serving requests never
// blocks on it.
func (m *Mailer) Verify() error {
	if !m.cfg.Enabled {
		log.Printf("mailer_verify skipped=true reason=disabled")
		return nil
	}

	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))
	conn, err := net.DialTimeout("tcp", addr, verifyTimeout)
	if err != nil {
		return fmt.Errorf("dial relay %s: %w", addr, err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake with %s: %w", addr, err)
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("smtp noop: %w", err)
	}
	return client.Quit()
}

// Send dispatches one HTML email with plain-text fallback from the
// service account to the helpdesk address. A single attempt is made; the
// caller decides what a failure means.
func (m *Mailer) Send(subject, htmlBody, textBody string) error {
	if !m.cfg.Enabled {
		log.Printf("mailer_send skipped=true subject=%q", subject)
		return nil
	}

	if m.cfg.Host == "" || m.cfg.Username == "" || m.cfg.Password == "" {
		return fmt.Errorf("mailer not properly configured")
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	message := buildMessage(m.cfg.Username, m.cfg.HelpdeskEmail, subject, htmlBody, textBody)

	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))
	if err := smtp.SendMail(addr, auth, m.cfg.Username, []string{m.cfg.HelpdeskEmail}, message); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// buildMessage assembles a multipart/alternative message with a plain
// text part and, when provided, an HTML part.
func buildMessage(from, to, subject, htmlBody, textBody string) []byte {
	boundary := "----=_NextPart_1234567890"

	message := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		textBody + "\r\n"

	if htmlBody != "" {
		message += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	message += fmt.Sprintf("--%s--\r\n", boundary)
	return []byte(message)
}

package services

import (
	"fmt"
	"html"
	"log"
	"net/smtp"
	"strings"
)

type EmailService struct {
	host    string
	port    string
	user    string
	pass    string
	from    string
	devMode bool
}

func NewEmailService(host, port, user, pass, from string) *EmailService {
	devMode := host == "" || user == ""
	if devMode {
		log.Println("⚠ Email service running in DEV MODE (logging to console)")
	}
	return &EmailService{
		host:    host,
		port:    port,
		user:    user,
		pass:    pass,
		from:    from,
		devMode: devMode,
	}
}

// SendContactEmail relays a contact form submission to the portfolio
// owner's inbox. One blocking SMTP call; no retry, no queue.
func (s *EmailService) SendContactEmail(to, name, email, subject, message string) error {
	if subject == "" {
		subject = "New Contact Form Submission"
	}

	body := fmt.Sprintf(`<p><b>Name:</b> %s</p><p><b>Email:</b> %s</p><p><b>Message:</b><br/>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		strings.ReplaceAll(html.EscapeString(message), "\n", "<br/>"))

	return s.sendHTML(to, subject, body)
}

func (s *EmailService) sendHTML(to, subject, htmlBody string) error {
	if s.devMode {
		log.Printf("📧 [DEV EMAIL] To: %s | Subject: %s", to, subject)
		log.Printf("📧 Body:\n%s", htmlBody)
		return nil
	}

	headers := []string{
		fmt.Sprintf("From: %s", s.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
	}

	message := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)

	err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(message))
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	log.Printf("📧 Email sent to %s: %s", to, subject)
	return nil
}

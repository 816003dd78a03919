package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendFeedbackAlert(toEmail, subProjectName, company, rating string) error
	SendShareLink(toEmails []string, shareURL, subject, message string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)
	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendFeedbackAlert(toEmail, subProjectName, company, rating string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New feedback on %s", subProjectName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Feedback Received</h2>
			<p><strong>%s</strong> left a <strong>%s</strong> on subproject <strong>%s</strong>.</p>
			<p>Log in to review and approve or reject it.</p>
		</div>
	`, company, rating, subProjectName)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send feedback alert to %s: %v\n", toEmail, err)
		return err
	}
	return nil
}

func (s *emailService) SendShareLink(toEmails []string, shareURL, subject, message string) error {
	if subject == "" {
		subject = "Share this link"
	}
	if message == "" {
		message = "Check out this shared content:"
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", strings.Join(toEmails, ","))
	m.SetHeader("Subject", subject)

	body := fmt.Sprintf(`
		<h2>Shared Content</h2>
		<p>%s</p>
		<a href="%s" style="background-color: #007bff; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Open Link</a>
	`, message, shareURL)

	m.SetBody("text/html", body)
	m.AddAlternative("text/plain", fmt.Sprintf("%s\n%s", message, shareURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send share link: %v\n", err)
		return err
	}
	return nil
}

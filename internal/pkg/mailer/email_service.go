package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendCrisisAlert(sessionID, jurisdiction string, resourceCount int) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	alertEmail  string
}

func NewEmailService(host string, port int, username, password, senderName, alertEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
		alertEmail:  alertEmail,
	}
}

// SendCrisisAlert notifies the on-call inbox that a session was
// escalated. The user's message content is never included.
func (s *emailService) SendCrisisAlert(sessionID, jurisdiction string, resourceCount int) error {
	if s.alertEmail == "" {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", s.alertEmail)
	m.SetHeader("Subject", "Crisis escalation triggered")

	if jurisdiction == "" {
		jurisdiction = "not specified"
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Crisis escalation</h2>
			<p>A chat session was escalated by the safety gate.</p>
			<ul>
				<li>Session: %s</li>
				<li>Jurisdiction: %s</li>
				<li>Resources surfaced: %d</li>
			</ul>
			<p>Message content is withheld from this alert. Review the session in the admin console if follow-up is needed.</p>
		</div>
	`, sessionID, jurisdiction, resourceCount)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send crisis alert for session %s: %v\n", sessionID, err)
		return err
	}

	fmt.Printf("[MAILER] Crisis alert sent for session %s\n", sessionID)
	return nil
}

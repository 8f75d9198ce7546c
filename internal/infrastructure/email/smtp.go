package email

import (
	"context"
	"fmt"
	"net/smtp"
)

// LeadNotificationData carries what the sales team needs to follow up on a
// freshly captured lead.
type LeadNotificationData struct {
	To        string
	PerkTitle string
	Vendor    string
	Email     string
	CreatedAt string
}

type EmailService interface {
	SendLeadNotification(ctx context.Context, data LeadNotificationData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(host, port, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: host + ":" + port,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendLeadNotification(ctx context.Context, data LeadNotificationData) error {
	subject := fmt.Sprintf("New lead for %s", data.PerkTitle)
	body := fmt.Sprintf(`A new lead was submitted.

Perk:     %s
Vendor:   %s
Email:    %s
Received: %s

Open the admin dashboard to view the full submission.`,
		data.PerkTitle, data.Vendor, data.Email, data.CreatedAt)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, data.To, subject, body))

	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{data.To}, msg)
}

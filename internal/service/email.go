package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/circlesapp/server/internal/config"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailService{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.User,
		password: cfg.Password,
		from:     cfg.From,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendWelcome(ctx context.Context, email, name string) error {
	body := fmt.Sprintf("Hello %s,\n\nWelcome to Circles! Your account is ready.\n\nBest regards,\nThe Circles Team", name)
	return s.send(email, "Welcome to Circles", body)
}

func (s *emailService) SendAcceptance(ctx context.Context, email, name, clubName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour application to the club '%s' has been accepted. You are now a member.\n\nBest regards,\nThe Circles Team", name, clubName)
	return s.send(email, fmt.Sprintf("Accepted to %s", clubName), body)
}

func (s *emailService) SendRejection(ctx context.Context, email, name, clubName string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour application to the club '%s' has been declined.\n\nBest regards,\nThe Circles Team", name, clubName)
	return s.send(email, fmt.Sprintf("Application update - %s", clubName), body)
}

// NopEmailService drops every message. Used when SMTP is not configured.
type NopEmailService struct{}

func (NopEmailService) SendWelcome(ctx context.Context, email, name string) error { return nil }
func (NopEmailService) SendAcceptance(ctx context.Context, email, name, clubName string) error {
	return nil
}
func (NopEmailService) SendRejection(ctx context.Context, email, name, clubName string) error {
	return nil
}

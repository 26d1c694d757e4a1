package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"vrms-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendVerificationCode(ctx context.Context, email, username, code string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your verification code")

	body := fmt.Sprintf("Hello %s,\n\nYour verification code is:\n\n%s\n\nIt expires in 15 minutes.\n\nBest regards,\nThe Rental Team", username, code)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}
	return nil
}

func (s *emailService) SendReceipt(ctx context.Context, email string, receipt *domain.Receipt) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Receipt %s", receipt.Number))

	body := fmt.Sprintf("Thank you for your payment.\n\nReceipt: %s\nAmount: $%.2f\nIssued: %s\n\nBest regards,\nThe Rental Team",
		receipt.Number, float64(receipt.AmountCents)/100, receipt.IssuedAt.Format("2006-01-02"))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send receipt email: %w", err)
	}
	return nil
}

func (s *emailService) SendOverdueNotice(ctx context.Context, email string, res domain.Reservation) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email)
	m.SetHeader("Subject", "Your rental is overdue")

	body := fmt.Sprintf("Your rental that started on %s was due back on %s.\n\nPlease return the vehicle or contact us to extend your reservation.\n\nBest regards,\nThe Rental Team",
		res.StartDate.Format("2006-01-02"), res.EndDate.Format("2006-01-02"))
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send overdue notice email: %w", err)
	}
	return nil
}

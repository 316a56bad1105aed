package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"hotelier-backend/internal/domain"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, toEmail string, booking *domain.Booking) error {
	subject := "Booking Received"
	body := fmt.Sprintf(
		"Your booking from %s to %s (%d night(s)) has been recorded with status %s.\n\nTotal price: %.2f\n\nBest regards,\nThe Hotelier Team",
		booking.CheckInDate, booking.CheckOutDate, booking.Duration(), booking.Status, booking.TotalPrice,
	)
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, toEmail string, booking *domain.Booking) error {
	subject := "Booking Cancelled"
	body := fmt.Sprintf(
		"Your booking from %s to %s has been cancelled.\n\nBest regards,\nThe Hotelier Team",
		booking.CheckInDate, booking.CheckOutDate,
	)
	return s.send(toEmail, subject, body)
}

func (s *emailService) SendCheckInReminder(ctx context.Context, toEmail string, booking *domain.Booking) error {
	subject := "Check-in Reminder"
	body := fmt.Sprintf(
		"Reminder: your stay starts on %s. We look forward to welcoming you.\n\nBest regards,\nThe Hotelier Team",
		booking.CheckInDate,
	)
	return s.send(toEmail, subject, body)
}

func (s *emailService) send(toEmail, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("", toEmail)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

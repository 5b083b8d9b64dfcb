package mailer

import (
	"context"
	"fmt"

	"github.com/avlnk/StudioBookingService/internal/domain"
)

// Notifier отправляет клиентам письма о событиях бронирования
type Notifier struct {
	client *Client
	logger Logger
}

// NewNotifier создает новый экземпляр Notifier
func NewNotifier(client *Client, logger Logger) *Notifier {
	return &Notifier{
		client: client,
		logger: logger,
	}
}

// SendBookingConfirmation отправляет письмо о создании бронирования
func (n *Notifier) SendBookingConfirmation(ctx context.Context, email string, booking *domain.BookingWithSession) error {
	subject, body, err := RenderConfirmation(emailData(booking))
	if err != nil {
		return fmt.Errorf("%w: SendBookingConfirmation - render: %v", ErrRenderTemplate, err)
	}

	if err := n.client.Send(ctx, email, subject, body); err != nil {
		return err
	}

	n.logger.Info("SendBookingConfirmation: sent email for booking id=%d to %s", booking.ID, email)
	return nil
}

// SendBookingCancellation отправляет письмо об отмене бронирования
func (n *Notifier) SendBookingCancellation(ctx context.Context, email string, booking *domain.BookingWithSession) error {
	subject, body, err := RenderCancellation(emailData(booking))
	if err != nil {
		return fmt.Errorf("%w: SendBookingCancellation - render: %v", ErrRenderTemplate, err)
	}

	if err := n.client.Send(ctx, email, subject, body); err != nil {
		return err
	}

	n.logger.Info("SendBookingCancellation: sent email for booking id=%d to %s", booking.ID, email)
	return nil
}

func emailData(b *domain.BookingWithSession) BookingEmailData {
	return BookingEmailData{
		BookingID:          b.ID,
		FullName:           b.FullName,
		SessionTypeName:    b.SessionTypeName,
		Date:               b.SessionDate,
		Time:               b.SessionTime.String(),
		DurationMinutes:    b.DurationMinutes,
		Price:              b.SessionTypePrice,
		MedicalConditions:  b.MedicalConditions,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
	}
}

package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// BookingEmailData данные бронирования для писем
type BookingEmailData struct {
	BookingID          int64
	FullName           string
	SessionTypeName    string
	Date               time.Time
	Time               string
	DurationMinutes    int
	Price              *float64
	MedicalConditions  *string
	CancellationReason *string
	CancelledAt        *time.Time
}

// FormattedDate дата сессии в человекочитаемом виде
func (d BookingEmailData) FormattedDate() string {
	return d.Date.Format("Monday, 2 January 2006")
}

// FormattedPrice цена с валютой, пустая строка если цена не задана
func (d BookingEmailData) FormattedPrice() string {
	if d.Price == nil {
		return ""
	}
	return fmt.Sprintf("IDR %.0f", *d.Price)
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Booking Received - Pilates Studio</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: #f8f9fa; padding: 20px; text-align: center; border-radius: 8px;">
            <h1>Booking Received</h1>
            <p>Your Pilates session has been booked</p>
        </div>
        <p>Dear {{.FullName}},</p>
        <p>Thank you for booking with Pilates Studio! Your session is reserved and pending confirmation.</p>
        <div style="background: #f8f9fa; padding: 15px; border-radius: 8px;">
            <h3>Booking Details</h3>
            <p><strong>Session:</strong> {{.SessionTypeName}}</p>
            <p><strong>Date:</strong> {{.FormattedDate}}</p>
            <p><strong>Time:</strong> {{.Time}}</p>
            <p><strong>Duration:</strong> {{.DurationMinutes}} minutes</p>
            <p><strong>Booking ID:</strong> {{.BookingID}}</p>
            {{if .Price}}<p><strong>Price:</strong> {{.FormattedPrice}}</p>{{end}}
        </div>
        {{if .MedicalConditions}}
        <div style="background: #fff3cd; padding: 15px; border-radius: 8px;">
            <h3>Medical Notes</h3>
            <p>{{.MedicalConditions}}</p>
        </div>
        {{end}}
        <h3>What to Bring</h3>
        <ul>
            <li>Comfortable workout clothes</li>
            <li>Water bottle</li>
            <li>Towel</li>
        </ul>
        <p>Please arrive 10 minutes early. If you need to cancel, contact us at least 24 hours in advance.</p>
        <div style="text-align: center; padding: 20px; color: #666; font-size: 14px;">
            <p>Pilates Studio - Your Wellness Journey Starts Here</p>
        </div>
    </div>
</body>
</html>`))

var cancellationTmpl = template.Must(template.New("cancellation").Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>Booking Cancelled - Pilates Studio</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
        <div style="background: #dc3545; color: white; padding: 20px; text-align: center; border-radius: 8px;">
            <h1>Booking Cancelled</h1>
        </div>
        <p>Dear {{.FullName}},</p>
        <p>We're writing to inform you that your Pilates session booking has been cancelled.</p>
        <div style="background: #f8f9fa; padding: 15px; border-radius: 8px;">
            <h3>Cancelled Booking Details</h3>
            <p><strong>Booking ID:</strong> {{.BookingID}}</p>
            <p><strong>Session:</strong> {{.SessionTypeName}}</p>
            <p><strong>Date:</strong> {{.FormattedDate}}</p>
            <p><strong>Time:</strong> {{.Time}}</p>
            {{if .CancellationReason}}<p><strong>Reason:</strong> {{.CancellationReason}}</p>{{end}}
        </div>
        <p>We apologize for any inconvenience. You're welcome to book another session that fits your schedule.</p>
        <div style="text-align: center; padding: 20px; color: #666; font-size: 14px;">
            <p>Pilates Studio - Your Wellness Journey Continues</p>
        </div>
    </div>
</body>
</html>`))

// RenderConfirmation рендерит письмо-подтверждение создания бронирования
func RenderConfirmation(data BookingEmailData) (subject, htmlBody string, err error) {
	var buf strings.Builder
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("%w: confirmation: %v", ErrRenderTemplate, err)
	}
	subject = fmt.Sprintf("Booking Received - %s on %s", data.SessionTypeName, data.Date.Format("2006-01-02"))
	return subject, buf.String(), nil
}

// RenderCancellation рендерит письмо об отмене бронирования
func RenderCancellation(data BookingEmailData) (subject, htmlBody string, err error) {
	var buf strings.Builder
	if err := cancellationTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("%w: cancellation: %v", ErrRenderTemplate, err)
	}
	subject = fmt.Sprintf("Booking Cancelled - %s", data.SessionTypeName)
	return subject, buf.String(), nil
}

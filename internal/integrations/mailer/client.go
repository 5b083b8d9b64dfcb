// Package mailer отправляет уведомления клиентам по SMTP.
// Отправка всегда best-effort: ошибки логируются вызывающей стороной
// и никогда не откатывают породившую их операцию.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// Config настройки SMTP-подключения
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client SMTP-клиент для отправки писем
type Client struct {
	cfg    Config
	logger Logger
}

// NewClient создает новый SMTP-клиент
func NewClient(cfg Config, logger Logger) *Client {
	return &Client{
		cfg:    cfg,
		logger: logger,
	}
}

// Send отправляет HTML-письмо одному получателю
func (c *Client) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	addr := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)

	var msg strings.Builder
	msg.WriteString("From: " + c.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)
	msg.WriteString("\r\n")

	var auth smtp.Auth
	if c.cfg.Username != "" {
		auth = smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, c.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	c.logger.Info("mailer: email sent to=%s subject=%q", to, subject)
	return nil
}

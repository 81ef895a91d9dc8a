package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"

	"llm-newsletter-bot/internal/logger"
	"llm-newsletter-bot/internal/trace"
)

// Params holds the SMTP transport configuration. Credentials come from the
// environment; host and port from the run config.
type Params struct {
	Host      string
	Port      int
	Address   string
	Password  string
	Recipient string
}

func (p Params) validate() error {
	if p.Address == "" || p.Password == "" {
		return errors.New("email credentials missing (EMAIL_ADDRESS / EMAIL_APP_PASSWORD)")
	}
	if p.Recipient == "" {
		return errors.New("email recipient missing (EMAIL_RECIPIENT)")
	}
	return nil
}

// SMTPMailer sends the rendered newsletter over authenticated SMTP with
// STARTTLS, as a multipart alternative message (plain markdown + HTML).
type SMTPMailer struct {
	params Params
}

func New(p Params) *SMTPMailer {
	return &SMTPMailer{params: p}
}

func (m *SMTPMailer) Send(ctx context.Context, subject, text, html string) error {
	ctx, span := trace.StartSpan(ctx, "mailer.Send")
	defer span.End()

	if err := m.params.validate(); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.params.Address); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.params.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(m.params.Host,
		mail.WithPort(m.params.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.params.Address),
		mail.WithPassword(m.params.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Info(ctx, "Email sent", "recipient", m.params.Recipient, "subject", subject)
	return nil
}

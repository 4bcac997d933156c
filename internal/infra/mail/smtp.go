package mail

import (
	"context"
	"log/slog"

	"course-checkout/internal/pkg/config"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/shared"

	gomail "github.com/wneessen/go-mail"
)

var ErrInvalidMessage = errs.Validation("mail message needs a recipient and a subject")

type SMTPMailer struct {
	client *gomail.Client
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create smtp client")
	}
	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg shared.Message) error {
	out, err := buildMessage(m.from, msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return errs.Wrapf(err, "send mail to %s", msg.To)
	}
	slog.Debug("mail sent", "to", msg.To, "subject", msg.Subject)
	return nil
}

func buildMessage(from string, msg shared.Message) (*gomail.Msg, error) {
	if msg.To == "" || msg.Subject == "" {
		return nil, ErrInvalidMessage
	}

	out := gomail.NewMsg()
	if err := out.From(from); err != nil {
		return nil, errs.Wrap(err, "invalid sender address")
	}
	if err := out.To(msg.To); err != nil {
		return nil, errs.Wrap(err, "invalid recipient address")
	}
	out.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		out.SetBodyString(gomail.TypeTextPlain, msg.Text)
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		out.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		out.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}
	return out, nil
}

// LogMailer stands in for SMTP when delivery is disabled.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(_ context.Context, msg shared.Message) error {
	if msg.To == "" || msg.Subject == "" {
		return ErrInvalidMessage
	}
	slog.Info("mail delivery disabled, message dropped", "to", msg.To, "subject", msg.Subject)
	return nil
}

// New picks SMTP delivery or the log-only mailer from config.
func New(cfg config.MailConfig) (shared.Mailer, error) {
	if !cfg.Enabled {
		return NewLogMailer(), nil
	}
	return NewSMTPMailer(cfg)
}

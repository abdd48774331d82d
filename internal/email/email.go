package email

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/airport/config"
	"github.com/wneessen/go-mail"
)

// Message is a plain-text e-mail with at most one file attachment.
type Message struct {
	To             string
	Subject        string
	Body           string
	AttachmentPath string
	AttachmentName string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender picks SMTP delivery when a host is configured and logging otherwise.
func NewSender(cfg config.MailConfig) Sender {
	if cfg.Host == "" {
		return NewLogSender()
	}
	return NewSMTPSender(cfg)
}

type SMTPSender struct {
	cfg config.MailConfig
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	msg, err := buildMessage(s.cfg.From, m)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", m.To, err)
	}
	return nil
}

func buildMessage(from string, m Message) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", from, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	if m.AttachmentPath != "" {
		msg.AttachFile(m.AttachmentPath, mail.WithFileName(m.AttachmentName))
	}
	return msg, nil
}

// LogSender only logs; it is used when no SMTP host is configured.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, m Message) error {
	log.Printf("send email to %s: %q with attachment %s", m.To, m.Subject, m.AttachmentName)
	return nil
}

var (
	_ Sender = (*SMTPSender)(nil)
	_ Sender = (*LogSender)(nil)
)

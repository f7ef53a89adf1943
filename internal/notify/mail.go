package notify

import (
	"context"
	"strconv"

	"github.com/wneessen/go-mail"

	"tradepost/internal/domain"
)

// RecipientLookup resolves a seller id to an email address.
type RecipientLookup func(recipientID int64) (string, bool)

// MailSender delivers email-channel notifications over SMTP.
type MailSender struct {
	client *mail.Client
	from   string
	lookup RecipientLookup
}

func NewMailSender(host, port, user, pass string, lookup RecipientLookup) (*MailSender, error) {
	p := 587
	if port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			p = n
		}
	}
	client, err := mail.NewClient(host,
		mail.WithPort(p),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(user),
		mail.WithPassword(pass),
	)
	if err != nil {
		return nil, err
	}
	return &MailSender{client: client, from: user, lookup: lookup}, nil
}

func (s *MailSender) Send(ctx context.Context, recipientID int64, message string, _ domain.Channel) error {
	to, ok := s.lookup(recipientID)
	if !ok {
		return domain.NotFoundError("no email on file for recipient %d", recipientID)
	}
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Tradepost: new purchase request")
	msg.SetBodyString(mail.TypeTextPlain, message)
	return s.client.DialAndSendWithContext(ctx, msg)
}

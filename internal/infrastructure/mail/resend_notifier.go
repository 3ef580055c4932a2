package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"interact-club.backend/internal/domain/entities"
	"interact-club.backend/pkg/logger"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New contact form submission</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p style="white-space: pre-wrap">{{.Message}}</p>
<p><small>Received {{.CreatedAt.Format "2006-01-02 15:04 MST"}}</small></p>
`))

// ResendNotifier mails contact submissions to the club inbox.
type ResendNotifier struct {
	client *resend.Client
	from   string
	inbox  string
}

func NewResendNotifier(apiKey, from, inbox string) *ResendNotifier {
	return &ResendNotifier{
		client: resend.NewClient(apiKey),
		from:   from,
		inbox:  inbox,
	}
}

// NotifyContact sends one email per submission with Reply-To set to the sender.
func (n *ResendNotifier) NotifyContact(ctx context.Context, s *entities.ContactSubmission) error {
	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, s); err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      []string{n.inbox},
		Subject: "[Contact] " + s.Subject,
		Html:    body.String(),
		ReplyTo: s.Email,
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	logger.Info(ctx, "contact notification sent",
		zap.String("message_id", sent.Id),
		zap.String("submission_id", s.ID.String()),
	)
	return nil
}

// NoopNotifier is used when no mail provider is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyContact(ctx context.Context, s *entities.ContactSubmission) error {
	logger.Debug(ctx, "mail disabled, contact notification skipped", zap.String("submission_id", s.ID.String()))
	return nil
}

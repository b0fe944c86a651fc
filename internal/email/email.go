package email

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/ErlanBelekov/bookstore/internal/domain"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogSender logs emails instead of sending them. Used with ENV=local.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(ctx context.Context, to, subject, body string) error {
	s.logger.InfoContext(ctx, "email (local dev)", "to", to, "subject", subject, "body", body)
	return nil
}

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

func (s *ResendSender) Send(ctx context.Context, to, subject, body string) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}
	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}

// NewSender returns a LogSender for ENV=local, ResendSender otherwise.
func NewSender(env, apiKey, from string, logger *slog.Logger) Sender {
	if env == "local" {
		return &LogSender{logger: logger.With("component", "email")}
	}
	return &ResendSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<p>Hi {{.Name}},</p>
<p>Thanks for your order #{{.Order.ID}}. We will let you know when it ships.</p>
<table>
{{- range .Order.Items}}
<tr><td>{{.Book.Title}}</td><td>{{.Quantity}} &times; {{printf "%.2f" .PriceAtPurchase}}</td><td>{{printf "%.2f" .Subtotal}}</td></tr>
{{- end}}
</table>
<p>Total: {{printf "%.2f" .Order.TotalAmount}}<br>Payment: {{.Order.PaymentMethod}}<br>Ship to: {{.Order.ShippingAddress}}</p>`))

// OrderConfirmation renders the subject and HTML body sent after checkout.
func OrderConfirmation(user *domain.User, order *domain.Order) (subject, body string, err error) {
	var sb strings.Builder
	err = confirmationTmpl.Execute(&sb, struct {
		Name  string
		Order *domain.Order
	}{Name: user.FullName, Order: order})
	if err != nil {
		return "", "", fmt.Errorf("render confirmation: %w", err)
	}
	return fmt.Sprintf("Order #%d confirmed", order.ID), sb.String(), nil
}

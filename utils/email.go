// utils/email.go
package utils

import (
	"fmt"
	"html"
	"log/slog"

	"github.com/keighl/postmark"

	"foxy-admin/models"
)

// Notifier tells customers about changes to their orders
type Notifier interface {
	OrderShipped(order models.Order) error
}

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	from   string
}

// NewEmailService returns a Postmark-backed Notifier, or a no-op one when apiToken is empty
func NewEmailService(apiToken, from string) Notifier {
	if apiToken == "" {
		slog.Warn("POSTMARK_API_TOKEN not set, customer emails are disabled")
		return NopNotifier{}
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		from:   from,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent, textContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.from,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: textContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// OrderShipped sends the shipping confirmation for order
func (es *EmailService) OrderShipped(order models.Order) error {
	subject := fmt.Sprintf("Your order %s is on its way", order.OrderReference)
	text := fmt.Sprintf(
		"Dear %s,\n\nGood news! Your order %s has been shipped to %s, %s.\n\nThank you for shopping with Foxy Fabrications!\n",
		order.CustomerName,
		order.OrderReference,
		order.ShippingAddress.Line1,
		order.ShippingAddress.City,
	)
	body := fmt.Sprintf(
		"<strong>Dear %s,</strong><br><br>Good news! Your order <strong>%s</strong> has been shipped.<br><br>Thank you for shopping with Foxy Fabrications!",
		html.EscapeString(order.CustomerName),
		html.EscapeString(order.OrderReference),
	)
	return es.SendEmail(order.CustomerEmail, subject, body, text)
}

// NopNotifier drops every notification
type NopNotifier struct{}

func (NopNotifier) OrderShipped(models.Order) error { return nil }

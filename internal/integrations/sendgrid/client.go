package sendgrid

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	sendgridgo "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Client клиент для отправки уведомлений владельцу через SendGrid
type Client struct {
	apiKey     string
	fromEmail  string
	fromName   string
	ownerEmail string
	location   *time.Location
	log        Logger
}

// NewClient создает новый экземпляр клиента SendGrid
// Если apiKey или ownerEmail пустые, клиент считается выключенным
func NewClient(apiKey, fromEmail, fromName, ownerEmail string, location *time.Location, log Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		fromEmail:  fromEmail,
		fromName:   fromName,
		ownerEmail: ownerEmail,
		location:   location,
		log:        log,
	}
}

// Enabled возвращает true, если клиент настроен на отправку писем
func (c *Client) Enabled() bool {
	return c.apiKey != "" && c.ownerEmail != ""
}

// NotifyOwnerBooking отправляет владельцу письмо о новом бронировании
//
// Отправка best-effort: вызывается после фиксации бронирования,
// ошибка отправки не влияет на результат бронирования
func (c *Client) NotifyOwnerBooking(ctx context.Context, n *BookingNotification) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	start := n.StartTime.In(c.location)
	end := n.EndTime.In(c.location)

	subject := fmt.Sprintf("New booking: %s on %s", n.ServiceLabel, start.Format("Jan 2, 2006"))

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail("", c.ownerEmail)
	message := mail.NewSingleEmail(from, subject, to, c.plainBody(n, start, end), c.htmlBody(n, start, end))

	client := sendgridgo.NewSendClient(c.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrSendFailed, resp.StatusCode, resp.Body)
	}

	c.log.Info("Owner notification sent for booking at %s", start.Format(time.RFC3339))
	return nil
}

func (c *Client) plainBody(n *BookingNotification, start, end time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Service: %s\n", n.ServiceLabel)
	fmt.Fprintf(&b, "When: %s - %s\n", start.Format("Mon Jan 2, 15:04"), end.Format("15:04"))
	fmt.Fprintf(&b, "Customer: %s\n", n.CustomerName)
	if n.CustomerEmail != "" {
		fmt.Fprintf(&b, "Email: %s\n", n.CustomerEmail)
	}
	if n.CustomerPhone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", n.CustomerPhone)
	}
	if n.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", n.Notes)
	}
	return b.String()
}

// htmlBody собирает HTML версию письма
// Имя, контакты и пожелания приходят от клиента и экранируются
func (c *Client) htmlBody(n *BookingNotification, start, end time.Time) string {
	var b strings.Builder
	b.WriteString("<h2>New booking</h2><ul>")
	fmt.Fprintf(&b, "<li><strong>Service:</strong> %s</li>", html.EscapeString(n.ServiceLabel))
	fmt.Fprintf(&b, "<li><strong>When:</strong> %s - %s</li>", start.Format("Mon Jan 2, 15:04"), end.Format("15:04"))
	fmt.Fprintf(&b, "<li><strong>Customer:</strong> %s</li>", html.EscapeString(n.CustomerName))
	if n.CustomerEmail != "" {
		fmt.Fprintf(&b, "<li><strong>Email:</strong> %s</li>", html.EscapeString(n.CustomerEmail))
	}
	if n.CustomerPhone != "" {
		fmt.Fprintf(&b, "<li><strong>Phone:</strong> %s</li>", html.EscapeString(n.CustomerPhone))
	}
	if n.Notes != "" {
		fmt.Fprintf(&b, "<li><strong>Notes:</strong> %s</li>", html.EscapeString(n.Notes))
	}
	b.WriteString("</ul>")
	return b.String()
}

package sendgrid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testNotification() *BookingNotification {
	start := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	return &BookingNotification{
		ServiceLabel:  "Haircut",
		StartTime:     start,
		EndTime:       start.Add(45 * time.Minute),
		CustomerName:  "Ivan Petrov",
		CustomerEmail: "ivan@example.com",
		CustomerPhone: "+14165550142",
		Notes:         "со стороны входа",
	}
}

func TestEnabled(t *testing.T) {
	assert.True(t, NewClient("key", "from@x.com", "Shop", "owner@x.com", time.UTC, nopLogger{}).Enabled())
	assert.False(t, NewClient("", "from@x.com", "Shop", "owner@x.com", time.UTC, nopLogger{}).Enabled())
	assert.False(t, NewClient("key", "from@x.com", "Shop", "", time.UTC, nopLogger{}).Enabled())
}

func TestNotifyOwnerBooking_DisabledClient(t *testing.T) {
	c := NewClient("", "from@x.com", "Shop", "", time.UTC, nopLogger{})

	err := c.NotifyOwnerBooking(context.Background(), testNotification())
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestHTMLBody_EscapesCustomerInput(t *testing.T) {
	c := NewClient("key", "from@x.com", "Shop", "owner@x.com", time.UTC, nopLogger{})

	n := testNotification()
	n.CustomerName = `<img src=x onerror="steal()">`
	n.Notes = "<script>alert(1)</script>"

	body := c.htmlBody(n, n.StartTime, n.EndTime)

	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;img src=x onerror=&#34;steal()&#34;&gt;")
	assert.Contains(t, body, "&lt;script&gt;alert(1)&lt;/script&gt;")
}

func TestPlainBody_SkipsEmptyOptionalFields(t *testing.T) {
	c := NewClient("key", "from@x.com", "Shop", "owner@x.com", time.UTC, nopLogger{})

	n := testNotification()
	n.CustomerEmail = ""
	n.CustomerPhone = ""
	n.Notes = ""

	body := c.plainBody(n, n.StartTime, n.EndTime)

	assert.Contains(t, body, "Customer: Ivan Petrov")
	assert.NotContains(t, body, "Email:")
	assert.NotContains(t, body, "Phone:")
	assert.NotContains(t, body, "Notes:")
}

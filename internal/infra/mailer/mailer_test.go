//go:build unit

package mailer

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"token-storefront/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSender struct {
	sent []Message
	err  error
}

func (s *captureSender) Send(_ context.Context, msg Message) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func newTestNotifier(sender Sender) *Notifier {
	n := NewNotifier(sender,
		config.MailConfig{FromName: "Token Storefront"},
		config.StorefrontConfig{BaseURL: "https://shop.example.com/"},
	)
	n.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }
	return n
}

func TestNotifier_NotifyTokensCredited(t *testing.T) {
	sender := &captureSender{}
	n := newTestNotifier(sender)

	err := n.NotifyTokensCredited(context.Background(), "buyer@example.com", "CS-u1-1", 50)
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, "buyer@example.com", msg.To)
	assert.Equal(t, SubjectTokensCredited, msg.Subject)
	assert.Contains(t, msg.TextBody, "CS-u1-1")
	assert.Contains(t, msg.TextBody, "50 tokens have been added")
	assert.Contains(t, msg.TextBody, "https://shop.example.com")
	assert.Contains(t, msg.HTMLBody, "Token Storefront &copy; 2025")
}

func TestNotifier_NotifyOrderCompleted(t *testing.T) {
	sender := &captureSender{err: errors.New("smtp down")}
	n := newTestNotifier(sender)

	err := n.NotifyOrderCompleted(context.Background(), "buyer@example.com", 5)

	assert.EqualError(t, err, "smtp down")
	require.Len(t, sender.sent, 1)
	assert.Equal(t, SubjectOrderCompleted, sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].TextBody, "5 tokens have been deducted")
}

func TestNotifier_RecipientIsNormalised(t *testing.T) {
	testCases := []struct {
		name     string
		to       string
		expected string
	}{
		{name: "bare address", to: " buyer@example.com ", expected: "buyer@example.com"},
		{name: "display name dropped", to: "Buyer <buyer@example.com>", expected: "buyer@example.com"},
		{name: "header injection", to: "buyer@example.com\r\nBcc: victim@example.com"},
		{name: "newline only", to: "buyer@example.com\nSubject: hi"},
		{name: "address list", to: "a@example.com, b@example.com"},
		{name: "not an address", to: "buyer"},
		{name: "empty", to: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sender := &captureSender{}
			n := newTestNotifier(sender)

			err := n.NotifyTokensCredited(context.Background(), tc.to, "CS-u1-1", 50)

			if tc.expected == "" {
				assert.ErrorIs(t, err, ErrInvalidRecipient)
				assert.Empty(t, sender.sent)
				return
			}
			require.NoError(t, err)
			require.Len(t, sender.sent, 1)
			assert.Equal(t, tc.expected, sender.sent[0].To)
		})
	}
}

func TestSMTPSender_RejectsInjectedRecipient(t *testing.T) {
	s := &SMTPSender{cfg: config.MailConfig{Host: "127.0.0.1", Port: 1}}

	err := s.Send(context.Background(), Message{To: "buyer@example.com\r\nBcc: victim@example.com", Subject: "x"})

	assert.ErrorIs(t, err, ErrInvalidRecipient)
}

func TestNewSender_DisabledUsesLogSender(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s := NewSender(config.MailConfig{Enabled: false}, logger)
	_, ok := s.(*LogSender)
	assert.True(t, ok)
	assert.NoError(t, s.Send(context.Background(), Message{Subject: "x"}))

	s = NewSender(config.MailConfig{Enabled: true, Host: "smtp.example.com", Port: 587}, logger)
	_, ok = s.(*SMTPSender)
	assert.True(t, ok)
}

func TestSMTPSender_BuildMIME(t *testing.T) {
	s := &SMTPSender{cfg: config.MailConfig{From: "no-reply@example.com", FromName: "Token Storefront"}}
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	raw := string(s.buildMIME(Message{
		To:       "buyer@example.com",
		Subject:  "QR Order Completed",
		TextBody: "plain",
		HTMLBody: "<p>html</p>",
	}, now))

	assert.Contains(t, raw, "From: Token Storefront <no-reply@example.com>\r\n")
	assert.Contains(t, raw, "To: buyer@example.com\r\n")
	assert.Contains(t, raw, "Subject: QR Order Completed\r\n")
	assert.Contains(t, raw, "multipart/alternative")
	assert.Contains(t, raw, "text/plain; charset=UTF-8")
	assert.Contains(t, raw, "<p>html</p>")
	assert.True(t, strings.HasSuffix(raw, "--\r\n"))
}

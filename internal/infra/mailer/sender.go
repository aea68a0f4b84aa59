package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"token-storefront/internal/pkg/config"
)

var ErrInvalidRecipient = errors.New("invalid mail recipient")

// Message is a rendered multipart email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NewSender returns an SMTP sender, or a logging sender when mail is disabled.
func NewSender(cfg config.MailConfig, logger *slog.Logger) Sender {
	if !cfg.Enabled {
		return &LogSender{logger: logger}
	}
	return &SMTPSender{cfg: cfg}
}

// LogSender records messages instead of delivering them.
type LogSender struct {
	logger *slog.Logger
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("mail delivery disabled, message dropped", "subject", msg.Subject)
	return nil
}

type SMTPSender struct {
	cfg config.MailConfig
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	to, err := parseRecipient(msg.To)
	if err != nil {
		return err
	}
	msg.To = to
	raw := s.buildMIME(msg, time.Now())
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	var conn net.Conn
	if s.cfg.UseSSL {
		tlsDialer := &tls.Dialer{NetDialer: dialer, Config: s.tlsConfig()}
		conn, err = tlsDialer.DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("failed to dial smtp server: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}
	defer c.Close()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(s.tlsConfig()); err != nil {
				return fmt.Errorf("starttls failed: %w", err)
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(raw); err != nil {
		return err
	}
	if err = w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func (s *SMTPSender) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
}

func (s *SMTPSender) buildMIME(msg Message, now time.Time) []byte {
	boundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var b bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&b, format, a...) }

	write("From: %s\r\n", formatFrom(s.cfg.FromName, s.cfg.From))
	write("To: %s\r\n", msg.To)
	write("Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", msg.TextBody)

	if msg.HTMLBody != "" {
		write("--%s\r\n", boundary)
		write("Content-Type: text/html; charset=UTF-8\r\n")
		write("Content-Transfer-Encoding: 8bit\r\n\r\n")
		write("%s\r\n\r\n", msg.HTMLBody)
	}

	write("--%s--\r\n", boundary)
	return b.Bytes()
}

// parseRecipient reduces an address to its bare addr-spec, rejecting display
// names, lists and anything carrying header line breaks.
func parseRecipient(raw string) (string, error) {
	parsed, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRecipient, err)
	}
	if strings.ContainsAny(parsed.Address, "\r\n") {
		return "", ErrInvalidRecipient
	}
	return parsed.Address, nil
}

func formatFrom(name, addr string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return addr
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("utf-8", name), addr)
}

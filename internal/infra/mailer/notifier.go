package mailer

import (
	"bytes"
	"context"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"token-storefront/internal/pkg/config"
)

const (
	SubjectTokensCredited = "Tokens Added"
	SubjectOrderCompleted = "QR Order Completed"
)

type emailData struct {
	Title   string
	Intro   string
	LinkURL string
	AppName string
	Year    int
}

const htmlLayout = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="font-family:Helvetica,Arial,sans-serif;color:#0f172a">
  <h2>{{.Title}}</h2>
  <p>{{.Intro}}</p>
  {{if .LinkURL}}<p><a href="{{.LinkURL}}">Open {{.AppName}}</a></p>{{end}}
  <p style="color:#64748b;font-size:12px">{{.AppName}} &copy; {{.Year}}</p>
</body>
</html>`

const textLayout = `{{.Title}}

{{.Intro}}
{{if .LinkURL}}
{{.LinkURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

// Notifier renders storefront notifications and hands them to a Sender.
type Notifier struct {
	sender  Sender
	appName string
	baseURL string
	html    *htmltemplate.Template
	text    *texttemplate.Template
	now     func() time.Time
}

func NewNotifier(sender Sender, mailCfg config.MailConfig, storeCfg config.StorefrontConfig) *Notifier {
	return &Notifier{
		sender:  sender,
		appName: mailCfg.FromName,
		baseURL: strings.TrimRight(storeCfg.BaseURL, "/"),
		html:    htmltemplate.Must(htmltemplate.New("html").Parse(htmlLayout)),
		text:    texttemplate.Must(texttemplate.New("text").Parse(textLayout)),
		now:     time.Now,
	}
}

func (n *Notifier) NotifyTokensCredited(ctx context.Context, to, referenceID string, tokens int64) error {
	intro := fmt.Sprintf("Your payment %s has been completed and %d tokens have been added to your balance.", referenceID, tokens)
	return n.deliver(ctx, to, SubjectTokensCredited, intro)
}

func (n *Notifier) NotifyOrderCompleted(ctx context.Context, to string, tokens int64) error {
	intro := fmt.Sprintf("Your QR code order has been completed and %d tokens have been deducted.", tokens)
	return n.deliver(ctx, to, SubjectOrderCompleted, intro)
}

func (n *Notifier) deliver(ctx context.Context, to, subject, intro string) error {
	msg, err := n.render(to, subject, intro)
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, msg)
}

func (n *Notifier) render(to, subject, intro string) (Message, error) {
	addr, err := parseRecipient(to)
	if err != nil {
		return Message{}, err
	}

	data := emailData{
		Title:   subject,
		Intro:   intro,
		LinkURL: n.baseURL,
		AppName: n.appName,
		Year:    n.now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := n.html.Execute(&hb, data); err != nil {
		return Message{}, fmt.Errorf("failed to render html mail: %w", err)
	}
	if err := n.text.Execute(&tb, data); err != nil {
		return Message{}, fmt.Errorf("failed to render text mail: %w", err)
	}

	return Message{
		To:       addr,
		Subject:  subject,
		TextBody: tb.String(),
		HTMLBody: hb.String(),
	}, nil
}

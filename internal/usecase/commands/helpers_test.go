//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type sentMail struct {
	Kind        string
	To          string
	ReferenceID string
	Tokens      int64
}

// recordingNotifier publishes every notification on a channel.
type recordingNotifier struct {
	mu   sync.Mutex
	sent chan sentMail
	err  error
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan sentMail, 16)}
}

func (n *recordingNotifier) NotifyTokensCredited(_ context.Context, to, referenceID string, tokens int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent <- sentMail{Kind: "credited", To: to, ReferenceID: referenceID, Tokens: tokens}
	return n.err
}

func (n *recordingNotifier) NotifyOrderCompleted(_ context.Context, to string, tokens int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent <- sentMail{Kind: "order", To: to, Tokens: tokens}
	return n.err
}

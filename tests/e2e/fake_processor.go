//go:build e2e

package e2e

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const FakeRedirectURL = "https://pay.transfermit.test/checkout/abc"

// FakeProcessor stands in for the Transfermit payments API.
type FakeProcessor struct {
	server *httptest.Server

	mu       sync.Mutex
	status   int
	body     string
	requests []ProcessorRequest
}

type ProcessorRequest struct {
	Authorization string
	Body          map[string]any
}

func NewFakeProcessor(t *testing.T) *FakeProcessor {
	t.Helper()

	p := &FakeProcessor{}
	p.Reset()
	p.server = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.server.Close)
	return p
}

func (p *FakeProcessor) URL() string {
	return p.server.URL
}

// Reset restores the default successful response and forgets requests.
func (p *FakeProcessor) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = http.StatusOK
	p.body = `{"result":{"redirectUrl":"` + FakeRedirectURL + `"}}`
	p.requests = nil
}

func (p *FakeProcessor) RespondWith(status int, body string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = status
	p.body = body
}

func (p *FakeProcessor) Requests() []ProcessorRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]ProcessorRequest(nil), p.requests...)
}

func (p *FakeProcessor) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/payments" {
		http.NotFound(w, r)
		return
	}

	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	p.mu.Lock()
	p.requests = append(p.requests, ProcessorRequest{
		Authorization: r.Header.Get("Authorization"),
		Body:          body,
	})
	status, respBody := p.status, p.body
	p.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, respBody)
}

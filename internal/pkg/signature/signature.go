// Package signature authenticates payment processor callbacks.
//
// The processor signs the raw request body with HMAC-SHA256 using a
// pre-shared key and sends the lowercase hex digest in a header whose name
// depends on the processor configuration.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

// DefaultHeaders lists the accepted header names in priority order.
var DefaultHeaders = []string{"signature", "x-signature", "x-transfermit-signature"}

type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Sign returns the hex encoded HMAC-SHA256 of body.
func (v *Verifier) Sign(body []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether sig is a valid signature of the exact raw body.
// It fails closed on empty or undecodable signatures.
func (v *Verifier) Verify(body []byte, sig string) bool {
	sig = strings.TrimSpace(sig)
	if sig == "" || len(v.secret) == 0 {
		return false
	}

	given, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	expected := mac.Sum(nil)

	if len(given) != len(expected) {
		return false
	}
	return hmac.Equal(expected, given)
}

// HeaderValue returns the first non-empty value among names, in order.
func HeaderValue(h http.Header, names []string) string {
	for _, name := range names {
		if v := strings.TrimSpace(h.Get(name)); v != "" {
			return v
		}
	}
	return ""
}

//go:build unit || e2e

package builder

import (
	"encoding/json"
	"io"
	"log/slog"
)

// CallbackBuilder assembles processor callback bodies.
type CallbackBuilder struct {
	ReferenceID   string
	State         string
	CustomerEmail string
	Params        map[string]any
	Wrapped       bool
}

func NewCallbackBuilder() *CallbackBuilder {
	return &CallbackBuilder{
		ReferenceID:   "CS-u1-1700000000000",
		State:         "COMPLETED",
		CustomerEmail: "buyer@example.com",
		Params: map[string]any{
			"user_id":      "u1",
			"tokens":       50,
			"reference_id": "CS-u1-1700000000000",
		},
		Wrapped: true,
	}
}

func (c *CallbackBuilder) With(mutate func(*CallbackBuilder)) *CallbackBuilder {
	mutate(c)
	return c
}

func (c *CallbackBuilder) WithReference(ref string) *CallbackBuilder {
	c.ReferenceID = ref
	c.Params["reference_id"] = ref
	return c
}

func (c *CallbackBuilder) WithState(state string) *CallbackBuilder {
	c.State = state
	return c
}

func (c *CallbackBuilder) WithUser(userID string) *CallbackBuilder {
	c.Params["user_id"] = userID
	return c
}

func (c *CallbackBuilder) WithTokens(tokens any) *CallbackBuilder {
	c.Params["tokens"] = tokens
	return c
}

func (c *CallbackBuilder) WithoutParam(key string) *CallbackBuilder {
	delete(c.Params, key)
	return c
}

func (c *CallbackBuilder) Unwrapped() *CallbackBuilder {
	c.Wrapped = false
	return c
}

func (c *CallbackBuilder) BuildBody() []byte {
	obj := map[string]any{
		"referenceId":          c.ReferenceID,
		"state":                c.State,
		"additionalParameters": c.Params,
	}
	if c.CustomerEmail != "" {
		obj["customer"] = map[string]any{"email": c.CustomerEmail}
	}

	var payload any = obj
	if c.Wrapped {
		payload = map[string]any{"result": obj}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}
	return body
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

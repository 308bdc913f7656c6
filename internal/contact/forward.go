package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gitahub/pkg/models"
)

// Forwarder relays stored contact messages to a remote form endpoint.
type Forwarder interface {
	Forward(ctx context.Context, m models.ContactMessage) error
}

// HTTPForwarder POSTs the message as JSON. Any non-2xx status is an error.
type HTTPForwarder struct {
	URL    string
	Client *http.Client
}

func NewHTTPForwarder(url string, timeout time.Duration) *HTTPForwarder {
	return &HTTPForwarder{
		URL:    url,
		Client: &http.Client{Timeout: timeout},
	}
}

type forwardPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (f *HTTPForwarder) Forward(ctx context.Context, m models.ContactMessage) error {
	body, err := json.Marshal(forwardPayload{Name: m.Name, Email: m.Email, Message: m.Message})
	if err != nil {
		return fmt.Errorf("forward: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("forward: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("forward: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("forward: status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

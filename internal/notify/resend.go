// Package notify sends generated-document notifications through the Resend
// transactional email API.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"autoactas/internal/infrastructure"
)

const defaultEndpoint = "https://api.resend.com/emails"

// ResendNotifier posts emails to the Resend REST endpoint with a bearer key.
type ResendNotifier struct {
	apiKey   string
	from     string
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewResendNotifier builds the notifier. from is the verified sender address.
func NewResendNotifier(apiKey, from string, logger *slog.Logger) *ResendNotifier {
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	return &ResendNotifier{
		apiKey:   apiKey,
		from:     from,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// Notify sends one plain-text email to the recipients.
func (n *ResendNotifier) Notify(ctx context.Context, to []string, subject, body string) error {
	payload, err := json.Marshal(resendPayload{
		From:    n.from,
		To:      to,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return fmt.Errorf("encoding resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, detail)
	}

	n.logger.InfoContext(ctx, "notification sent",
		slog.Int("recipients", len(to)),
		slog.String("subject", subject))
	return nil
}

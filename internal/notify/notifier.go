package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/pkg/httpclient"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
	"github.com/mentorhub/mentorhub-api/pkg/retry"
)

// Notifier delivers user-facing notifications. Delivery is best-effort,
// failures are logged and counted but never surfaced to the caller.
type Notifier interface {
	Notify(ctx context.Context, userID, kind, title, message string, metadata map[string]string)
}

// Payload is the wire format sent to the notification webhook
type Payload struct {
	UserID   string            `json:"user_id"`
	Kind     string            `json:"kind"`
	Title    string            `json:"title"`
	Message  string            `json:"message"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// WebhookNotifier posts notification payloads to a configured webhook URL
type WebhookNotifier struct {
	webhookURL string
	httpClient httpclient.Client
}

var _ Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a webhook-backed notifier. An empty URL produces
// a notifier that silently drops everything, which keeps call sites simple.
func NewWebhookNotifier(webhookURL string, httpClient httpclient.Client) *WebhookNotifier {
	return &WebhookNotifier{
		webhookURL: webhookURL,
		httpClient: httpClient,
	}
}

// Notify posts the payload asynchronously and returns immediately
func (n *WebhookNotifier) Notify(ctx context.Context, userID, kind, title, message string, metadata map[string]string) {
	if n.webhookURL == "" {
		return
	}

	payload := Payload{
		UserID:   userID,
		Kind:     kind,
		Title:    title,
		Message:  message,
		Metadata: metadata,
	}

	go func() {
		body, err := json.Marshal(payload)
		if err != nil {
			metrics.NotificationFailures.WithLabelValues(kind).Inc()
			logger.Error("Failed to marshal notification payload",
				zap.Error(err),
				zap.String("kind", kind),
				zap.String("user_id", userID))
			return
		}

		err = retry.Do(context.Background(), retry.WebhookConfig(), "notify_webhook", func() error {
			resp, postErr := n.httpClient.Post(n.webhookURL, "application/json", bytes.NewReader(body))
			if postErr != nil {
				return postErr
			}
			defer func() {
				_, _ = io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
			}()

			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				return fmt.Errorf("webhook returned status %d", resp.StatusCode)
			}
			return nil
		})
		if err != nil {
			metrics.NotificationFailures.WithLabelValues(kind).Inc()
			logger.Error("Failed to deliver notification",
				zap.Error(err),
				zap.String("kind", kind),
				zap.String("user_id", userID))
			return
		}

		logger.Debug("Notification delivered",
			zap.String("kind", kind),
			zap.String("user_id", userID))
	}()
}

// NopNotifier drops every notification. Used in tests and when no webhook is
// configured.
type NopNotifier struct{}

var _ Notifier = NopNotifier{}

func (NopNotifier) Notify(ctx context.Context, userID, kind, title, message string, metadata map[string]string) {
}

package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"revenue-distribution-engine/internal/core/domain"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// notificationRetryIntervals spaces out redelivery attempts.
var notificationRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	5 * time.Minute,
}

// WebhookNotificationService implements ports.PaymentNotificationService by
// POSTing signed event envelopes to a configured consumer endpoint.
type WebhookNotificationService struct {
	endpoint      string
	signingSecret []byte
	httpClient    HTTPClient
	async         bool
	log           zerolog.Logger
}

// NewWebhookNotificationService creates a new webhook notification service.
// When async is true, delivery happens on a background goroutine with
// retries; synchronous delivery makes a single attempt.
func NewWebhookNotificationService(
	endpoint string,
	signingSecret string,
	httpClient HTTPClient,
	async bool,
	log zerolog.Logger,
) *WebhookNotificationService {
	return &WebhookNotificationService{
		endpoint:      endpoint,
		signingSecret: []byte(signingSecret),
		httpClient:    httpClient,
		async:         async,
		log:           log,
	}
}

// Notify delivers one event envelope. An unset endpoint disables delivery.
func (s *WebhookNotificationService) Notify(ctx context.Context, envelope domain.EventEnvelope) error {
	if s.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if s.async {
		go s.deliverWithRetries(body, envelope.EventType)
		return nil
	}
	return s.deliver(ctx, body)
}

func (s *WebhookNotificationService) deliver(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	ts := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Timestamp", ts)
	req.Header.Set("X-Signature", s.sign(ts, body))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned %d", resp.StatusCode)
	}
	return nil
}

func (s *WebhookNotificationService) deliverWithRetries(body []byte, eventType string) {
	for attempt := 0; attempt <= len(notificationRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notificationRetryIntervals[attempt-1])
		}
		if err := s.deliver(context.Background(), body); err != nil {
			s.log.Warn().Err(err).Str("event_type", eventType).Int("attempt", attempt+1).Msg("notification delivery failed")
			continue
		}
		return
	}
	s.log.Error().Str("event_type", eventType).Msg("notification retries exhausted")
}

// sign computes HMAC-SHA256 over "<timestamp>.<body>" so the consumer can
// verify both origin and freshness.
func (s *WebhookNotificationService) sign(timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, s.signingSecret)
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

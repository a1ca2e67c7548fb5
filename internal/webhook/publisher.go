package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/travel_safety/internal/models"
)

const signatureHeader = "X-Webhook-Signature"

// AlertEvent - тело вебхука о SOS
type AlertEvent struct {
	SosID     uuid.UUID        `json:"sos_id"`
	UserID    uuid.UUID        `json:"user_id"`
	UserName  string           `json:"user_name"`
	Latitude  float64          `json:"latitude"`
	Longitude float64          `json:"longitude"`
	Message   string           `json:"message,omitempty"`
	Status    models.SosStatus `json:"status"`
	IsOffline bool             `json:"is_offline"`
	Timestamp time.Time        `json:"timestamp"`
}

// HTTPPublisher отправляет SOS во внешнюю систему одним подписанным POST запросом.
// Повторов нет: ошибка возвращается вызывающему.
type HTTPPublisher struct {
	url        string
	secret     string
	httpClient *http.Client
}

// NewHTTPPublisher создает HTTPPublisher
func NewHTTPPublisher(url, secret string, timeout time.Duration) *HTTPPublisher {
	return &HTTPPublisher{
		url:    url,
		secret: secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Publish отправляет событие на настроенный URL
func (p *HTTPPublisher) Publish(ctx context.Context, user *models.User, event *models.SosEvent) error {
	payload, err := json.Marshal(AlertEvent{
		SosID:     event.ID,
		UserID:    user.ID,
		UserName:  user.FullName,
		Latitude:  event.Latitude,
		Longitude: event.Longitude,
		Message:   event.Message,
		Status:    event.Status,
		IsOffline: event.IsOffline,
		Timestamp: event.Timestamp,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если WEBHOOK_SECRET задан
	if p.secret != "" {
		req.Header.Set(signatureHeader, Sign(payload, p.secret))
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook delivery failed with status code %d", resp.StatusCode)
	}
	return nil
}

// Sign генерирует HMAC-SHA256 подпись тела запроса
func Sign(payload []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

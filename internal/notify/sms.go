package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
)

// maxProviderResponse ограничивает, сколько байт ответа провайдера попадет в лог
const maxProviderResponse = 4096

// HTTPSMSSender отправляет SMS через HTTP API провайдера (формат Fast2SMS)
type HTTPSMSSender struct {
	apiURL     string
	apiKey     string
	senderID   string
	httpClient *http.Client
}

func NewHTTPSMSSender(apiURL, apiKey, senderID string, httpClient *http.Client) *HTTPSMSSender {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPSMSSender{
		apiURL:     apiURL,
		apiKey:     apiKey,
		senderID:   senderID,
		httpClient: httpClient,
	}
}

func (s *HTTPSMSSender) Send(ctx context.Context, phone, body string) (string, error) {
	endpoint, err := url.Parse(s.apiURL)
	if err != nil {
		return "", fmt.Errorf("invalid sms api url: %w", err)
	}
	q := endpoint.Query()
	q.Set("authorization", s.apiKey)
	q.Set("sender_id", s.senderID)
	q.Set("message", body)
	q.Set("language", "english")
	q.Set("route", "q")
	q.Set("numbers", phone)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create sms request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxProviderResponse))
	if err != nil {
		return "", fmt.Errorf("failed to read sms provider response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return string(raw), fmt.Errorf("sms provider returned status %d", resp.StatusCode)
	}
	return string(raw), nil
}

// LogSMSSender пишет SMS в лог вместо отправки
type LogSMSSender struct {
	logger *logrus.Logger
}

func NewLogSMSSender(logger *logrus.Logger) *LogSMSSender {
	return &LogSMSSender{logger: logger}
}

func (s *LogSMSSender) Send(_ context.Context, phone, body string) (string, error) {
	s.logger.WithFields(logrus.Fields{
		"channel": channelSMS,
		"phone":   phone,
		"body":    body,
	}).Info("SMS delivery disabled, logging SOS sms")
	return "logged", nil
}

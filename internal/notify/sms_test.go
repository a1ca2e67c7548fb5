package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSMSSender_SendsProviderQuery(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		q := r.URL.Query()
		got = map[string]string{
			"authorization": q.Get("authorization"),
			"sender_id":     q.Get("sender_id"),
			"message":       q.Get("message"),
			"language":      q.Get("language"),
			"route":         q.Get("route"),
			"numbers":       q.Get("numbers"),
		}
		_, _ = w.Write([]byte(`{"return":true}`))
	}))
	defer srv.Close()

	sender := NewHTTPSMSSender(srv.URL+"/dev/bulk", "secret", "TXTIND", srv.Client())
	resp, err := sender.Send(context.Background(), "+1555", "🚨 SOS ALERT 🚨\nUser: A B")

	require.NoError(t, err)
	assert.Equal(t, `{"return":true}`, resp)
	assert.Equal(t, map[string]string{
		"authorization": "secret",
		"sender_id":     "TXTIND",
		"message":       "🚨 SOS ALERT 🚨\nUser: A B",
		"language":      "english",
		"route":         "q",
		"numbers":       "+1555",
	}, got)
}

func TestHTTPSMSSender_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"return":false,"message":"Invalid Authentication"}`))
	}))
	defer srv.Close()

	sender := NewHTTPSMSSender(srv.URL, "bad", "TXTIND", srv.Client())
	resp, err := sender.Send(context.Background(), "+1555", "body")

	require.Error(t, err)
	assert.Contains(t, resp, "Invalid Authentication")
}

func TestHTTPSMSSender_InvalidURL(t *testing.T) {
	sender := NewHTTPSMSSender("://bad", "key", "TXTIND", nil)
	_, err := sender.Send(context.Background(), "+1555", "body")
	require.Error(t, err)
}

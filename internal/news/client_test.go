package news

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
  "status": "ok",
  "totalResults": 2,
  "articles": [
    {
      "source": {"id": null, "name": "Daily Wire"},
      "title": "Bus accident near Mysore",
      "description": "Several injured",
      "url": "https://news.example/1",
      "publishedAt": "2024-05-01T10:00:00Z"
    },
    {
      "source": {"id": "x", "name": "Other"},
      "title": "Theft reported",
      "description": null,
      "url": "https://news.example/2",
      "publishedAt": "2024-05-01T11:00:00Z"
    }
  ]
}`

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestFetch_ParsesArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key-123", r.Header.Get("Authorization"))
		q := r.URL.Query()
		assert.Equal(t, "accident OR theft", q.Get("q"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "50", q.Get("pageSize"))
		_, _ = w.Write([]byte(sampleResponse))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/v2/everything", "key-123", "accident OR theft", 50, srv.Client(), newTestLogger())
	items, err := c.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Bus accident near Mysore", items[0].Title)
	assert.Equal(t, "Daily Wire", items[0].SourceName)
	assert.Equal(t, "https://news.example/1", items[0].URL)
	assert.Equal(t, "2024-05-01T10:00:00Z", items[0].PublishedAt)
	assert.Empty(t, items[1].Description)
}

func TestFetch_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","code":"apiKeyInvalid","message":"Your API key is invalid"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad", "q", 10, srv.Client(), newTestLogger())
	items, err := c.Fetch(context.Background())

	require.Error(t, err)
	assert.Nil(t, items)
	assert.Contains(t, err.Error(), "apiKeyInvalid")
}

func TestFetch_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway timeout", http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", "q", 10, srv.Client(), newTestLogger())
	_, err := c.Fetch(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "504")
}

func TestFetch_SkipsMalformedArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","articles":[
			{"title":"Flood in Kerala","url":"https://news.example/1","publishedAt":"2024-05-01T10:00:00Z"},
			{"title":12345,"url":"https://news.example/2"},
			{"title":"Theft at station","url":"https://news.example/3","source":{"name":"Wire"}}
		]}`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	c := NewClient(srv.URL, "k", "q", 10, srv.Client(), logger)
	items, err := c.Fetch(context.Background())

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "https://news.example/1", items[0].URL)
	assert.Equal(t, "https://news.example/3", items[1].URL)
	assert.Equal(t, "Wire", items[1].SourceName)
	assert.Contains(t, buf.String(), "Skipping malformed news article")
}

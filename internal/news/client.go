package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shenikar/travel_safety/internal/models"
	"github.com/sirupsen/logrus"
)

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []json.RawMessage `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}

// Client забирает свежие новости о происшествиях из NewsAPI (/v2/everything)
type Client struct {
	baseURL    string
	apiKey     string
	query      string
	pageSize   int
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(baseURL, apiKey, query string, pageSize int, httpClient *http.Client, logger *logrus.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		query:      query,
		pageSize:   pageSize,
		httpClient: httpClient,
		logger:     logger,
	}
}

func (c *Client) Fetch(ctx context.Context) ([]models.NewsItem, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid news api url: %w", err)
	}
	q := endpoint.Query()
	q.Set("q", c.query)
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error while doing request: %w", err)
	}
	defer resp.Body.Close()

	var data newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("error decoding news response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || data.Status == "error" {
		return nil, fmt.Errorf("news api error (status %d, code %q): %s", resp.StatusCode, data.Code, data.Message)
	}

	// битая статья пропускается, остальная пачка идет дальше
	items := make([]models.NewsItem, 0, len(data.Articles))
	for i, raw := range data.Articles {
		var a newsAPIArticle
		if err := json.Unmarshal(raw, &a); err != nil {
			c.logger.WithError(err).WithField("index", i).Warn("Skipping malformed news article")
			continue
		}
		items = append(items, models.NewsItem{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			SourceName:  a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return items, nil
}

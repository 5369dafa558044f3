// Package newsapi loads article batches from the NewsAPI HTTP service.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/tesso57/headlines/internal/domain/reading"
	"github.com/tesso57/headlines/internal/infrastructure/httpclient"
)

const (
	// DefaultBaseURL is the public NewsAPI endpoint root.
	DefaultBaseURL = "https://newsapi.org/v2"

	EndpointEverything   = "everything"
	EndpointTopHeadlines = "top-headlines"
)

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("newsapi: api key is required (set NEWSAPI_KEY)")

// APIError is a failure reported by NewsAPI itself.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" && e.Message == "" {
		return fmt.Sprintf("newsapi: status %d", e.StatusCode)
	}
	return fmt.Sprintf("newsapi: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// Config configures a Loader.
type Config struct {
	BaseURL  string
	APIKey   string
	Endpoint string
}

// Loader implements usecase.BatchLoader against NewsAPI.
type Loader struct {
	client   httpclient.Client
	baseURL  string
	apiKey   string
	endpoint string
}

type response struct {
	Status       string    `json:"status"`
	Code         string    `json:"code"`
	Message      string    `json:"message"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type article struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

// NewLoader constructs a Loader.
func NewLoader(client httpclient.Client, cfg Config) (*Loader, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	endpoint := strings.TrimSpace(cfg.Endpoint)
	switch endpoint {
	case "":
		endpoint = EndpointEverything
	case EndpointEverything, EndpointTopHeadlines:
	default:
		return nil, fmt.Errorf("newsapi: unknown endpoint %q", endpoint)
	}
	return &Loader{
		client:   client,
		baseURL:  baseURL,
		apiKey:   apiKey,
		endpoint: endpoint,
	}, nil
}

// Load requests one page of results for q and returns at most q's limit of them.
func (l *Loader) Load(ctx context.Context, q reading.Query) ([]reading.RawArticle, error) {
	resp, err := l.client.Get(ctx, l.requestURL(q), map[string]string{
		"X-Api-Key": l.apiKey,
		"Accept":    "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	var payload response
	decodeErr := json.Unmarshal(resp.Body(), &payload)

	if resp.StatusCode() != http.StatusOK || payload.Status == "error" {
		return nil, &APIError{StatusCode: resp.StatusCode(), Code: payload.Code, Message: payload.Message}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("newsapi decode response: %w", decodeErr)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("newsapi: unexpected status %q", payload.Status)
	}

	// Every result counts against the cap, including removed or link-less ones;
	// their content resolves to the fallback detail later.
	articles := make([]reading.RawArticle, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		articles = append(articles, reading.RawArticle{
			Title: strings.TrimSpace(a.Title),
			URL:   strings.TrimSpace(a.URL),
		})
	}
	return q.Truncate(articles), nil
}

func (l *Loader) requestURL(q reading.Query) string {
	params := url.Values{}
	if text := strings.TrimSpace(q.Text); text != "" {
		params.Set("q", text)
	}
	params.Set("pageSize", strconv.Itoa(q.EffectiveLimit()))

	switch l.endpoint {
	case EndpointTopHeadlines:
		if q.Category != "" {
			params.Set("category", q.Category)
		}
	default:
		if q.Language != "" {
			params.Set("language", q.Language)
		}
		if !q.From.IsZero() {
			params.Set("from", q.From.UTC().Format(time.RFC3339))
		}
		if !q.To.IsZero() {
			params.Set("to", q.To.UTC().Format(time.RFC3339))
		}
		if q.SortBy != "" {
			params.Set("sortBy", q.SortBy)
		}
	}
	return l.baseURL + "/" + l.endpoint + "?" + params.Encode()
}

package jira

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dt-pm-tools/prd-export/internal/config"
)

// searchFields is the fields parameter sent with every search request; the
// pipeline only consumes these, so the server is asked for nothing else.
const searchFields = "summary,status,priority,description"

// maxSearchPages bounds pagination against a server that misreports its total
// and never returns a short page.
const maxSearchPages = 1000

// DefaultPageSize is the page size used when the caller does not set one.
const DefaultPageSize = 100

// Client is a JIRA REST API v3 client.
type Client struct {
	baseURL    string
	authHeader string
	httpClient *http.Client
}

// NewClient creates a new JIRA client from the given config.
func NewClient(cfg config.Config) *Client {
	creds := base64.StdEncoding.EncodeToString([]byte(cfg.Email + ":" + cfg.Token))
	baseURL := strings.TrimRight(cfg.URL, "/")
	return &Client{
		baseURL:    baseURL,
		authHeader: "Basic " + creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SearchProject fetches every issue in the given project, paging through the
// search endpoint until the result set is exhausted. Issues are returned in
// server listing order: the first page's issues precede the second page's.
// A project with no issues yields an empty slice and no error.
func (c *Client) SearchProject(ctx context.Context, projectKey string, pageSize int) ([]Issue, error) {
	if pageSize < 1 || pageSize > 100 {
		return nil, fmt.Errorf("page size must be between 1 and 100, got %d", pageSize)
	}

	jql := fmt.Sprintf("project = %s ORDER BY created DESC", projectKey)

	var all []Issue
	startAt := 0

	for page := 0; ; page++ {
		if page >= maxSearchPages {
			return nil, fmt.Errorf("giving up after %d pages: server never returned a short page", maxSearchPages)
		}

		resp, err := c.searchPage(ctx, jql, startAt, pageSize)
		if err != nil {
			return nil, err
		}

		all = append(all, resp.Issues...)
		slog.Debug("fetched search page", "project", projectKey, "startAt", startAt, "pageCount", len(resp.Issues), "total", resp.Total)

		// A short page is authoritative even when the reported total says
		// more issues exist.
		if len(resp.Issues) < pageSize || len(all) >= resp.Total {
			break
		}
		startAt += pageSize
	}

	return all, nil
}

func (c *Client) searchPage(ctx context.Context, jql string, startAt, pageSize int) (*SearchResponse, error) {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("startAt", fmt.Sprintf("%d", startAt))
	params.Set("maxResults", fmt.Sprintf("%d", pageSize))
	params.Set("fields", searchFields)

	reqURL := fmt.Sprintf("%s/rest/api/3/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("JIRA API returned %d: %s", resp.StatusCode, string(body))
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.authHeader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}

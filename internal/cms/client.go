// Package cms talks to the hosted content service that owns the site's
// collections.
package cms

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"buildpro-site/internal/config"
	"buildpro-site/internal/content"
	"buildpro-site/internal/metrics"
	"buildpro-site/internal/models"
	pkgmodels "buildpro-site/pkg/models"
)

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: strings.TrimRight(cfg.CMSBaseURL, "/"),
		Token:   cfg.CMSToken,
		HTTP:    &http.Client{Timeout: cfg.CMSTimeout},
	}
}

// APIError is a non-2xx reply from the content service.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cms api error: %d %s - %s", e.Status, http.StatusText(e.Status), e.Body)
}

// --- Helper Functions ---

func (c *Client) sendRequest(ctx context.Context, collection, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		metrics.RecordCMSRequestDuration(collection, "error", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	metrics.RecordCMSRequestDuration(collection, strconv.Itoa(resp.StatusCode), time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{Status: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

func itemsPath(collection content.Collection) string {
	return "/collections/" + url.PathEscape(string(collection)) + "/items"
}

// --- Collection Methods ---

// GetAll fetches every record of a collection into out, which must point to
// a pkgmodels.ListResponse.
func (c *Client) GetAll(ctx context.Context, collection content.Collection, out any) error {
	body, err := c.sendRequest(ctx, string(collection), itemsPath(collection))
	if err != nil {
		return fmt.Errorf("get all %s: %w", collection, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s list: %w", collection, err)
	}
	return nil
}

// GetByID fetches one record into out. A 404 is reported as
// content.ErrNotFound.
func (c *Client) GetByID(ctx context.Context, collection content.Collection, id string, out any) error {
	body, err := c.sendRequest(ctx, string(collection), itemsPath(collection)+"/"+url.PathEscape(id))
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return content.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s %q: %w", collection, id, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s %q: %w", collection, id, err)
	}
	return nil
}

// Collection adapts one remote collection to content.Reader.
type Collection[T any] struct {
	client *Client
	name   content.Collection
}

func NewCollection[T any](client *Client, name content.Collection) *Collection[T] {
	return &Collection[T]{client: client, name: name}
}

// NewCatalog returns a catalog that reads every collection from the content
// service.
func NewCatalog(client *Client) *content.Catalog {
	return &content.Catalog{
		Projects:     NewCollection[models.Project](client, content.Projects),
		Services:     NewCollection[models.Service](client, content.Services),
		Testimonials: NewCollection[models.Testimonial](client, content.Testimonials),
	}
}

func (c *Collection[T]) ListAll(ctx context.Context) ([]T, error) {
	var resp pkgmodels.ListResponse[T]
	if err := c.client.GetAll(ctx, c.name, &resp); err != nil {
		metrics.IncrementContentFetch(string(c.name), "list", "error")
		return nil, err
	}
	metrics.IncrementContentFetch(string(c.name), "list", "ok")
	return resp.Items, nil
}

func (c *Collection[T]) GetOne(ctx context.Context, id string) (*T, error) {
	var item T
	err := c.client.GetByID(ctx, c.name, id, &item)
	if errors.Is(err, content.ErrNotFound) {
		metrics.IncrementContentFetch(string(c.name), "get", "not_found")
		return nil, err
	}
	if err != nil {
		metrics.IncrementContentFetch(string(c.name), "get", "error")
		return nil, err
	}
	metrics.IncrementContentFetch(string(c.name), "get", "ok")
	return &item, nil
}

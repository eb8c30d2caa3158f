// Package jellyfin is a thin client for the subset of the host library API
// the engine needs: querying items, writing single-item updates, triggering
// metadata refreshes, and deleting emptied season containers.
package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	mhttp "github.com/animarr/animarr/pkg/http"
)

// ClientInterface is the collaborator contract the engine depends on. All
// mutations are single-item calls; a failed call affects only that item.
type ClientInterface interface {
	Items(ctx context.Context, filter ItemsFilter) (*ItemsResponse, error)
	UpdateItem(ctx context.Context, item BaseItem, reason UpdateReason) error
	RefreshMetadata(ctx context.Context, itemID string, opts RefreshOptions) error
	DeleteItem(ctx context.Context, itemID string) error
}

type Client struct {
	baseURL *url.URL
	apiKey  string
	client  mhttp.HTTPClient
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient sets the underlying http client
func WithHTTPClient(client mhttp.HTTPClient) Option {
	return func(c *Client) {
		c.client = client
	}
}

// New creates a host library client for the given server URL and API key
func New(rawURL, apiKey string, opts ...Option) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}

	c := &Client{
		baseURL: u,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := *c.baseURL
	u.Path, _ = url.JoinPath(u.Path, path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf(`MediaBrowser Token=%q`, c.apiKey))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// Items queries one page of library items.
func (c *Client) Items(ctx context.Context, filter ItemsFilter) (*ItemsResponse, error) {
	query := url.Values{}
	if filter.ParentID != "" {
		query.Set("parentId", filter.ParentID)
	}
	if len(filter.IncludeItemTypes) > 0 {
		query.Set("includeItemTypes", strings.Join(filter.IncludeItemTypes, ","))
	}
	if filter.Recursive {
		query.Set("recursive", "true")
	}
	if len(filter.Fields) > 0 {
		query.Set("fields", strings.Join(filter.Fields, ","))
	}
	if filter.StartIndex > 0 {
		query.Set("startIndex", strconv.Itoa(filter.StartIndex))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}

	req, err := c.newRequest(ctx, http.MethodGet, "/Items", query, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected items query status: %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	result := new(ItemsResponse)
	err = json.Unmarshal(b, result)
	return result, err
}

// UpdateItem writes one item back to the host library. The reason is part of
// the collaborator contract and recorded host-side; the REST call itself
// carries the full item payload.
func (c *Client) UpdateItem(ctx context.Context, item BaseItem, reason UpdateReason) error {
	if item.ID == "" {
		return fmt.Errorf("item has no id")
	}

	b, err := json.Marshal(item)
	if err != nil {
		return err
	}

	query := url.Values{}
	query.Set("reason", string(reason))

	req, err := c.newRequest(ctx, http.MethodPost, "/Items/"+item.ID, query, bytes.NewReader(b))
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected item update status: %s", resp.Status)
	}

	return nil
}

// RefreshMetadata asks the host to refresh one item's metadata.
func (c *Client) RefreshMetadata(ctx context.Context, itemID string, opts RefreshOptions) error {
	query := url.Values{}
	if opts.MetadataRefreshMode != "" {
		query.Set("metadataRefreshMode", opts.MetadataRefreshMode)
	}
	query.Set("replaceAllMetadata", strconv.FormatBool(opts.ReplaceAllMetadata))
	query.Set("replaceAllImages", strconv.FormatBool(opts.ReplaceAllImages))

	req, err := c.newRequest(ctx, http.MethodPost, "/Items/"+itemID+"/Refresh", query, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected refresh status: %s", resp.Status)
	}

	return nil
}

// DeleteItem removes an item from the host library.
func (c *Client) DeleteItem(ctx context.Context, itemID string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/Items/"+itemID, nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected delete status: %s", resp.Status)
	}

	return nil
}

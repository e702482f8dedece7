// Package airtable is a minimal client for the remote record store the
// editorial team reviews terms in. Records are flat string field maps;
// list reads paginate through an opaque offset token, and there is no
// bulk-delete primitive, so delete-all iterates pages and deletes each
// record individually.
package airtable

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
)

const defaultBaseURL = "https://api.airtable.com/v0"

type Client struct {
	BaseURL string
	BaseID  string
	Table   string
	APIKey  string
	Client  *http.Client
}

// Record is one remote row. Fields are stringly typed on the wire;
// booleans travel as "True"/"False".
type Record struct {
	ID     string            `json:"id"`
	Fields map[string]string `json:"fields"`
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

func New(baseID, table, apiKey string) *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		BaseID:  baseID,
		Table:   table,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) tableURL() string {
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, c.BaseID, url.PathEscape(c.Table))
}

func (c *Client) do(ctx context.Context, method, rawURL string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewBuffer(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("airtable request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("airtable error: status %d, body: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}

// FetchAll follows the offset continuation token until the remote store
// stops returning one, accumulating every page.
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	var records []Record
	offset := ""
	for {
		pageURL := c.tableURL()
		if offset != "" {
			pageURL += "?offset=" + url.QueryEscape(offset)
		}
		body, err := c.do(ctx, http.MethodGet, pageURL, nil)
		if err != nil {
			return nil, err
		}
		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("unmarshal list response: %w", err)
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Push creates one remote record from a field map.
func (c *Client) Push(ctx context.Context, fields map[string]string) (*Record, error) {
	payload, err := json.Marshal(map[string]any{"fields": fields})
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	body, err := c.do(ctx, http.MethodPost, c.tableURL(), payload)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("unmarshal create response: %w", err)
	}
	return &record, nil
}

// Delete removes one record by its remote id.
func (c *Client) Delete(ctx context.Context, recordID string) error {
	_, err := c.do(ctx, http.MethodDelete, c.tableURL()+"/"+recordID, nil)
	return err
}

// DeleteAll keeps fetching the first page and deleting every record on
// it until the table is empty.
func (c *Client) DeleteAll(ctx context.Context) error {
	for {
		body, err := c.do(ctx, http.MethodGet, c.tableURL(), nil)
		if err != nil {
			return err
		}
		var page listResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return fmt.Errorf("unmarshal list response: %w", err)
		}
		if len(page.Records) == 0 {
			return nil
		}
		for _, record := range page.Records {
			if err := c.Delete(ctx, record.ID); err != nil {
				return err
			}
		}
	}
}

// Sanitize escapes a field value the way the remote store expects:
// non-ASCII and control characters become backslash escapes. Double
// quotes stay bare; QuoteToASCII escapes them for a Go string literal,
// which is not how the remote stores them.
func Sanitize(value string) string {
	quoted := strconv.QuoteToASCII(value)
	return strings.ReplaceAll(quoted[1:len(quoted)-1], `\"`, `"`)
}

// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rest implements the store contract as an HTTP client against
// the fallback REST service. Entities travel in their canonical JSON
// shapes; error responses carry an {"error": ...} envelope.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/akhdar/akhdar-go/internal/transfer"
)

// Client talks to a fallback REST service.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL, for example
// "http://localhost:8080/api".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// NewWithHTTPClient creates a client with a caller-supplied http.Client.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, http: hc}
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// do sends one request and decodes a 2xx response body into out (when
// non-nil). A 404 is reported as errNotFound so callers can map it onto
// the nil-result convention.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return errNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// errNotFound marks a 404; it never escapes the package.
var errNotFound = fmt.Errorf("not found")

// Export downloads the full content of the fallback store.
func (c *Client) Export(ctx context.Context) (*transfer.Document, error) {
	var doc transfer.Document
	if err := c.do(ctx, http.MethodGet, "/admin/export", nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Import uploads a transfer document into the fallback store.
func (c *Client) Import(ctx context.Context, doc *transfer.Document) error {
	return c.do(ctx, http.MethodPost, "/admin/import", doc, nil)
}

// ClearAll empties the fallback store.
func (c *Client) ClearAll(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/admin/clear-all", nil, nil)
}

// SeedSampleData asks the fallback store to seed its demo content.
func (c *Client) SeedSampleData(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/admin/initialize-sample-data", nil, nil)
}

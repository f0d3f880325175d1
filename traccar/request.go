// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

// maxErrorBodySize limits how much of an error response body is read back
// for diagnostics, preventing unbounded allocation on large error pages.
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB).
// Returns a placeholder if reading fails so error paths never mask the
// original status code.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return strings.TrimSpace(string(body))
}

// do executes the request, logging one debug event per round trip and
// wrapping transport failures in *TransportError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	op := req.Method + " " + req.URL.Path

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().Str("op", op).Err(err).Msg("request failed")
		return nil, &TransportError{Op: op, Err: err}
	}

	c.log.Debug().Str("op", op).Int("status", resp.StatusCode).Msg("request completed")
	return resp, nil
}

// get issues a GET with optional query parameters. jsonHeaders adds explicit
// Accept/Content-Type headers, which the report endpoints require to return
// JSON rather than an Excel export.
func (c *Client) get(ctx context.Context, rawURL string, params url.Values, jsonHeaders bool) (*http.Response, error) {
	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if jsonHeaders {
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req)
}

// postForm issues a POST with a form-encoded body (credential login).
func (c *Client) postForm(ctx context.Context, rawURL string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// sendJSON issues a POST or PUT with a JSON-encoded body.
func (c *Client) sendJSON(ctx context.Context, method, rawURL string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// del issues a DELETE.
func (c *Client) del(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req)
}

// decodeJSON decodes the response body into result.
func decodeJSON(resp *http.Response, result any) error {
	return json.NewDecoder(resp.Body).Decode(result)
}

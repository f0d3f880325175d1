// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

// Shared status-code dispatch for the resource endpoint families. Every
// operation in devices.go, geofences.go, users.go and friends funnels
// through one of these helpers, so the three-way contract (success /
// known 400 kind / generic APIError) lives in exactly one place.

package traccar

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// autoAssignID is sent as the entity id on create; the server replaces it
// with the real assigned identifier.
const autoAssignID = -1

// listAll fetches every entity of a resource with the all=true parameter.
// Requires admin or manager rights server-side; a 400 means the caller
// lacks them.
func (c *Client) listAll(ctx context.Context, rawURL string, result any) error {
	params := url.Values{}
	params.Set("all", "true")

	resp, err := c.get(ctx, rawURL, params, false)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeJSON(resp, result)
	case http.StatusBadRequest:
		return ErrPermissionDenied
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

// listFiltered fetches entities scoped to the caller, optionally narrowed by
// filters. A 400 means the requested entities do not exist (or are not
// visible to the caller), reported as *NotFoundError.
func (c *Client) listFiltered(ctx context.Context, rawURL, resource string, filters []Filter, result any) error {
	params := url.Values{}
	for _, f := range filters {
		f.apply(params)
	}

	resp, err := c.get(ctx, rawURL, params, false)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeJSON(resp, result)
	case http.StatusBadRequest:
		return notFound(resource, filters)
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

// create POSTs a new entity and decodes the server's copy of it.
func (c *Client) create(ctx context.Context, rawURL string, payload, result any) error {
	resp, err := c.sendJSON(ctx, http.MethodPost, rawURL, payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeJSON(resp, result)
	case http.StatusBadRequest:
		return &BadRequestError{Body: readBodyForError(resp.Body)}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

// rawByID fetches the current state of one entity as an untyped field map.
// Updates operate on the raw map rather than a typed struct so that server
// fields this library does not model survive the read-merge-write cycle.
func (c *Client) rawByID(ctx context.Context, rawURL, resource string, id int) (map[string]any, error) {
	filters := []Filter{ByID(id)}

	var records []map[string]any
	if err := c.listFiltered(ctx, rawURL, resource, filters, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, notFound(resource, filters)
	}
	return records[0], nil
}

// update PUTs the merged record to resource/{id} and decodes the result.
func (c *Client) update(ctx context.Context, rawURL string, id int, payload, result any) error {
	resp, err := c.sendJSON(ctx, http.MethodPut, rawURL+"/"+strconv.Itoa(id), payload)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeJSON(resp, result)
	case http.StatusBadRequest:
		return &BadRequestError{Body: readBodyForError(resp.Body)}
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

// remove DELETEs resource/{id}. Only 204 is success; anything else is an
// *APIError, including 200.
func (c *Client) remove(ctx context.Context, rawURL string, id int) error {
	resp, err := c.del(ctx, rawURL+"/"+strconv.Itoa(id))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
	return nil
}

// fetchList handles the GET endpoints where a 400 signals missing
// privileges rather than a bad filter: groups, positions and the
// events/trips/route reports. jsonHeaders forces JSON output on report
// endpoints that would otherwise produce an Excel export.
func (c *Client) fetchList(ctx context.Context, rawURL string, params url.Values, jsonHeaders bool, result any) error {
	resp, err := c.get(ctx, rawURL, params, jsonHeaders)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		return decodeJSON(resp, result)
	case http.StatusBadRequest:
		return ErrPermissionDenied
	default:
		return &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

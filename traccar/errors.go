// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for conditions that carry no payload beyond their kind.
var (
	// ErrForbiddenAccess indicates a credential login rejected with HTTP 401.
	ErrForbiddenAccess = errors.New("traccar: invalid username or password")

	// ErrInvalidToken indicates a token login rejected with HTTP 404.
	ErrInvalidToken = errors.New("traccar: invalid session token")

	// ErrPermissionDenied indicates the caller lacks the admin or manager
	// rights a list-all or report endpoint requires (HTTP 400 on those paths).
	ErrPermissionDenied = errors.New("traccar: admin or manager access required")

	// ErrInvalidPermission indicates a permission link with an invalid
	// device/group combination: exactly one of the two must be set.
	ErrInvalidPermission = errors.New("traccar: exactly one of device id or group id must be set")
)

// NotFoundError is returned when a filtered lookup matches nothing. It
// carries the resource type and the filter that produced no results.
type NotFoundError struct {
	Resource string   // entity type, e.g. "Device"
	Filter   string   // query key, e.g. "id" or "uniqueId"
	Values   []string // requested identifiers
}

func (e *NotFoundError) Error() string {
	if e.Filter == "" {
		return fmt.Sprintf("traccar: %s not found", e.Resource)
	}
	return fmt.Sprintf("traccar: %s not found for %s=%s", e.Resource, e.Filter, strings.Join(e.Values, ","))
}

// BadRequestError is returned when the server rejects a write operation
// (create, update, permission link) with HTTP 400. Body holds the raw
// response text for diagnostics.
type BadRequestError struct {
	Body string
}

func (e *BadRequestError) Error() string {
	return "traccar: bad request: " + e.Body
}

// APIError is the catch-all for any unexpected status code. It carries the
// raw response body so callers can log what the server actually said.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("traccar: unexpected status %d: %s", e.StatusCode, e.Body)
}

// TransportError wraps failures below the HTTP layer: connection refused,
// DNS errors, timeouts and cancelled contexts. Op names the operation that
// failed, e.g. "GET /api/devices".
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("traccar: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

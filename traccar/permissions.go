// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"net/http"

	"github.com/trackforge/go-traccar/models"
)

// AddPermission links a user to a device or to a group. Exactly one of
// perm.DeviceID and perm.GroupID must be nonzero; anything else returns
// ErrInvalidPermission before any request is made.
//
// The server answers 204 with no body, so on success the submitted link is
// returned as confirmation.
func (c *Client) AddPermission(ctx context.Context, perm models.Permission) (*models.Permission, error) {
	if perm.UserID == 0 {
		return nil, ErrInvalidPermission
	}
	if (perm.DeviceID == 0) == (perm.GroupID == 0) {
		return nil, ErrInvalidPermission
	}

	resp, err := c.sendJSON(ctx, http.MethodPost, c.urls.permissions, perm)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return &perm, nil
	case http.StatusBadRequest:
		return nil, &BadRequestError{Body: readBodyForError(resp.Body)}
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

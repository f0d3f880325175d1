// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"net/http"
	"net/url"

	"github.com/trackforge/go-traccar/models"
)

// LoginWithCredentials creates a server session from an email and password.
// On success the server sets a session cookie, which the client's cookie jar
// carries on every later call.
//
// Returns ErrForbiddenAccess on HTTP 401 (wrong credentials).
func (c *Client) LoginWithCredentials(ctx context.Context, email, password string) (*models.Session, error) {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", password)

	resp, err := c.postForm(ctx, c.urls.session, form)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var session models.Session
		if err := decodeJSON(resp, &session); err != nil {
			return nil, err
		}
		return &session, nil
	case http.StatusUnauthorized:
		return nil, ErrForbiddenAccess
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

// LoginWithToken creates a server session from a pre-generated token (users
// generate these in the Traccar web interface). On success the token is
// cached on the client and exposed by Token. A failed login leaves any
// previously cached token unchanged.
//
// Returns ErrInvalidToken on HTTP 404 (unknown token).
func (c *Client) LoginWithToken(ctx context.Context, token string) (*models.Session, error) {
	params := url.Values{}
	params.Set("token", token)

	resp, err := c.get(ctx, c.urls.session, params, false)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
		var session models.Session
		if err := decodeJSON(resp, &session); err != nil {
			return nil, err
		}
		c.setToken(token)
		return &session, nil
	case http.StatusNotFound:
		return nil, ErrInvalidToken
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}
}

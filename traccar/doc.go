// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

// Package traccar implements a client for the Traccar GPS tracking server
// REST API (https://www.traccar.org/api-reference/).
//
// The client covers session login (credentials and token), device and
// geofence CRUD, notifications, positions, the events/trips/route reports,
// users, groups and permissions. Every operation issues a single HTTP round
// trip (updates issue two: a read then a write) and maps the response status
// code onto the error taxonomy in errors.go.
//
// # Quick Start
//
//	client, err := traccar.New(traccar.Config{BaseURL: "https://demo.traccar.org"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	session, err := client.LoginWithCredentials(ctx, "admin@example.com", "secret")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	devices, err := client.GetDevices(ctx)
//
// # Sessions
//
// LoginWithCredentials authenticates through the server's session cookie,
// which the client's cookie jar carries across subsequent calls.
// LoginWithToken authenticates with a pre-generated token and caches it on
// the client; a failed token login leaves any previously cached token
// untouched.
//
// # Errors
//
// Status codes translate into sentinel and typed errors: ErrForbiddenAccess,
// ErrInvalidToken, ErrPermissionDenied, *NotFoundError, *BadRequestError and
// the catch-all *APIError. Failures below HTTP (connection refused, timeout,
// cancelled context) surface as *TransportError. The client never retries.
package traccar

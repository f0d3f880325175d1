// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"fmt"

	"github.com/trackforge/go-traccar/models"
)

// GeofenceCreate holds the fields for creating a geofence. Name and the WKT
// Area are required.
type GeofenceCreate struct {
	Name string `validate:"required"`
	// Area is the geometry in WKT form, e.g. "CIRCLE (40.41 -3.70, 500)".
	Area        string `validate:"required"`
	Description string
	CalendarID  int
	Attributes  map[string]any
}

// GeofenceUpdate is a partial update: nil fields keep the geofence's current
// server-side value, non-nil fields replace it.
type GeofenceUpdate struct {
	Name        *string
	Area        *string
	Description *string
	CalendarID  *int
	Attributes  map[string]any
}

func (u GeofenceUpdate) fields() map[string]any {
	overlay := make(map[string]any)
	if u.Name != nil {
		overlay["name"] = *u.Name
	}
	if u.Area != nil {
		overlay["area"] = *u.Area
	}
	if u.Description != nil {
		overlay["description"] = *u.Description
	}
	if u.CalendarID != nil {
		overlay["calendarId"] = *u.CalendarID
	}
	if u.Attributes != nil {
		overlay["attributes"] = u.Attributes
	}
	return overlay
}

// GetAllGeofences fetches every geofence on the server. Requires admin or
// manager rights; returns ErrPermissionDenied otherwise.
func (c *Client) GetAllGeofences(ctx context.Context) ([]models.Geofence, error) {
	var geofences []models.Geofence
	if err := c.listAll(ctx, c.urls.geofences, &geofences); err != nil {
		return nil, err
	}
	return geofences, nil
}

// GetGeofences fetches the caller's geofences, optionally narrowed by a
// filter (ByID, ByUserID, ByDeviceID or ByGroupID).
//
// Returns *NotFoundError when the filter matches nothing.
func (c *Client) GetGeofences(ctx context.Context, filters ...Filter) ([]models.Geofence, error) {
	var geofences []models.Geofence
	if err := c.listFiltered(ctx, c.urls.geofences, "Geofence", filters, &geofences); err != nil {
		return nil, err
	}
	return geofences, nil
}

// CreateGeofence creates a new geofence. The server assigns the id.
func (c *Client) CreateGeofence(ctx context.Context, in GeofenceCreate) (*models.Geofence, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid geofence: %w", err)
	}

	payload := map[string]any{
		"id":          autoAssignID,
		"name":        in.Name,
		"description": in.Description,
		"area":        in.Area,
	}
	if in.CalendarID != 0 {
		payload["calendarId"] = in.CalendarID
	}
	if in.Attributes != nil {
		payload["attributes"] = in.Attributes
	}

	var geofence models.Geofence
	if err := c.create(ctx, c.urls.geofences, payload, &geofence); err != nil {
		return nil, err
	}
	return &geofence, nil
}

// UpdateGeofence applies a partial update to a geofence using the same
// read-merge-write cycle as UpdateDevice.
func (c *Client) UpdateGeofence(ctx context.Context, id int, in GeofenceUpdate) (*models.Geofence, error) {
	current, err := c.rawByID(ctx, c.urls.geofences, "Geofence", id)
	if err != nil {
		return nil, err
	}

	merged := mergeRecord(current, in.fields())

	var geofence models.Geofence
	if err := c.update(ctx, c.urls.geofences, id, merged, &geofence); err != nil {
		return nil, err
	}
	return &geofence, nil
}

// DeleteGeofence removes a geofence. Success is HTTP 204 with no body.
func (c *Client) DeleteGeofence(ctx context.Context, id int) error {
	return c.remove(ctx, c.urls.geofences, id)
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/trackforge/go-traccar/models"
)

// Report query defaults. The server requires both parameters to be present;
// these are the values sent when the caller leaves them unset.
const (
	// EventTypeAll is the wildcard event type, matching every event kind.
	EventTypeAll = "%"

	// DefaultGroupID is the group scope used when none is given. Group 1
	// is the root group a stock Traccar installation starts with.
	DefaultGroupID = "1"
)

// EventsQuery selects events for GetEvents. From and To are required.
type EventsQuery struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required"`
	// Type filters by event kind, e.g. "geofenceEnter". Empty means all
	// kinds (EventTypeAll is sent).
	Type string
	// DeviceID limits results to one device. Zero means no device filter.
	DeviceID int
	// GroupID scopes the report. Zero means DefaultGroupID.
	GroupID int
}

// TripsQuery selects trips for GetTrips. From and To are required.
type TripsQuery struct {
	From     time.Time `validate:"required"`
	To       time.Time `validate:"required"`
	DeviceID int
	// GroupID scopes the report. Zero means DefaultGroupID.
	GroupID int
}

// GetEvents fetches the events report for a time range. Returns
// ErrPermissionDenied when the caller may not read the requested scope.
func (c *Client) GetEvents(ctx context.Context, q EventsQuery) ([]models.Event, error) {
	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("invalid events query: %w", err)
	}

	params := url.Values{}
	params.Set("from", formatTime(q.From))
	params.Set("to", formatTime(q.To))

	eventType := q.Type
	if eventType == "" {
		eventType = EventTypeAll
	}
	params.Set("type", eventType)

	groupID := DefaultGroupID
	if q.GroupID != 0 {
		groupID = strconv.Itoa(q.GroupID)
	}
	params.Set("groupId", groupID)

	if q.DeviceID != 0 {
		params.Set("deviceId", strconv.Itoa(q.DeviceID))
	}

	var events []models.Event
	if err := c.fetchList(ctx, c.urls.reportsEvents, params, false, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetTrips fetches the trips report for a time range. Returns
// ErrPermissionDenied when the caller may not read the requested scope.
func (c *Client) GetTrips(ctx context.Context, q TripsQuery) ([]models.Trip, error) {
	if err := validate.Struct(q); err != nil {
		return nil, fmt.Errorf("invalid trips query: %w", err)
	}

	params := url.Values{}
	params.Set("from", formatTime(q.From))
	params.Set("to", formatTime(q.To))

	groupID := DefaultGroupID
	if q.GroupID != 0 {
		groupID = strconv.Itoa(q.GroupID)
	}
	params.Set("groupId", groupID)

	if q.DeviceID != 0 {
		params.Set("deviceId", strconv.Itoa(q.DeviceID))
	}

	var trips []models.Trip
	if err := c.fetchList(ctx, c.urls.reportsTrips, params, true, &trips); err != nil {
		return nil, err
	}
	return trips, nil
}

// GetRoute fetches the raw position history of one device for a time range
// via the route report.
func (c *Client) GetRoute(ctx context.Context, deviceID int, from, to time.Time) ([]models.Position, error) {
	if deviceID == 0 {
		return nil, fmt.Errorf("invalid route query: device id is required")
	}
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("invalid route query: from and to are required")
	}

	params := url.Values{}
	params.Set("deviceId", strconv.Itoa(deviceID))
	params.Set("from", formatTime(from))
	params.Set("to", formatTime(to))

	var positions []models.Position
	if err := c.fetchList(ctx, c.urls.reportsRoute, params, true, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

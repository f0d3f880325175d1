// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/trackforge/go-traccar/models"
)

// PositionsQuery narrows a positions fetch. All fields are optional; with a
// zero query the server returns the latest known position of each of the
// caller's devices.
type PositionsQuery struct {
	// DeviceID limits results to one device.
	DeviceID int
	// From and To bound the fix time. Both must be set together with
	// DeviceID to fetch a history range.
	From time.Time
	To   time.Time
	// PositionID fetches a single position by identifier.
	PositionID int
}

// GetPositions fetches GPS fixes. Returns ErrPermissionDenied when the
// caller may not read the requested device.
func (c *Client) GetPositions(ctx context.Context, q PositionsQuery) ([]models.Position, error) {
	params := url.Values{}
	if q.DeviceID != 0 {
		params.Set("deviceId", strconv.Itoa(q.DeviceID))
	}
	if !q.From.IsZero() {
		params.Set("from", formatTime(q.From))
	}
	if !q.To.IsZero() {
		params.Set("to", formatTime(q.To))
	}
	if q.PositionID != 0 {
		params.Set("id", strconv.Itoa(q.PositionID))
	}

	var positions []models.Position
	if err := c.fetchList(ctx, c.urls.positions, params, false, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// formatTime renders a timestamp the way Traccar expects query times:
// RFC 3339 in UTC.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

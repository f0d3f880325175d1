// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

// Geofence is a named geographic area used for entry/exit events.
// Area carries the geometry in WKT form, for example
// "CIRCLE (40.4167 -3.7037, 500)" or a POLYGON expression.
type Geofence struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Area        string         `json:"area"`
	CalendarID  int            `json:"calendarId"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}

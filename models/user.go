// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

import "time"

// User is a Traccar account. Administrators and managers may own devices,
// groups and other users.
type User struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone,omitempty"`
	ReadOnly       bool           `json:"readonly"`
	Administrator  bool           `json:"administrator"`
	Map            string         `json:"map,omitempty"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Zoom           int            `json:"zoom"`
	Token          string         `json:"token,omitempty"`
	Disabled       bool           `json:"disabled"`
	ExpirationTime *time.Time     `json:"expirationTime,omitempty"`
	DeviceLimit    int            `json:"deviceLimit"`
	UserLimit      int            `json:"userLimit"`
	DeviceReadonly bool           `json:"deviceReadonly"`
	LimitCommands  bool           `json:"limitCommands"`
	Attributes     map[string]any `json:"attributes,omitempty"`
}

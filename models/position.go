// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

import "time"

// Position is a single GPS fix reported by a device.
//
// Speed is in knots and Course in degrees, as stored by Traccar. DeviceTime
// is the time reported by the device, FixTime the time of the GPS fix and
// ServerTime the time the server received the message.
type Position struct {
	ID         int            `json:"id"`
	DeviceID   int            `json:"deviceId"`
	Protocol   string         `json:"protocol,omitempty"`
	DeviceTime *time.Time     `json:"deviceTime,omitempty"`
	FixTime    *time.Time     `json:"fixTime,omitempty"`
	ServerTime *time.Time     `json:"serverTime,omitempty"`
	Outdated   bool           `json:"outdated"`
	Valid      bool           `json:"valid"`
	Latitude   float64        `json:"latitude"`
	Longitude  float64        `json:"longitude"`
	Altitude   float64        `json:"altitude"`
	Speed      float64        `json:"speed"`
	Course     float64        `json:"course"`
	Address    string         `json:"address,omitempty"`
	Accuracy   float64        `json:"accuracy"`
	Network    map[string]any `json:"network,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

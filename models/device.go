// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

import "time"

// Device status values reported by Traccar.
const (
	DeviceStatusOnline  = "online"
	DeviceStatusOffline = "offline"
	DeviceStatusUnknown = "unknown"
)

// Device is a tracked GPS unit identified by a unique hardware identifier.
type Device struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	UniqueID   string         `json:"uniqueId"`
	Status     string         `json:"status,omitempty"`
	Disabled   bool           `json:"disabled"`
	LastUpdate *time.Time     `json:"lastUpdate,omitempty"`
	PositionID int            `json:"positionId"`
	GroupID    int            `json:"groupId"`
	Phone      string         `json:"phone,omitempty"`
	Model      string         `json:"model,omitempty"`
	Contact    string         `json:"contact,omitempty"`
	Category   string         `json:"category,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

// Group is a named collection of devices. Groups may nest via GroupID.
type Group struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	GroupID    int            `json:"groupId"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Permission links a user to a device or to a group. Exactly one of
// DeviceID and GroupID is set.
type Permission struct {
	UserID   int `json:"userId"`
	DeviceID int `json:"deviceId,omitempty"`
	GroupID  int `json:"groupId,omitempty"`
}

// Notification is a server-side notification rule (web, mail, sms).
type Notification struct {
	ID         int            `json:"id"`
	Type       string         `json:"type"`
	Always     bool           `json:"always"`
	Web        bool           `json:"web"`
	Mail       bool           `json:"mail"`
	SMS        bool           `json:"sms"`
	CalendarID int            `json:"calendarId"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

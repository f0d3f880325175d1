// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package models

import "time"

// Event is a server-side occurrence derived from device activity, such as a
// geofence entry, an overspeed alarm or a status change.
type Event struct {
	ID            int            `json:"id"`
	Type          string         `json:"type"`
	ServerTime    *time.Time     `json:"serverTime,omitempty"`
	DeviceID      int            `json:"deviceId"`
	PositionID    int            `json:"positionId"`
	GeofenceID    int            `json:"geofenceId"`
	MaintenanceID int            `json:"maintenanceId"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}

// Trip is a time-ranged aggregation of positions between two stops, as
// produced by the /api/reports/trips endpoint.
type Trip struct {
	DeviceID        int        `json:"deviceId"`
	DeviceName      string     `json:"deviceName,omitempty"`
	Distance        float64    `json:"distance"`
	AverageSpeed    float64    `json:"averageSpeed"`
	MaxSpeed        float64    `json:"maxSpeed"`
	SpentFuel       float64    `json:"spentFuel"`
	StartOdometer   float64    `json:"startOdometer"`
	EndOdometer     float64    `json:"endOdometer"`
	StartTime       *time.Time `json:"startTime,omitempty"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	StartPositionID int        `json:"startPositionId"`
	EndPositionID   int        `json:"endPositionId"`
	StartLat        float64    `json:"startLat"`
	StartLon        float64    `json:"startLon"`
	EndLat          float64    `json:"endLat"`
	EndLon          float64    `json:"endLon"`
	StartAddress    string     `json:"startAddress,omitempty"`
	EndAddress      string     `json:"endAddress,omitempty"`
	Duration        int64      `json:"duration"`
	DriverUniqueID  string     `json:"driverUniqueId,omitempty"`
	DriverName      string     `json:"driverName,omitempty"`
}

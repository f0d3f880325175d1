// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"time"

	"github.com/trackforge/go-traccar/models"
)

// API is the full set of Traccar operations this library exposes. It is
// implemented by *Client and by *BreakerClient, and by mocks in tests of
// code built on top of this package.
type API interface {
	// Session
	LoginWithCredentials(ctx context.Context, email, password string) (*models.Session, error)
	LoginWithToken(ctx context.Context, token string) (*models.Session, error)
	Token() string

	// Devices
	GetAllDevices(ctx context.Context) ([]models.Device, error)
	GetDevices(ctx context.Context, filters ...Filter) ([]models.Device, error)
	CreateDevice(ctx context.Context, in DeviceCreate) (*models.Device, error)
	UpdateDevice(ctx context.Context, id int, in DeviceUpdate) (*models.Device, error)
	DeleteDevice(ctx context.Context, id int) error

	// Geofences
	GetAllGeofences(ctx context.Context) ([]models.Geofence, error)
	GetGeofences(ctx context.Context, filters ...Filter) ([]models.Geofence, error)
	CreateGeofence(ctx context.Context, in GeofenceCreate) (*models.Geofence, error)
	UpdateGeofence(ctx context.Context, id int, in GeofenceUpdate) (*models.Geofence, error)
	DeleteGeofence(ctx context.Context, id int) error

	// Notifications
	GetAllNotifications(ctx context.Context) ([]models.Notification, error)

	// Users and groups
	GetAllUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, in UserCreate) (*models.User, error)
	GetGroups(ctx context.Context, userID int) ([]models.Group, error)

	// Positions and reports
	GetPositions(ctx context.Context, q PositionsQuery) ([]models.Position, error)
	GetEvents(ctx context.Context, q EventsQuery) ([]models.Event, error)
	GetTrips(ctx context.Context, q TripsQuery) ([]models.Trip, error)
	GetRoute(ctx context.Context, deviceID int, from, to time.Time) ([]models.Position, error)

	// Permissions
	AddPermission(ctx context.Context, perm models.Permission) (*models.Permission, error)
}

var (
	_ API = (*Client)(nil)
	_ API = (*BreakerClient)(nil)
)

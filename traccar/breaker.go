// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/trackforge/go-traccar/models"
)

// BreakerSettings configures the circuit breaker decorating a Client.
type BreakerSettings struct {
	// Name labels the breaker in state-change log events.
	Name string
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval resets the failure counts while closed.
	Interval time.Duration
	// Timeout before an open breaker transitions to half-open.
	Timeout time.Duration
	// MinRequests is the minimum sample size before FailureRatio applies.
	MinRequests uint32
	// FailureRatio at or above which the breaker opens.
	FailureRatio float64
	// Logger receives state transition events. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultBreakerSettings mirror the tuning used against other upstream APIs:
// open at a 60% failure rate over at least 10 requests, probe again after
// two minutes.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		Name:         "traccar-api",
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// BreakerClient decorates a Client with a circuit breaker so that a dead or
// misbehaving Traccar server fails fast instead of tying up callers for a
// full timeout per request. It adds no retries and no backoff; when the
// circuit is open calls return gobreaker.ErrOpenState immediately.
//
// The breaker uses real time for its interval and timeout bookkeeping.
type BreakerClient struct {
	client *Client
	cb     *gobreaker.CircuitBreaker[any]
}

// NewBreakerClient wraps client with a circuit breaker configured by st.
// Zero-value fields of st fall back to DefaultBreakerSettings.
func NewBreakerClient(client *Client, st BreakerSettings) *BreakerClient {
	defaults := DefaultBreakerSettings()
	if st.Name == "" {
		st.Name = defaults.Name
	}
	if st.MaxRequests == 0 {
		st.MaxRequests = defaults.MaxRequests
	}
	if st.Interval == 0 {
		st.Interval = defaults.Interval
	}
	if st.Timeout == 0 {
		st.Timeout = defaults.Timeout
	}
	if st.MinRequests == 0 {
		st.MinRequests = defaults.MinRequests
	}
	if st.FailureRatio == 0 {
		st.FailureRatio = defaults.FailureRatio
	}

	logger := zerolog.Nop()
	if st.Logger != nil {
		logger = *st.Logger
	}

	cb := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        st.Name,
		MaxRequests: st.MaxRequests,
		Interval:    st.Interval,
		Timeout:     st.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < st.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= st.FailureRatio {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("opening traccar circuit")
				return true
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().
				Str("breaker", name).
				Str("from", breakerStateString(from)).
				Str("to", breakerStateString(to)).
				Msg("traccar circuit state transition")
		},
	})

	return &BreakerClient{client: client, cb: cb}
}

func breakerStateString(s gobreaker.State) string {
	switch s {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// execute runs fn through the circuit breaker, preserving its result type.
func execute[T any](b *BreakerClient, fn func() (T, error)) (T, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return out.(T), nil
}

// Token reads the cached session token. No request is made, so the breaker
// is bypassed.
func (b *BreakerClient) Token() string { return b.client.Token() }

func (b *BreakerClient) LoginWithCredentials(ctx context.Context, email, password string) (*models.Session, error) {
	return execute(b, func() (*models.Session, error) { return b.client.LoginWithCredentials(ctx, email, password) })
}

func (b *BreakerClient) LoginWithToken(ctx context.Context, token string) (*models.Session, error) {
	return execute(b, func() (*models.Session, error) { return b.client.LoginWithToken(ctx, token) })
}

func (b *BreakerClient) GetAllDevices(ctx context.Context) ([]models.Device, error) {
	return execute(b, func() ([]models.Device, error) { return b.client.GetAllDevices(ctx) })
}

func (b *BreakerClient) GetDevices(ctx context.Context, filters ...Filter) ([]models.Device, error) {
	return execute(b, func() ([]models.Device, error) { return b.client.GetDevices(ctx, filters...) })
}

func (b *BreakerClient) CreateDevice(ctx context.Context, in DeviceCreate) (*models.Device, error) {
	return execute(b, func() (*models.Device, error) { return b.client.CreateDevice(ctx, in) })
}

func (b *BreakerClient) UpdateDevice(ctx context.Context, id int, in DeviceUpdate) (*models.Device, error) {
	return execute(b, func() (*models.Device, error) { return b.client.UpdateDevice(ctx, id, in) })
}

func (b *BreakerClient) DeleteDevice(ctx context.Context, id int) error {
	_, err := execute(b, func() (struct{}, error) { return struct{}{}, b.client.DeleteDevice(ctx, id) })
	return err
}

func (b *BreakerClient) GetAllGeofences(ctx context.Context) ([]models.Geofence, error) {
	return execute(b, func() ([]models.Geofence, error) { return b.client.GetAllGeofences(ctx) })
}

func (b *BreakerClient) GetGeofences(ctx context.Context, filters ...Filter) ([]models.Geofence, error) {
	return execute(b, func() ([]models.Geofence, error) { return b.client.GetGeofences(ctx, filters...) })
}

func (b *BreakerClient) CreateGeofence(ctx context.Context, in GeofenceCreate) (*models.Geofence, error) {
	return execute(b, func() (*models.Geofence, error) { return b.client.CreateGeofence(ctx, in) })
}

func (b *BreakerClient) UpdateGeofence(ctx context.Context, id int, in GeofenceUpdate) (*models.Geofence, error) {
	return execute(b, func() (*models.Geofence, error) { return b.client.UpdateGeofence(ctx, id, in) })
}

func (b *BreakerClient) DeleteGeofence(ctx context.Context, id int) error {
	_, err := execute(b, func() (struct{}, error) { return struct{}{}, b.client.DeleteGeofence(ctx, id) })
	return err
}

func (b *BreakerClient) GetAllNotifications(ctx context.Context) ([]models.Notification, error) {
	return execute(b, func() ([]models.Notification, error) { return b.client.GetAllNotifications(ctx) })
}

func (b *BreakerClient) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return execute(b, func() ([]models.User, error) { return b.client.GetAllUsers(ctx) })
}

func (b *BreakerClient) CreateUser(ctx context.Context, in UserCreate) (*models.User, error) {
	return execute(b, func() (*models.User, error) { return b.client.CreateUser(ctx, in) })
}

func (b *BreakerClient) GetGroups(ctx context.Context, userID int) ([]models.Group, error) {
	return execute(b, func() ([]models.Group, error) { return b.client.GetGroups(ctx, userID) })
}

func (b *BreakerClient) GetPositions(ctx context.Context, q PositionsQuery) ([]models.Position, error) {
	return execute(b, func() ([]models.Position, error) { return b.client.GetPositions(ctx, q) })
}

func (b *BreakerClient) GetEvents(ctx context.Context, q EventsQuery) ([]models.Event, error) {
	return execute(b, func() ([]models.Event, error) { return b.client.GetEvents(ctx, q) })
}

func (b *BreakerClient) GetTrips(ctx context.Context, q TripsQuery) ([]models.Trip, error) {
	return execute(b, func() ([]models.Trip, error) { return b.client.GetTrips(ctx, q) })
}

func (b *BreakerClient) GetRoute(ctx context.Context, deviceID int, from, to time.Time) ([]models.Position, error) {
	return execute(b, func() ([]models.Position, error) { return b.client.GetRoute(ctx, deviceID, from, to) })
}

func (b *BreakerClient) AddPermission(ctx context.Context, perm models.Permission) (*models.Permission, error) {
	return execute(b, func() (*models.Permission, error) { return b.client.AddPermission(ctx, perm) })
}

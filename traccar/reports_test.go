// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var (
	reportFrom = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	reportTo   = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
)

func TestGetEvents(t *testing.T) {
	t.Parallel()

	t.Run("defaults type to wildcard and group to root", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/reports/events" {
				t.Errorf("path = %q, want /api/reports/events", r.URL.Path)
			}
			q := r.URL.Query()
			if got := q.Get("type"); got != EventTypeAll {
				t.Errorf("type param = %q, want %q", got, EventTypeAll)
			}
			if got := q.Get("groupId"); got != DefaultGroupID {
				t.Errorf("groupId param = %q, want %q", got, DefaultGroupID)
			}
			if got := q.Get("from"); got != "2026-03-01T00:00:00Z" {
				t.Errorf("from param = %q, want RFC 3339 UTC", got)
			}
			if q.Has("deviceId") {
				t.Error("deviceId param present, want it omitted when zero")
			}
			w.Write([]byte(`[{"id": 1, "type": "deviceOnline", "deviceId": 3}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		events, err := client.GetEvents(context.Background(), EventsQuery{From: reportFrom, To: reportTo})
		if err != nil {
			t.Fatalf("GetEvents() error = %v", err)
		}
		if len(events) != 1 || events[0].Type != "deviceOnline" {
			t.Errorf("events = %+v, want one deviceOnline event", events)
		}
	})

	t.Run("explicit type, group and device are passed through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if got := q.Get("type"); got != "geofenceEnter" {
				t.Errorf("type param = %q, want geofenceEnter", got)
			}
			if got := q.Get("groupId"); got != "4" {
				t.Errorf("groupId param = %q, want 4", got)
			}
			if got := q.Get("deviceId"); got != "9" {
				t.Errorf("deviceId param = %q, want 9", got)
			}
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetEvents(context.Background(), EventsQuery{
			From:     reportFrom,
			To:       reportTo,
			Type:     "geofenceEnter",
			GroupID:  4,
			DeviceID: 9,
		})
		if err != nil {
			t.Fatalf("GetEvents() error = %v", err)
		}
	})

	t.Run("missing time range fails before any request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, "http://127.0.0.1:0")

		if _, err := client.GetEvents(context.Background(), EventsQuery{From: reportFrom}); err == nil {
			t.Error("GetEvents() error = nil, want validation error")
		}
	})

	t.Run("400 means caller may not read the scope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetEvents(context.Background(), EventsQuery{From: reportFrom, To: reportTo})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("GetEvents() error = %v, want ErrPermissionDenied", err)
		}
	})
}

func TestGetTrips(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/reports/trips" {
			t.Errorf("path = %q, want /api/reports/trips", r.URL.Path)
		}
		// Without explicit JSON headers the server answers with an Excel
		// export instead.
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}
		if got := r.URL.Query().Get("groupId"); got != DefaultGroupID {
			t.Errorf("groupId param = %q, want %q", got, DefaultGroupID)
		}
		w.Write([]byte(`[{"deviceId": 3, "distance": 1520.5, "maxSpeed": 48.2}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	trips, err := client.GetTrips(context.Background(), TripsQuery{From: reportFrom, To: reportTo})
	if err != nil {
		t.Fatalf("GetTrips() error = %v", err)
	}
	if len(trips) != 1 || trips[0].Distance != 1520.5 {
		t.Errorf("trips = %+v, want one trip of 1520.5", trips)
	}
}

func TestGetRoute(t *testing.T) {
	t.Parallel()

	t.Run("fetches position history for one device", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/reports/route" {
				t.Errorf("path = %q, want /api/reports/route", r.URL.Path)
			}
			if got := r.Header.Get("Accept"); got != "application/json" {
				t.Errorf("Accept = %q, want application/json", got)
			}
			q := r.URL.Query()
			if got := q.Get("deviceId"); got != "3" {
				t.Errorf("deviceId param = %q, want 3", got)
			}
			if got := q.Get("to"); got != "2026-03-02T00:00:00Z" {
				t.Errorf("to param = %q, want RFC 3339 UTC", got)
			}
			w.Write([]byte(`[{"id": 100, "deviceId": 3, "latitude": 40.41, "longitude": -3.70}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		positions, err := client.GetRoute(context.Background(), 3, reportFrom, reportTo)
		if err != nil {
			t.Fatalf("GetRoute() error = %v", err)
		}
		if len(positions) != 1 || positions[0].Latitude != 40.41 {
			t.Errorf("positions = %+v, want one fix at 40.41", positions)
		}
	})

	t.Run("rejects missing device id or time range", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, "http://127.0.0.1:0")

		if _, err := client.GetRoute(context.Background(), 0, reportFrom, reportTo); err == nil {
			t.Error("GetRoute() error = nil with zero device id, want error")
		}
		if _, err := client.GetRoute(context.Background(), 3, time.Time{}, reportTo); err == nil {
			t.Error("GetRoute() error = nil with zero from, want error")
		}
	})
}

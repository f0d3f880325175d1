// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
)

func TestGetGeofences(t *testing.T) {
	t.Parallel()

	t.Run("filters by device id", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/geofences" {
				t.Errorf("path = %q, want /api/geofences", r.URL.Path)
			}
			if got := r.URL.Query().Get("deviceId"); got != "7" {
				t.Errorf("deviceId param = %q, want 7", got)
			}
			w.Write([]byte(`[{"id": 2, "name": "Depot", "area": "CIRCLE (40.41 -3.70, 500)"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		geofences, err := client.GetGeofences(context.Background(), ByDeviceID(7))
		if err != nil {
			t.Fatalf("GetGeofences() error = %v", err)
		}
		if len(geofences) != 1 || geofences[0].Name != "Depot" {
			t.Errorf("geofences = %+v, want one named Depot", geofences)
		}
	})

	t.Run("400 maps to NotFoundError", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetGeofences(context.Background(), ByGroupID(3))
		var nf *NotFoundError
		if !errors.As(err, &nf) {
			t.Fatalf("GetGeofences() error = %T, want *NotFoundError", err)
		}
		if nf.Resource != "Geofence" || nf.Filter != "groupId" {
			t.Errorf("NotFoundError = %+v, want Geofence/groupId", nf)
		}
	})
}

func TestCreateGeofence(t *testing.T) {
	t.Parallel()

	t.Run("optional fields are omitted when unset", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("request body not JSON: %v", err)
			}
			if _, ok := payload["calendarId"]; ok {
				t.Error("payload has calendarId, want it omitted when zero")
			}
			if _, ok := payload["attributes"]; ok {
				t.Error("payload has attributes, want it omitted when nil")
			}
			if id, ok := payload["id"].(float64); !ok || int(id) != autoAssignID {
				t.Errorf("payload id = %v, want %d", payload["id"], autoAssignID)
			}
			w.Write([]byte(`{"id": 5, "name": "Depot", "area": "CIRCLE (40.41 -3.70, 500)"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		geofence, err := client.CreateGeofence(context.Background(), GeofenceCreate{
			Name: "Depot",
			Area: "CIRCLE (40.41 -3.70, 500)",
		})
		if err != nil {
			t.Fatalf("CreateGeofence() error = %v", err)
		}
		if geofence.ID != 5 {
			t.Errorf("geofence.ID = %d, want 5", geofence.ID)
		}
	})

	t.Run("missing area fails before any request", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, "http://127.0.0.1:0")

		if _, err := client.CreateGeofence(context.Background(), GeofenceCreate{Name: "no-area"}); err == nil {
			t.Error("CreateGeofence() error = nil, want validation error")
		}
	})
}

func TestUpdateGeofence(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/geofences":
			w.Write([]byte(`[{"id": 6, "name": "Depot", "area": "CIRCLE (40.41 -3.70, 500)", "description": "yard"}]`))
		case r.Method == http.MethodPut && r.URL.Path == "/api/geofences/6":
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			if err := json.Unmarshal(body, &payload); err != nil {
				t.Fatalf("PUT body not JSON: %v", err)
			}
			if payload["area"] != "CIRCLE (41.0 -3.0, 800)" {
				t.Errorf("area = %v, want the new geometry", payload["area"])
			}
			if payload["description"] != "yard" {
				t.Errorf("description = %v, want current value preserved", payload["description"])
			}
			w.Write(body)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	area := "CIRCLE (41.0 -3.0, 800)"
	geofence, err := client.UpdateGeofence(context.Background(), 6, GeofenceUpdate{Area: &area})
	if err != nil {
		t.Fatalf("UpdateGeofence() error = %v", err)
	}
	if geofence.Area != area {
		t.Errorf("geofence.Area = %q, want %q", geofence.Area, area)
	}
}

func TestDeleteGeofence(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/geofences/6" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if err := client.DeleteGeofence(context.Background(), 6); err != nil {
		t.Errorf("DeleteGeofence() error = %v", err)
	}
}

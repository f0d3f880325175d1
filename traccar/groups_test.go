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
)

func TestGetGroups(t *testing.T) {
	t.Parallel()

	t.Run("zero user id fetches own groups with no params", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/groups" {
				t.Errorf("path = %q, want /api/groups", r.URL.Path)
			}
			if r.URL.Query().Has("userId") {
				t.Error("userId param present, want it omitted for own groups")
			}
			w.Write([]byte(`[{"id": 1, "name": "Fleet"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		groups, err := client.GetGroups(context.Background(), 0)
		if err != nil {
			t.Fatalf("GetGroups() error = %v", err)
		}
		if len(groups) != 1 || groups[0].Name != "Fleet" {
			t.Errorf("groups = %+v, want one named Fleet", groups)
		}
	})

	t.Run("nonzero user id scopes the list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("userId"); got != "7" {
				t.Errorf("userId param = %q, want 7", got)
			}
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		if _, err := client.GetGroups(context.Background(), 7); err != nil {
			t.Fatalf("GetGroups() error = %v", err)
		}
	})

	t.Run("400 means caller may not read the user's groups", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.GetGroups(context.Background(), 7)
		if !errors.Is(err, ErrPermissionDenied) {
			t.Errorf("GetGroups() error = %v, want ErrPermissionDenied", err)
		}
	})
}

func TestGetAllNotifications(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/notifications" {
			t.Errorf("path = %q, want /api/notifications", r.URL.Path)
		}
		if got := r.URL.Query().Get("all"); got != "true" {
			t.Errorf("all param = %q, want true", got)
		}
		w.Write([]byte(`[{"id": 1, "type": "deviceOffline", "always": true}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	notifications, err := client.GetAllNotifications(context.Background())
	if err != nil {
		t.Fatalf("GetAllNotifications() error = %v", err)
	}
	if len(notifications) != 1 || notifications[0].Type != "deviceOffline" {
		t.Errorf("notifications = %+v, want one deviceOffline rule", notifications)
	}
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not found with filter",
			err:  &NotFoundError{Resource: "Device", Filter: "id", Values: []string{"5"}},
			want: "traccar: Device not found for id=5",
		},
		{
			name: "not found with multiple values",
			err:  &NotFoundError{Resource: "Device", Filter: "uniqueId", Values: []string{"a", "b"}},
			want: "traccar: Device not found for uniqueId=a,b",
		},
		{
			name: "not found without filter",
			err:  &NotFoundError{Resource: "Geofence"},
			want: "traccar: Geofence not found",
		},
		{
			name: "bad request",
			err:  &BadRequestError{Body: "Duplicate entry"},
			want: "traccar: bad request: Duplicate entry",
		},
		{
			name: "unexpected status",
			err:  &APIError{StatusCode: 502, Body: "bad gateway"},
			want: "traccar: unexpected status 502: bad gateway",
		},
		{
			name: "transport failure",
			err:  &TransportError{Op: "GET /api/devices", Err: errors.New("connection refused")},
			want: "traccar: GET /api/devices: connection refused",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransportErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("fetching devices: %w", &TransportError{Op: "GET /api/devices", Err: cause})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatal("errors.As() failed to find *TransportError in chain")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() failed to reach the wrapped cause")
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrForbiddenAccess, ErrInvalidToken, ErrPermissionDenied, ErrInvalidPermission}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches %v, want distinct identities", a, b)
			}
		}
	}
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"net/url"
	"strconv"
)

// Filter selects entities of a list endpoint by a single query parameter,
// mirroring the server's "?id=5&id=10" / "?userId=3" query forms. Construct
// filters with the By* helpers rather than literals.
type Filter struct {
	Key    string
	Values []string
}

// ByID filters by entity identifier. Multiple ids request multiple entities.
func ByID(ids ...int) Filter {
	return Filter{Key: "id", Values: intStrings(ids)}
}

// ByUserID filters entities by owning user.
func ByUserID(id int) Filter {
	return Filter{Key: "userId", Values: []string{strconv.Itoa(id)}}
}

// ByUniqueID filters devices by hardware identifier.
func ByUniqueID(uniqueIDs ...string) Filter {
	return Filter{Key: "uniqueId", Values: uniqueIDs}
}

// ByDeviceID filters geofences by associated device.
func ByDeviceID(id int) Filter {
	return Filter{Key: "deviceId", Values: []string{strconv.Itoa(id)}}
}

// ByGroupID filters geofences by associated group.
func ByGroupID(id int) Filter {
	return Filter{Key: "groupId", Values: []string{strconv.Itoa(id)}}
}

// apply adds the filter's parameters to q.
func (f Filter) apply(q url.Values) {
	for _, v := range f.Values {
		q.Add(f.Key, v)
	}
}

func intStrings(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = strconv.Itoa(id)
	}
	return out
}

// notFound builds the NotFoundError for a failed filtered lookup.
func notFound(resource string, filters []Filter) *NotFoundError {
	e := &NotFoundError{Resource: resource}
	if len(filters) > 0 {
		e.Filter = filters[0].Key
		e.Values = filters[0].Values
	}
	return e
}

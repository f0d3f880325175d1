// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

// Package models defines the typed entities exchanged with a Traccar server.
//
// Field names and JSON tags follow the Traccar v4.x OpenAPI reference
// (https://www.traccar.org/api-reference/). Server-side extension fields that
// have no fixed schema are carried in the Attributes map of each entity.
package models

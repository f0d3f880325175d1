// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

// mergeRecord implements the read-merge-write update contract: it returns a
// copy of current with every key present in overlay replaced by the overlay
// value. Keys absent from overlay keep the server's current value, so fields
// the caller did not supply are preserved exactly, including fields this
// library has no typed model for.
//
// mergeRecord is pure; neither argument is modified.
func mergeRecord(current, overlay map[string]any) map[string]any {
	merged := make(map[string]any, len(current)+len(overlay))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}

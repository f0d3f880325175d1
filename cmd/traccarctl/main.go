// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

// Command traccarctl is a command-line front end for a Traccar server.
//
// It authenticates with the credentials or token found in the layered
// configuration (TRACCAR_* environment variables, traccarctl.yaml, built-in
// defaults) and prints API responses as JSON, one command per endpoint
// family:
//
//	traccarctl login
//	traccarctl devices list --all
//	traccarctl devices create --name Truck-7 --unique-id 356938035643809
//	traccarctl positions --device-id 12 --from 2026-08-01T00:00:00Z --to 2026-08-28T00:00:00Z
//	traccarctl events --from 2026-08-01 --to 2026-08-28 --type geofenceEnter
//	traccarctl permission --user-id 3 --device-id 12
//
// Configuration:
//   - TRACCAR_SERVER_URL: Traccar server URL (required)
//   - TRACCAR_SERVER_EMAIL / TRACCAR_SERVER_PASSWORD: credential login
//   - TRACCAR_SERVER_TOKEN: token login (takes precedence)
//   - TRACCAR_LOG_LEVEL / TRACCAR_LOG_FORMAT: logging (default info/console)
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

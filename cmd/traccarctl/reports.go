// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package main

import (
	"github.com/spf13/cobra"

	"github.com/trackforge/go-traccar/traccar"
)

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Fetch GPS fixes, latest or for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		q := traccar.PositionsQuery{}
		q.DeviceID, _ = cmd.Flags().GetInt("device-id")
		q.PositionID, _ = cmd.Flags().GetInt("id")

		fromFlag, _ := cmd.Flags().GetString("from")
		if q.From, err = parseTimeFlag(fromFlag); err != nil {
			return err
		}
		toFlag, _ := cmd.Flags().GetString("to")
		if q.To, err = parseTimeFlag(toFlag); err != nil {
			return err
		}

		positions, err := client.GetPositions(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printJSON(positions)
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Fetch the events report for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		q := traccar.EventsQuery{}
		q.Type, _ = cmd.Flags().GetString("type")
		q.DeviceID, _ = cmd.Flags().GetInt("device-id")
		q.GroupID, _ = cmd.Flags().GetInt("group-id")

		fromFlag, _ := cmd.Flags().GetString("from")
		if q.From, err = parseTimeFlag(fromFlag); err != nil {
			return err
		}
		toFlag, _ := cmd.Flags().GetString("to")
		if q.To, err = parseTimeFlag(toFlag); err != nil {
			return err
		}

		events, err := client.GetEvents(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printJSON(events)
	},
}

var tripsCmd = &cobra.Command{
	Use:   "trips",
	Short: "Fetch the trips report for a time range",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		q := traccar.TripsQuery{}
		q.DeviceID, _ = cmd.Flags().GetInt("device-id")
		q.GroupID, _ = cmd.Flags().GetInt("group-id")

		fromFlag, _ := cmd.Flags().GetString("from")
		if q.From, err = parseTimeFlag(fromFlag); err != nil {
			return err
		}
		toFlag, _ := cmd.Flags().GetString("to")
		if q.To, err = parseTimeFlag(toFlag); err != nil {
			return err
		}

		trips, err := client.GetTrips(cmd.Context(), q)
		if err != nil {
			return err
		}
		return printJSON(trips)
	},
}

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Fetch the position history of one device",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		deviceID, _ := cmd.Flags().GetInt("device-id")

		fromFlag, _ := cmd.Flags().GetString("from")
		from, err := parseTimeFlag(fromFlag)
		if err != nil {
			return err
		}
		toFlag, _ := cmd.Flags().GetString("to")
		to, err := parseTimeFlag(toFlag)
		if err != nil {
			return err
		}

		positions, err := client.GetRoute(cmd.Context(), deviceID, from, to)
		if err != nil {
			return err
		}
		return printJSON(positions)
	},
}

func init() {
	positionsCmd.Flags().Int("device-id", 0, "device id")
	positionsCmd.Flags().Int("id", 0, "position id")
	positionsCmd.Flags().String("from", "", "range start (RFC 3339 or YYYY-MM-DD)")
	positionsCmd.Flags().String("to", "", "range end (RFC 3339 or YYYY-MM-DD)")

	for _, c := range []*cobra.Command{eventsCmd, tripsCmd, routeCmd} {
		c.Flags().Int("device-id", 0, "device id")
		c.Flags().String("from", "", "range start (RFC 3339 or YYYY-MM-DD)")
		c.Flags().String("to", "", "range end (RFC 3339 or YYYY-MM-DD)")
		_ = c.MarkFlagRequired("from")
		_ = c.MarkFlagRequired("to")
	}
	eventsCmd.Flags().String("type", "", "event type, e.g. geofenceEnter (default: all)")
	eventsCmd.Flags().Int("group-id", 0, "group scope")
	tripsCmd.Flags().Int("group-id", 0, "group scope")
	_ = routeCmd.MarkFlagRequired("device-id")
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/trackforge/go-traccar/traccar"
)

var geofencesCmd = &cobra.Command{
	Use:   "geofences",
	Short: "List, create and delete geofences",
}

var geofencesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List geofences visible to the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		if all {
			geofences, err := client.GetAllGeofences(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(geofences)
		}

		var filters []traccar.Filter
		if ids, _ := cmd.Flags().GetIntSlice("id"); len(ids) > 0 {
			filters = append(filters, traccar.ByID(ids...))
		} else if deviceID, _ := cmd.Flags().GetInt("device-id"); deviceID != 0 {
			filters = append(filters, traccar.ByDeviceID(deviceID))
		} else if groupID, _ := cmd.Flags().GetInt("group-id"); groupID != 0 {
			filters = append(filters, traccar.ByGroupID(groupID))
		}

		geofences, err := client.GetGeofences(cmd.Context(), filters...)
		if err != nil {
			return err
		}
		return printJSON(geofences)
	},
}

var geofencesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a geofence from a WKT area",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		in := traccar.GeofenceCreate{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Area, _ = cmd.Flags().GetString("area")
		in.Description, _ = cmd.Flags().GetString("description")

		geofence, err := client.CreateGeofence(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(geofence)
	},
}

var geofencesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Remove a geofence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		return client.DeleteGeofence(cmd.Context(), id)
	},
}

func init() {
	geofencesListCmd.Flags().Bool("all", false, "list every geofence on the server (admin/manager)")
	geofencesListCmd.Flags().IntSlice("id", nil, "filter by geofence id")
	geofencesListCmd.Flags().Int("device-id", 0, "filter by associated device")
	geofencesListCmd.Flags().Int("group-id", 0, "filter by associated group")

	geofencesCreateCmd.Flags().String("name", "", "geofence name (required)")
	geofencesCreateCmd.Flags().String("area", "", `WKT area, e.g. "CIRCLE (40.41 -3.70, 500)" (required)`)
	geofencesCreateCmd.Flags().String("description", "", "description")
	_ = geofencesCreateCmd.MarkFlagRequired("name")
	_ = geofencesCreateCmd.MarkFlagRequired("area")

	geofencesCmd.AddCommand(geofencesListCmd, geofencesCreateCmd, geofencesDeleteCmd)
}

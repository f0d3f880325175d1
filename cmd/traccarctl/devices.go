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

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List, create and delete devices",
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices visible to the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		if all {
			devices, err := client.GetAllDevices(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(devices)
		}

		var filters []traccar.Filter
		if ids, _ := cmd.Flags().GetIntSlice("id"); len(ids) > 0 {
			filters = append(filters, traccar.ByID(ids...))
		} else if uniqueIDs, _ := cmd.Flags().GetStringSlice("unique-id"); len(uniqueIDs) > 0 {
			filters = append(filters, traccar.ByUniqueID(uniqueIDs...))
		} else if userID, _ := cmd.Flags().GetInt("user-id"); userID != 0 {
			filters = append(filters, traccar.ByUserID(userID))
		}

		devices, err := client.GetDevices(cmd.Context(), filters...)
		if err != nil {
			return err
		}
		return printJSON(devices)
	},
}

var devicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new device",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		in := traccar.DeviceCreate{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.UniqueID, _ = cmd.Flags().GetString("unique-id")
		in.GroupID, _ = cmd.Flags().GetInt("group-id")
		in.Phone, _ = cmd.Flags().GetString("phone")
		in.Model, _ = cmd.Flags().GetString("model")
		in.Contact, _ = cmd.Flags().GetString("contact")
		in.Category, _ = cmd.Flags().GetString("category")

		device, err := client.CreateDevice(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(device)
	},
}

var devicesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Remove a device",
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
		return client.DeleteDevice(cmd.Context(), id)
	},
}

func init() {
	devicesListCmd.Flags().Bool("all", false, "list every device on the server (admin/manager)")
	devicesListCmd.Flags().IntSlice("id", nil, "filter by device id")
	devicesListCmd.Flags().StringSlice("unique-id", nil, "filter by hardware identifier")
	devicesListCmd.Flags().Int("user-id", 0, "filter by owning user")

	devicesCreateCmd.Flags().String("name", "", "device name (required)")
	devicesCreateCmd.Flags().String("unique-id", "", "hardware identifier (required)")
	devicesCreateCmd.Flags().Int("group-id", 0, "group id")
	devicesCreateCmd.Flags().String("phone", "", "SIM phone number")
	devicesCreateCmd.Flags().String("model", "", "device model")
	devicesCreateCmd.Flags().String("contact", "", "contact")
	devicesCreateCmd.Flags().String("category", "", "icon category, e.g. car, truck")
	_ = devicesCreateCmd.MarkFlagRequired("name")
	_ = devicesCreateCmd.MarkFlagRequired("unique-id")

	devicesCmd.AddCommand(devicesListCmd, devicesCreateCmd, devicesDeleteCmd)
}

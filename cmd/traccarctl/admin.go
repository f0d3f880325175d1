// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package main

import (
	"github.com/spf13/cobra"

	"github.com/trackforge/go-traccar/models"
	"github.com/trackforge/go-traccar/traccar"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Verify the configured credentials and print the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		var session *models.Session
		switch {
		case cfg.Server.Token != "":
			session, err = client.LoginWithToken(cmd.Context(), cfg.Server.Token)
		default:
			session, err = client.LoginWithCredentials(cmd.Context(), cfg.Server.Email, cfg.Server.Password)
		}
		if err != nil {
			return err
		}
		return printJSON(session)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and create user accounts",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every user account (admin/manager)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		users, err := client.GetAllUsers(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(users)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		in := traccar.UserCreate{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.Email, _ = cmd.Flags().GetString("email")
		in.Administrator, _ = cmd.Flags().GetBool("administrator")
		in.Token, _ = cmd.Flags().GetString("token")

		user, err := client.CreateUser(cmd.Context(), in)
		if err != nil {
			return err
		}
		return printJSON(user)
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List device groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		userID, _ := cmd.Flags().GetInt("user-id")
		groups, err := client.GetGroups(cmd.Context(), userID)
		if err != nil {
			return err
		}
		return printJSON(groups)
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List every notification rule (admin/manager)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		notifications, err := client.GetAllNotifications(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(notifications)
	},
}

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Grant a user access to a device or group",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newSession(cmd.Context())
		if err != nil {
			return err
		}

		perm := models.Permission{}
		perm.UserID, _ = cmd.Flags().GetInt("user-id")
		perm.DeviceID, _ = cmd.Flags().GetInt("device-id")
		perm.GroupID, _ = cmd.Flags().GetInt("group-id")

		granted, err := client.AddPermission(cmd.Context(), perm)
		if err != nil {
			return err
		}
		return printJSON(granted)
	},
}

func init() {
	usersCreateCmd.Flags().String("name", "", "user name (required)")
	usersCreateCmd.Flags().String("email", "", "user email (required)")
	usersCreateCmd.Flags().Bool("administrator", false, "grant admin rights")
	usersCreateCmd.Flags().String("token", "", "pre-assign a session token")
	_ = usersCreateCmd.MarkFlagRequired("name")
	_ = usersCreateCmd.MarkFlagRequired("email")
	usersCmd.AddCommand(usersListCmd, usersCreateCmd)

	groupsCmd.Flags().Int("user-id", 0, "scope the list to a user (admin/manager)")

	permissionCmd.Flags().Int("user-id", 0, "user to grant access to (required)")
	permissionCmd.Flags().Int("device-id", 0, "device to share")
	permissionCmd.Flags().Int("group-id", 0, "group to share")
	_ = permissionCmd.MarkFlagRequired("user-id")
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"fmt"

	"github.com/trackforge/go-traccar/models"
)

// DefaultSpeedUnit is applied to new users that are created without explicit
// attributes, matching the server UI's most common configuration.
const DefaultSpeedUnit = "kmh"

// UserCreate holds the fields for creating a user account. Name and Email
// are required.
type UserCreate struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Administrator bool
	// Token optionally pre-assigns a session token to the new account.
	Token string
	// Attributes overrides the per-user attribute map. When nil, the new
	// account gets {"speedUnit": DefaultSpeedUnit}.
	Attributes map[string]any
}

// GetAllUsers fetches every user account on the server. Requires admin or
// manager rights; returns ErrPermissionDenied otherwise.
func (c *Client) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.listAll(ctx, c.urls.users, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a new user account. The server assigns the id.
//
// Returns *BadRequestError if the server rejects the account, typically
// because the email is already registered.
func (c *Client) CreateUser(ctx context.Context, in UserCreate) (*models.User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	attributes := in.Attributes
	if attributes == nil {
		attributes = map[string]any{"speedUnit": DefaultSpeedUnit}
	}

	payload := map[string]any{
		"id":            autoAssignID,
		"name":          in.Name,
		"email":         in.Email,
		"administrator": in.Administrator,
		"token":         in.Token,
		"attributes":    attributes,
	}

	var user models.User
	if err := c.create(ctx, c.urls.users, payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

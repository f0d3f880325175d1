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

// DeviceCreate holds the fields for creating a device. Name and UniqueID are
// required; everything else is optional and may be changed later with
// UpdateDevice.
type DeviceCreate struct {
	Name     string `validate:"required"`
	UniqueID string `validate:"required"`
	GroupID  int
	Phone    string
	Model    string
	Contact  string
	// Category is the device icon type, e.g. "car", "truck", "boat".
	Category string
}

// DeviceUpdate is a partial update: nil fields keep the device's current
// server-side value, non-nil fields replace it.
type DeviceUpdate struct {
	Name     *string
	UniqueID *string
	GroupID  *int
	Phone    *string
	Model    *string
	Contact  *string
	Category *string
}

// fields returns only the set fields, keyed by their wire names.
func (u DeviceUpdate) fields() map[string]any {
	overlay := make(map[string]any)
	if u.Name != nil {
		overlay["name"] = *u.Name
	}
	if u.UniqueID != nil {
		overlay["uniqueId"] = *u.UniqueID
	}
	if u.GroupID != nil {
		overlay["groupId"] = *u.GroupID
	}
	if u.Phone != nil {
		overlay["phone"] = *u.Phone
	}
	if u.Model != nil {
		overlay["model"] = *u.Model
	}
	if u.Contact != nil {
		overlay["contact"] = *u.Contact
	}
	if u.Category != nil {
		overlay["category"] = *u.Category
	}
	return overlay
}

// GetAllDevices fetches every device on the server. Requires admin or
// manager rights; returns ErrPermissionDenied otherwise.
func (c *Client) GetAllDevices(ctx context.Context) ([]models.Device, error) {
	var devices []models.Device
	if err := c.listAll(ctx, c.urls.devices, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// GetDevices fetches the caller's devices, optionally narrowed by a filter
// (ByID, ByUniqueID or ByUserID). With no filter it returns every device
// visible to the caller.
//
// Returns *NotFoundError when the filter matches nothing.
func (c *Client) GetDevices(ctx context.Context, filters ...Filter) ([]models.Device, error) {
	var devices []models.Device
	if err := c.listFiltered(ctx, c.urls.devices, "Device", filters, &devices); err != nil {
		return nil, err
	}
	return devices, nil
}

// CreateDevice registers a new device. The server assigns the id.
//
// Returns *BadRequestError if the server rejects the device, typically
// because the unique id already exists.
func (c *Client) CreateDevice(ctx context.Context, in DeviceCreate) (*models.Device, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid device: %w", err)
	}

	payload := map[string]any{
		"id":       autoAssignID,
		"name":     in.Name,
		"uniqueId": in.UniqueID,
		"groupId":  in.GroupID,
		"phone":    in.Phone,
		"model":    in.Model,
		"contact":  in.Contact,
		"category": in.Category,
	}

	var device models.Device
	if err := c.create(ctx, c.urls.devices, payload, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// UpdateDevice applies a partial update to a device: it reads the current
// record, overlays the set fields of in, and writes the merged record back.
// Fields not set in in keep their current server-side values.
//
// Returns *NotFoundError if no device with the given id is visible to the
// caller, *BadRequestError if the server rejects the merged record.
func (c *Client) UpdateDevice(ctx context.Context, id int, in DeviceUpdate) (*models.Device, error) {
	current, err := c.rawByID(ctx, c.urls.devices, "Device", id)
	if err != nil {
		return nil, err
	}

	merged := mergeRecord(current, in.fields())

	var device models.Device
	if err := c.update(ctx, c.urls.devices, id, merged, &device); err != nil {
		return nil, err
	}
	return &device, nil
}

// DeleteDevice removes a device. Success is HTTP 204 with no body; any other
// status is an *APIError.
func (c *Client) DeleteDevice(ctx context.Context, id int) error {
	return c.remove(ctx, c.urls.devices, id)
}

// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"

	"github.com/trackforge/go-traccar/models"
)

// GetAllNotifications fetches every notification rule on the server.
// Requires admin or manager rights; returns ErrPermissionDenied otherwise.
func (c *Client) GetAllNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.listAll(ctx, c.urls.notifications, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

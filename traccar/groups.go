// Go-Traccar - Go Client for the Traccar GPS Tracking Server REST API
// Copyright 2026 TrackForge
// SPDX-License-Identifier: Apache-2.0
// https://github.com/trackforge/go-traccar

package traccar

import (
	"context"
	"net/url"
	"strconv"

	"github.com/trackforge/go-traccar/models"
)

// GetGroups fetches groups. With userID zero it returns the caller's own
// groups; a nonzero userID scopes the list to that user (admin or manager
// only, ErrPermissionDenied otherwise).
func (c *Client) GetGroups(ctx context.Context, userID int) ([]models.Group, error) {
	params := url.Values{}
	if userID != 0 {
		params.Set("userId", strconv.Itoa(userID))
	}

	var groups []models.Group
	if err := c.fetchList(ctx, c.urls.groups, params, false, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

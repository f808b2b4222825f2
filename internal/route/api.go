// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/context"
	"docshub.io/docshub/internal/database"
	"docshub.io/docshub/internal/listing"
	"docshub.io/docshub/internal/tool"
)

// RecentReleasesFeed responds the most recently published releases as JSON.
func RecentReleasesFeed(c *context.Context) {
	releases, err := database.Handle.Releases().ListRecent(c.Req.Context(), 1, conf.UI.ReleasesPagingNum)
	if err != nil {
		c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	type item struct {
		Name        string `json:"name"`
		Version     string `json:"version"`
		Description string `json:"description,omitempty"`
		URL         string `json:"url"`
		ReleasedAt  string `json:"released_at"`
		Stars       int    `json:"stars"`
	}
	items := make([]item, 0, len(releases))
	for _, r := range releases {
		rel := listing.Release{
			Name:       r.Name,
			Version:    r.Version,
			HasDocs:    r.HasDocs,
			TargetName: r.TargetName,
		}
		items = append(items, item{
			Name:        r.Name,
			Version:     r.Version,
			Description: r.Description,
			URL:         listing.Resolve(rel).Href(),
			ReleasedAt:  tool.AbsTime(r.Released),
			Stars:       r.Stars,
		})
	}

	payload, err := jsoniter.Marshal(items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	c.Resp.Header().Set("Content-Type", "application/json")
	c.Resp.WriteHeader(http.StatusOK)
	_, _ = c.Resp.Write(payload)
}

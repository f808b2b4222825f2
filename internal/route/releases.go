// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"fmt"

	"github.com/unknwon/com"
	"github.com/unknwon/paginater"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/context"
	"docshub.io/docshub/internal/database"
	"docshub.io/docshub/internal/listing"
)

const RELEASES = "releases/list"

const recentCountCacheKey = "releases.recent.count"

// pageNumber parses the ":page" path segment and falls back to the first
// page on absent or nonsense values.
func pageNumber(c *context.Context) int {
	page := com.StrTo(c.Params(":page")).MustInt()
	if page <= 0 {
		page = 1
	}
	return page
}

// RecentReleases renders one page of the most recently published releases.
func RecentReleases(c *context.Context) {
	page := pageNumber(c)
	pageSize := conf.UI.ReleasesPagingNum

	releases, err := database.Handle.Releases().ListRecent(c.Req.Context(), page, pageSize)
	if err != nil {
		c.Error(err, "list recent releases")
		return
	}

	// The total only drives pagination, a slightly stale value is fine.
	count, ok := c.Cache.Get(recentCountCacheKey).(int64)
	if !ok {
		count = database.Handle.Releases().CountRecent(c.Req.Context())
		if err = c.Cache.Put(recentCountCacheKey, count, 60); err != nil {
			log.Error("Failed to cache recent releases count: %v", err)
		}
	}

	renderList(c, releases, count, listing.Context{
		Type:        listing.TypeRecent,
		Page:        page,
		ShowPrev:    page > 1,
		ShowNext:    int64(page*pageSize) < count,
		Description: "Recently published releases",
	})
}

// ReleasesByAuthor renders one page of the given author's releases.
func ReleasesByAuthor(c *context.Context) {
	author := c.Params(":author")
	if author == "" {
		c.NotFound()
		return
	}

	page := pageNumber(c)
	pageSize := conf.UI.ReleasesPagingNum

	releases, err := database.Handle.Releases().ListByAuthor(c.Req.Context(), author, page, pageSize)
	if err != nil {
		c.Errorf(err, "list releases of author %q", author)
		return
	}
	count := database.Handle.Releases().CountByAuthor(c.Req.Context(), author)

	renderList(c, releases, count, listing.Context{
		Type:        listing.TypeAuthor,
		Page:        page,
		ShowPrev:    page > 1,
		ShowNext:    int64(page*pageSize) < count,
		Author:      author,
		Description: fmt.Sprintf("Crates published by %s", author),
	})
}

// SearchReleases renders one page of search results. The search form submits
// the "query" parameter while pagination links carry "search", both are
// accepted.
func SearchReleases(c *context.Context) {
	query := c.Query("query")
	if query == "" {
		query = c.Query("search")
	}

	page := pageNumber(c)
	pageSize := conf.UI.ReleasesPagingNum

	releases, count, err := database.Handle.Releases().Search(c.Req.Context(), query, page, pageSize)
	if err != nil {
		c.Errorf(err, "search releases with query %q", query)
		return
	}

	renderList(c, releases, count, listing.Context{
		Type:        listing.TypeSearch,
		Page:        page,
		ShowPrev:    page > 1,
		ShowNext:    int64(page*pageSize) < count,
		Query:       query,
		Title:       "Search results",
		Description: fmt.Sprintf("Search results for '%s'", query),
	})
}

func renderList(c *context.Context, releases []*database.Release, count int64, lctx listing.Context) {
	rels := make([]listing.Release, 0, len(releases))
	for _, r := range releases {
		rels = append(rels, listing.Release{
			Name:        r.Name,
			Version:     r.Version,
			Description: r.Description,
			HasDocs:     r.HasDocs,
			TargetName:  r.TargetName,
			ReleaseTime: r.Released,
			Stars:       r.Stars,
		})
	}

	page := listing.Render(rels, lctx, listing.Formatter{})
	c.Title(page.Title)
	c.PageIs("Releases")
	c.Data["Listing"] = page
	c.Data["Query"] = lctx.Query
	c.Data["Total"] = count
	c.Data["Page"] = paginater.New(int(count), conf.UI.ReleasesPagingNum, lctx.Page, 5)
	c.Success(RELEASES)
}

// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)

func testFormatter() Formatter {
	return Formatter{
		Now: func() time.Time { return testNow },
	}
}

func testReleases() []Release {
	return []Release{
		{
			Name:        "tokio",
			Version:     "1.38.0",
			Description: "An event-driven, non-blocking I/O platform",
			HasDocs:     true,
			TargetName:  "x86_64-unknown-linux-gnu",
			ReleaseTime: testNow.Add(-3 * 24 * time.Hour),
			Stars:       21000,
		},
		{
			Name:        "serde",
			Version:     "1.0.200",
			Description: "A generic serialization/deserialization framework",
			HasDocs:     false,
			ReleaseTime: testNow.Add(-2 * time.Hour),
			Stars:       8000,
		},
		{
			Name:        "rand",
			Version:     "0.8.5",
			Description: "",
			HasDocs:     true,
			TargetName:  "x86_64-apple-darwin",
			ReleaseTime: testNow.Add(-45 * time.Second),
			Stars:       0,
		},
	}
}

func TestRender_Rows(t *testing.T) {
	page := Render(testReleases(), Context{Type: TypeRecent, Page: 1}, testFormatter())
	require.Len(t, page.Rows, 3)

	// Input order is preserved.
	assert.Equal(t, "tokio-1.38.0", page.Rows[0].Label)
	assert.Equal(t, "serde-1.0.200", page.Rows[1].Label)
	assert.Equal(t, "rand-0.8.5", page.Rows[2].Label)

	assert.Equal(t, "/tokio/1.38.0/x86_64-unknown-linux-gnu", page.Rows[0].Href)
	assert.Equal(t, "/crate/serde/1.0.200", page.Rows[1].Href)
	assert.Equal(t, "An event-driven, non-blocking I/O platform", page.Rows[0].Description)

	// Non-author contexts show the relative time with an absolute tooltip,
	// never the star count.
	for _, row := range page.Rows {
		assert.False(t, row.ShowStars)
	}
	assert.Equal(t, "3 days ago", page.Rows[0].Time)
	assert.Equal(t, "2023-06-12T12:00:00Z", page.Rows[0].Tooltip)
	assert.Equal(t, "2 hours ago", page.Rows[1].Time)
	assert.Equal(t, "2023-06-15T10:00:00Z", page.Rows[1].Tooltip)
	assert.Equal(t, "45 seconds ago", page.Rows[2].Time)
}

func TestRender_AuthorRows(t *testing.T) {
	page := Render(testReleases(), Context{Type: TypeAuthor, Page: 1, Author: "carl"}, testFormatter())
	require.Len(t, page.Rows, 3)

	// Author context shows stars for every row, with the publish time moved
	// into the tooltip.
	for _, row := range page.Rows {
		assert.True(t, row.ShowStars)
		assert.Empty(t, row.Time)
	}
	assert.Equal(t, 21000, page.Rows[0].Stars)
	assert.Equal(t, "Published 3 days ago", page.Rows[0].Tooltip)
	assert.Equal(t, 0, page.Rows[2].Stars)
	assert.Equal(t, "Published 45 seconds ago", page.Rows[2].Tooltip)

	assert.Equal(t, "carl", page.Author)
}

func TestRender_UnknownTypeUsesDefaultBehavior(t *testing.T) {
	page := Render(testReleases(), Context{Type: "failures", Page: 1}, testFormatter())
	require.Len(t, page.Rows, 3)
	assert.False(t, page.Rows[0].ShowStars)
	assert.Equal(t, "3 days ago", page.Rows[0].Time)
}

func TestRender_Pagination(t *testing.T) {
	t.Run("previous only", func(t *testing.T) {
		page := Render(nil, Context{
			Type:     TypeRecent,
			Page:     5,
			ShowPrev: true,
		}, testFormatter())

		require.NotNil(t, page.Pagination.Prev)
		assert.Equal(t, "/releases/recent/4", page.Pagination.Prev.Href)
		assert.Equal(t, 4, page.Pagination.Prev.Page)
		assert.Nil(t, page.Pagination.Next)
	})

	t.Run("search preserves query", func(t *testing.T) {
		page := Render(nil, Context{
			Type:     TypeSearch,
			Page:     2,
			ShowNext: true,
			Query:    "tokio runtime",
		}, testFormatter())

		require.NotNil(t, page.Pagination.Next)
		assert.Equal(t, "/releases/search/3?search=tokio%20runtime", page.Pagination.Next.Href)
		assert.Nil(t, page.Pagination.Prev)
	})

	t.Run("search query in both directions", func(t *testing.T) {
		page := Render(nil, Context{
			Type:     TypeSearch,
			Page:     3,
			ShowPrev: true,
			ShowNext: true,
			Query:    "serde",
		}, testFormatter())

		assert.Equal(t, "/releases/search/2?search=serde", page.Pagination.Prev.Href)
		assert.Equal(t, "/releases/search/4?search=serde", page.Pagination.Next.Href)
	})

	t.Run("non-search types carry no query string", func(t *testing.T) {
		page := Render(nil, Context{
			Type:     TypeAuthor,
			Page:     2,
			ShowNext: true,
			Query:    "ignored",
		}, testFormatter())

		assert.Equal(t, "/releases/author/3", page.Pagination.Next.Href)
	})

	t.Run("no flags means no links", func(t *testing.T) {
		page := Render(nil, Context{Type: TypeRecent, Page: 1}, testFormatter())
		assert.Nil(t, page.Pagination.Prev)
		assert.Nil(t, page.Pagination.Next)
	})
}

func TestPage_PageHref(t *testing.T) {
	// Arbitrary page numbers resolve against the same base as Prev/Next, with
	// the search query carried along.
	page := Render(nil, Context{Type: TypeSearch, Page: 2, Query: "tokio runtime"}, testFormatter())
	assert.Equal(t, "/releases/search/5?search=tokio%20runtime", page.PageHref(5))

	page = Render(nil, Context{Type: TypeRecent, Page: 1}, testFormatter())
	assert.Equal(t, "/releases/recent/3", page.PageHref(3))

	page = Render(nil, Context{Type: TypeAuthor, Page: 4, Author: "carl"}, testFormatter())
	assert.Equal(t, "/releases/author/1", page.PageHref(1))
}

func TestRender_EmptyInput(t *testing.T) {
	page := Render(nil, Context{
		Type:     TypeRecent,
		Page:     2,
		ShowPrev: true,
		ShowNext: true,
	}, testFormatter())

	// No rows, no message, but pagination still derives from the flags.
	assert.Empty(t, page.Rows)
	require.NotNil(t, page.Pagination.Prev)
	require.NotNil(t, page.Pagination.Next)
	assert.Equal(t, "/releases/recent/1", page.Pagination.Prev.Href)
	assert.Equal(t, "/releases/recent/3", page.Pagination.Next.Href)
}

func TestRender_ContextDefaults(t *testing.T) {
	page := Render(nil, Context{Type: TypeRecent, Page: 1}, testFormatter())
	assert.Equal(t, "Releases", page.Title)
	assert.Empty(t, page.Description)
	assert.Empty(t, page.Author)

	page = Render(nil, Context{
		Type:        TypeSearch,
		Page:        1,
		Title:       "Search results",
		Description: "Search results for 'tokio'",
	}, testFormatter())
	assert.Equal(t, "Search results", page.Title)
	assert.Equal(t, "Search results for 'tokio'", page.Description)
}

func TestRender_DefaultFormatter(t *testing.T) {
	// The zero formatter falls back to the real clock; only sanity-check the
	// shape of the output here.
	rels := []Release{{
		Name:        "log",
		Version:     "0.4.21",
		ReleaseTime: time.Now().Add(-time.Hour),
	}}
	page := Render(rels, Context{Type: TypeRecent, Page: 1}, Formatter{})
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "1 hour ago", page.Rows[0].Time)
	assert.NotEmpty(t, page.Rows[0].Tooltip)
}

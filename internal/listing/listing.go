// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package listing renders a page of release records for the three listing
// contexts of the site: recently published releases, a single author's
// releases, and search results. It is a pure transformation, the caller
// supplies an already-sliced page of records along with pagination flags.
package listing

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"docshub.io/docshub/internal/tool"
)

// Release is one release record as supplied by the caller. Records are
// treated as read-only.
type Release struct {
	Name        string
	Version     string
	Description string
	HasDocs     bool   // True iff a documentation build exists and is servable.
	TargetName  string // Must be non-empty when HasDocs is true.
	ReleaseTime time.Time
	Stars       int
}

// Type identifies the nature of a listing. Any string is accepted; only
// TypeAuthor and TypeSearch are special-cased, everything else renders with
// the default behavior.
type Type string

const (
	TypeRecent Type = "recent"
	TypeAuthor Type = "author"
	TypeSearch Type = "search"
)

// Context carries the per-request listing parameters. It is constructed
// fresh by the caller for every render and never mutated by this package.
type Context struct {
	Type     Type
	Page     int  // Current page number, positive.
	ShowPrev bool // Whether to emit a previous-page link. Not derived from totals here.
	ShowNext bool // Whether to emit a next-page link.
	Query    string // Carried through pagination links for TypeSearch only.

	Title       string // Defaults to "Releases".
	Description string
	Author      string
}

// Formatter supplies time rendering to the renderer so that "now" can be
// pinned in tests. Zero fields fall back to the real clock and the standard
// relative/absolute formats.
type Formatter struct {
	Now      func() time.Time
	Relative func(then, now time.Time) string
	Absolute func(t time.Time) string
}

func (f Formatter) withDefaults() Formatter {
	if f.Now == nil {
		f.Now = time.Now
	}
	if f.Relative == nil {
		f.Relative = tool.RelTime
	}
	if f.Absolute == nil {
		f.Absolute = tool.AbsTime
	}
	return f
}

// Row is one rendered release row.
type Row struct {
	Href        string
	Label       string // "{name}-{version}"
	Description string

	// Trailing metadata. Exactly one of the two presentations is active:
	// stars for the author context, relative time for everything else.
	ShowStars bool
	Stars     int
	Time      string // Visible relative time when ShowStars is false.
	Tooltip   string
}

// PageLink is a single pagination navigation link.
type PageLink struct {
	Page int
	Href string
}

// Pagination exposes zero, one or two navigation links.
type Pagination struct {
	Prev *PageLink
	Next *PageLink
}

// Page is the fully rendered listing.
type Page struct {
	Title       string
	Description string
	Author      string
	Rows        []Row
	Pagination  Pagination

	base   string
	suffix string
}

// PageHref returns the URL of an arbitrary page of the same listing, with the
// search query carried along. It backs the numbered page bar in templates.
func (p *Page) PageHref(page int) string {
	return fmt.Sprintf("%s/%d%s", p.base, page, p.suffix)
}

// Render composes the rows and pagination controls for one listing page.
// Records render in input order; this package never re-sorts. An empty input
// still yields a valid page whose pagination derives solely from the context
// flags.
func Render(releases []Release, ctx Context, f Formatter) *Page {
	f = f.withDefaults()
	if ctx.Title == "" {
		ctx.Title = "Releases"
	}

	now := f.Now()
	rows := make([]Row, 0, len(releases))
	for _, rel := range releases {
		row := Row{
			Href:        Resolve(rel).Href(),
			Label:       rel.Name + "-" + rel.Version,
			Description: rel.Description,
		}
		switch ctx.Type {
		case TypeAuthor:
			row.ShowStars = true
			row.Stars = rel.Stars
			row.Tooltip = "Published " + f.Relative(rel.ReleaseTime, now)
		default:
			row.Time = f.Relative(rel.ReleaseTime, now)
			row.Tooltip = f.Absolute(rel.ReleaseTime)
		}
		rows = append(rows, row)
	}

	page := &Page{
		Title:       ctx.Title,
		Description: ctx.Description,
		Author:      ctx.Author,
		Rows:        rows,
		base:        "/releases/" + string(ctx.Type),
	}
	if ctx.Type == TypeSearch {
		page.suffix = "?search=" + queryEscape(ctx.Query)
	}
	page.Pagination = page.paginate(ctx)
	return page
}

// paginate derives the navigation links from the context flags. Page numbers
// are not clamped, it is the caller's responsibility to leave ShowPrev unset
// when the current page is the first one.
func (p *Page) paginate(ctx Context) Pagination {
	var pg Pagination
	if ctx.ShowPrev {
		pg.Prev = &PageLink{
			Page: ctx.Page - 1,
			Href: p.PageHref(ctx.Page - 1),
		}
	}
	if ctx.ShowNext {
		pg.Next = &PageLink{
			Page: ctx.Page + 1,
			Href: p.PageHref(ctx.Page + 1),
		}
	}
	return pg
}

// queryEscape percent-encodes a query component, using "%20" for spaces
// instead of "+" so emitted links match their canonical form.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package listing

import (
	"net/url"
)

// Link is the canonical navigation target of a release.
type Link interface {
	// Href returns the URL path with every segment percent-encoded
	// independently.
	Href() string
}

// DocsLink points to the generated documentation of a release build target.
type DocsLink struct {
	Name    string
	Version string
	Target  string
}

func (l DocsLink) Href() string {
	return "/" + url.PathEscape(l.Name) +
		"/" + url.PathEscape(l.Version) +
		"/" + url.PathEscape(l.Target)
}

// CrateLink points to the crate overview page of a release that has no
// servable documentation build.
type CrateLink struct {
	Name    string
	Version string
}

func (l CrateLink) Href() string {
	return "/crate/" + url.PathEscape(l.Name) +
		"/" + url.PathEscape(l.Version)
}

// Resolve maps a release to its navigation target: the documentation page of
// its build target when a doc set exists, the crate overview page otherwise.
//
// The function is total; it relies on the caller upholding the invariant that
// TargetName is non-empty whenever HasDocs is true.
func Resolve(r Release) Link {
	if r.HasDocs {
		return DocsLink{Name: r.Name, Version: r.Version, Target: r.TargetName}
	}
	return CrateLink{Name: r.Name, Version: r.Version}
}

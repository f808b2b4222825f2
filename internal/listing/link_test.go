// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		release Release
		expHref string
	}{
		{
			name: "docs built",
			release: Release{
				Name:       "tokio",
				Version:    "1.38.0",
				HasDocs:    true,
				TargetName: "x86_64-unknown-linux-gnu",
			},
			expHref: "/tokio/1.38.0/x86_64-unknown-linux-gnu",
		},
		{
			name: "docs not built",
			release: Release{
				Name:    "tokio",
				Version: "1.38.0",
				HasDocs: false,
			},
			expHref: "/crate/tokio/1.38.0",
		},
		{
			name: "build failed with target name still recorded",
			release: Release{
				Name:       "serde",
				Version:    "1.0.200",
				HasDocs:    false,
				TargetName: "x86_64-unknown-linux-gnu",
			},
			expHref: "/crate/serde/1.0.200",
		},
		{
			name: "segments are percent-encoded independently",
			release: Release{
				Name:       "odd name",
				Version:    "1.0.0+build meta",
				HasDocs:    true,
				TargetName: "target/gnu",
			},
			expHref: "/odd%20name/1.0.0+build%20meta/target%2Fgnu",
		},
		{
			name: "crate link encodes segments",
			release: Release{
				Name:    "odd name",
				Version: "1.0 rc",
			},
			expHref: "/crate/odd%20name/1.0%20rc",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expHref, Resolve(test.release).Href())
		})
	}
}

func TestResolve_Variant(t *testing.T) {
	rel := Release{Name: "rand", Version: "0.8.5", HasDocs: true, TargetName: "i686-pc-windows-msvc"}
	link := Resolve(rel)
	docs, ok := link.(DocsLink)
	assert.True(t, ok)
	assert.Equal(t, "i686-pc-windows-msvc", docs.Target)

	rel.HasDocs = false
	_, ok = Resolve(rel).(CrateLink)
	assert.True(t, ok)
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelTime(t *testing.T) {
	now := time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		then   time.Time
		expStr string
	}{
		{then: now, expStr: "now"},
		{then: now.Add(-time.Second), expStr: "1 second ago"},
		{then: now.Add(-30 * time.Second), expStr: "30 seconds ago"},
		{then: now.Add(-90 * time.Second), expStr: "1 minute ago"},
		{then: now.Add(-30 * time.Minute), expStr: "30 minutes ago"},
		{then: now.Add(-time.Hour), expStr: "1 hour ago"},
		{then: now.Add(-2 * time.Hour), expStr: "2 hours ago"},
		{then: now.Add(-36 * time.Hour), expStr: "1 day ago"},
		{then: now.Add(-3 * 24 * time.Hour), expStr: "3 days ago"},
		{then: now.Add(-8 * 24 * time.Hour), expStr: "1 week ago"},
		{then: now.Add(-40 * 24 * time.Hour), expStr: "1 month ago"},
		{then: now.Add(-100 * 24 * time.Hour), expStr: "3 months ago"},
		{then: now.Add(-400 * 24 * time.Hour), expStr: "1 year ago"},
		{then: now.Add(3 * 24 * time.Hour), expStr: "3 days from now"},
	}
	for _, test := range tests {
		t.Run(test.expStr, func(t *testing.T) {
			assert.Equal(t, test.expStr, RelTime(test.then, now))
		})
	}
}

func TestAbsTime(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	then := time.Date(2023, 6, 15, 20, 30, 45, 0, loc)
	assert.Equal(t, "2023-06-15T12:30:45Z", AbsTime(then))
}

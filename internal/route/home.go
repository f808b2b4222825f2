// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"fmt"
	"net/http"

	"gopkg.in/macaron.v1"

	"docshub.io/docshub/internal/context"
)

// Home redirects to the recent releases listing, which is the landing page
// of the site.
func Home(c *context.Context) {
	c.RedirectSubpath("/releases")
}

// NotFound renders the 404 page.
func NotFound(c *macaron.Context) {
	c.Data["Title"] = "Page Not Found"
	c.HTML(http.StatusNotFound, fmt.Sprintf("status/%d", http.StatusNotFound))
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package context

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-macaron/cache"
	"gopkg.in/macaron.v1"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/errutil"
	"docshub.io/docshub/internal/tool"
)

// Context represents context of a request.
type Context struct {
	*macaron.Context
	Cache cache.Cache

	Link string // Current request URL
}

// Title sets the "Title" field in template data.
func (c *Context) Title(title string) {
	c.Data["Title"] = title
}

// PageIs sets "PageIsxxx" field in template data.
func (c *Context) PageIs(name string) {
	c.Data["PageIs"+name] = true
}

// HasValue returns true if value of given name exists.
func (c *Context) HasValue(name string) bool {
	_, ok := c.Data[name]
	return ok
}

// HTML responses template with given status.
func (c *Context) HTML(status int, name string) {
	log.Trace("Template: %s", name)
	c.Context.HTML(status, name)
}

// Success responses template with status http.StatusOK.
func (c *Context) Success(name string) {
	c.HTML(http.StatusOK, name)
}

// JSONSuccess responses JSON with status http.StatusOK.
func (c *Context) JSONSuccess(data interface{}) {
	c.JSON(http.StatusOK, data)
}

// RedirectSubpath responses redirection with given location and status. It
// prepends the server subpath to the location string.
func (c *Context) RedirectSubpath(location string, status ...int) {
	c.Redirect(conf.Server.Subpath+location, status...)
}

// NotFound renders the 404 page.
func (c *Context) NotFound() {
	c.Title("Page Not Found")
	c.HTML(http.StatusNotFound, fmt.Sprintf("status/%d", http.StatusNotFound))
}

// Error renders the 500 page.
func (c *Context) Error(err error, msg string) {
	log.ErrorDepth(5, "%s: %v", msg, err)

	c.Title("Internal Server Error")

	// Only in non-production mode can the actual error message be shown.
	if !conf.IsProdMode() {
		c.Data["ErrorMsg"] = err
	}
	c.HTML(http.StatusInternalServerError, fmt.Sprintf("status/%d", http.StatusInternalServerError))
}

// Errorf renders the 500 response with formatted message.
func (c *Context) Errorf(err error, format string, args ...interface{}) {
	c.Error(err, fmt.Sprintf(format, args...))
}

// NotFoundOrError responses with 404 page for not found error and 500 page
// otherwise.
func (c *Context) NotFoundOrError(err error, msg string) {
	if errutil.IsNotFound(err) {
		c.NotFound()
		return
	}
	c.Error(err, msg)
}

// RequireBasicAuth responds with an error status when the request does not
// carry the expected HTTP Basic Authentication credentials.
func (c *Context) RequireBasicAuth(username, password string) {
	fields := strings.Fields(c.Req.Header.Get("Authorization"))
	if len(fields) != 2 || fields[0] != "Basic" {
		c.Status(http.StatusUnauthorized)
		return
	}

	uname, passwd, _ := tool.BasicAuthDecode(fields[1])
	if uname != username || passwd != password {
		c.Status(http.StatusForbidden)
		return
	}
}

// Contexter initializes a classic context for a request.
func Contexter() macaron.Handler {
	return func(ctx *macaron.Context, cache cache.Cache) {
		c := &Context{
			Context: ctx,
			Cache:   cache,
			Link:    conf.Server.Subpath + strings.TrimSuffix(ctx.Req.URL.Path, "/"),
		}
		c.Data["Link"] = c.Link
		c.Data["PageStartTime"] = time.Now()

		// 🚨 SECURITY: Prevent MIME type sniffing in some browsers.
		c.Header().Set("X-Content-Type-Options", "nosniff")

		ctx.Map(c)
	}
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package template

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
	"time"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/tool"
)

var (
	funcMap     []template.FuncMap
	funcMapOnce sync.Once
)

// FuncMap returns a list of user-defined template functions.
func FuncMap() []template.FuncMap {
	funcMapOnce.Do(func() {
		funcMap = []template.FuncMap{map[string]interface{}{
			"BuildCommit": func() string {
				return conf.BuildCommit
			},
			"Year": func() int {
				return time.Now().Year()
			},
			"AppName": func() string {
				return conf.App.BrandName
			},
			"AppSubURL": func() string {
				return conf.Server.Subpath
			},
			"AppURL": func() string {
				return conf.Server.ExternalURL
			},
			"AppVer": func() string {
				return conf.App.Version
			},
			"AppDomain": func() string {
				return conf.Server.Domain
			},
			"ShowFooterTemplateLoadTime": func() bool {
				return conf.Other.ShowFooterTemplateLoadTime
			},
			"LoadTimes": func(startTime time.Time) string {
				return fmt.Sprint(time.Since(startTime).Nanoseconds()/1e6) + "ms"
			},
			"ThemeColorMetaTag": func() string {
				return conf.UI.ThemeColorMetaTag
			},
			"Safe":      Safe,
			"TimeSince": tool.TimeSince,
			"DateFmtLong": func(t time.Time) string {
				return t.Format(time.RFC1123Z)
			},
			"DateFmtShort": func(t time.Time) string {
				return t.Format("Jan 02, 2006")
			},
			"Join": strings.Join,
			"Add": func(a, b int) int {
				return a + b
			},
		}}
	})
	return funcMap
}

func Safe(raw string) template.HTML {
	return template.HTML(raw)
}

// NewLine2br simply replaces "\n" to "<br>".
func NewLine2br(raw string) string {
	return strings.Replace(raw, "\n", "<br>", -1)
}

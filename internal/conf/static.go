// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package conf

import (
	"net/url"
	"os"
)

// ℹ️ README: This file contains static values that should only be set at initialization time.

// CustomConf returns the absolute path of custom configuration file that is used.
var CustomConf string

// Build information should only be set by -ldflags.
var (
	BuildTime   string
	BuildCommit string
)

var (
	// Application settings
	App struct {
		// ⚠️ WARNING: Should only be set by the main package (i.e. "main.go").
		Version string `ini:"-"`

		BrandName string
		RunMode   string
	}

	// Server settings: [server]
	Server struct {
		ExternalURL          string `ini:"EXTERNAL_URL"`
		Domain               string
		Protocol             string
		HTTPAddr             string `ini:"HTTP_ADDR"`
		HTTPPort             string `ini:"HTTP_PORT"`
		CertFile             string
		KeyFile              string
		UnixSocketPermission string
		DisableRouterLog     bool
		EnableGzip           bool
		LoadAssetsFromDisk   bool

		// Derived from other static values
		URL            *url.URL    `ini:"-"` // Parsed URL object of ExternalURL.
		Subpath        string      `ini:"-"` // Subpath found in the ExternalURL. Should be empty when not found.
		SubpathDepth   int         `ini:"-"` // The number of slashes found in the Subpath.
		UnixSocketMode os.FileMode `ini:"-"` // Parsed file mode of UnixSocketPermission.
	}

	// Database settings: [database]
	Database DatabaseOpts

	// UI settings: [ui]
	UI struct {
		ReleasesPagingNum int
		ThemeColorMetaTag string
	}

	// Cache settings: [cache]
	Cache struct {
		Adapter  string
		Interval int
		Host     string
	}

	// Prometheus settings: [prometheus]
	Prometheus struct {
		Enabled           bool
		EnableBasicAuth   bool
		BasicAuthUsername string
		BasicAuthPassword string
	}

	// Other settings: [other]
	Other struct {
		ShowFooterTemplateLoadTime bool
	}
)

// DatabaseOpts contains the database settings.
type DatabaseOpts struct {
	Type         string
	Host         string
	Name         string
	Schema       string
	User         string
	Password     string
	SSLMode      string `ini:"SSL_MODE"`
	Path         string
	MaxOpenConns int
	MaxIdleConns int
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-macaron/cache"
	"github.com/go-macaron/gzip"
	"github.com/go-macaron/toolbox"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"
	"gopkg.in/macaron.v1"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/context"
	"docshub.io/docshub/internal/database"
	"docshub.io/docshub/internal/route"
	"docshub.io/docshub/internal/template"
	"docshub.io/docshub/public"
	"docshub.io/docshub/templates"
)

var Web = cli.Command{
	Name:  "web",
	Usage: "Start web server",
	Description: `DocsHub web server is the only thing you need to run,
and it takes care of all the other things for you`,
	Action: runWeb,
	Flags: []cli.Flag{
		stringFlag("port, p", "3000", "Temporary port number to prevent conflict"),
		stringFlag("config, c", "", "Custom configuration file path"),
	},
}

// newMacaron initializes Macaron instance.
func newMacaron() *macaron.Macaron {
	m := macaron.New()
	if !conf.Server.DisableRouterLog {
		m.Use(macaron.Logger())
	}
	m.Use(macaron.Recovery())
	if conf.Server.EnableGzip {
		m.Use(gzip.Gziper())
	}

	// Register custom middleware first to make it possible to override files
	// under "public".
	m.Use(macaron.Static(
		filepath.Join(conf.CustomDir(), "public"),
		macaron.StaticOptions{
			SkipLogging: conf.Server.DisableRouterLog,
		},
	))
	var publicFs http.FileSystem
	if !conf.Server.LoadAssetsFromDisk {
		publicFs = public.NewFileSystem()
	}
	m.Use(macaron.Static(
		filepath.Join(conf.WorkDir(), "public"),
		macaron.StaticOptions{
			SkipLogging: conf.Server.DisableRouterLog,
			FileSystem:  publicFs,
		},
	))

	renderOpt := macaron.RenderOptions{
		Directory:         filepath.Join(conf.WorkDir(), "templates"),
		AppendDirectories: []string{filepath.Join(conf.CustomDir(), "templates")},
		Funcs:             template.FuncMap(),
		IndentJSON:        macaron.Env != macaron.PROD,
	}
	if !conf.Server.LoadAssetsFromDisk {
		renderOpt.TemplateFileSystem = templates.NewTemplateFileSystem("", renderOpt.AppendDirectories[0])
	}
	m.Use(macaron.Renderer(renderOpt))

	m.Use(cache.Cacher(cache.Options{
		Adapter:       conf.Cache.Adapter,
		AdapterConfig: conf.Cache.Host,
		Interval:      conf.Cache.Interval,
	}))
	m.Use(toolbox.Toolboxer(m, toolbox.Options{
		HealthCheckFuncs: []*toolbox.HealthCheckFuncDesc{
			{
				Desc: "Database connection",
				Func: database.Ping,
			},
		},
	}))
	m.Use(context.Contexter())
	return m
}

func runWeb(c *cli.Context) error {
	err := route.GlobalInit(c.String("config"))
	if err != nil {
		log.Fatal("Failed to initialize application: %v", err)
	}

	m := newMacaron()
	m.SetAutoHead(true)

	m.Get("/", route.Home)

	m.Group("/releases", func() {
		m.Get("", route.RecentReleases)
		m.Get("/recent", route.RecentReleases)
		m.Get("/recent/:page", route.RecentReleases)
		m.Get("/author/:author", route.ReleasesByAuthor)
		m.Get("/author/:author/:page", route.ReleasesByAuthor)
		m.Get("/search", route.SearchReleases)
		m.Get("/search/:page", route.SearchReleases)
	})

	m.Get("/api/v1/releases/recent", route.RecentReleasesFeed)

	m.Group("/-", func() {
		if conf.Prometheus.Enabled {
			m.Get("/metrics", func(c *context.Context) {
				if !conf.Prometheus.EnableBasicAuth {
					return
				}

				c.RequireBasicAuth(conf.Prometheus.BasicAuthUsername, conf.Prometheus.BasicAuthPassword)
			}, promhttp.Handler())
		}
	})

	// Not found handler.
	m.NotFound(route.NotFound)

	// Flag for port number in case first time run conflict.
	if c.IsSet("port") {
		conf.Server.URL.Host = strings.Replace(conf.Server.URL.Host, conf.Server.URL.Port(), c.String("port"), 1)
		conf.Server.ExternalURL = conf.Server.URL.String()
		conf.Server.HTTPPort = c.String("port")
	}

	var listenAddr string
	if conf.Server.Protocol == "unix" {
		listenAddr = conf.Server.HTTPAddr
	} else {
		listenAddr = fmt.Sprintf("%s:%s", conf.Server.HTTPAddr, conf.Server.HTTPPort)
	}
	log.Info("Listen on %v://%s%s", conf.Server.Protocol, listenAddr, conf.Server.Subpath)

	switch conf.Server.Protocol {
	case "http":
		err = http.ListenAndServe(listenAddr, m)

	case "https":
		err = http.ListenAndServeTLS(listenAddr, conf.Server.CertFile, conf.Server.KeyFile, m)

	case "unix":
		err = os.Remove(listenAddr)
		if err != nil && !os.IsNotExist(err) {
			log.Fatal("Failed to remove existing Unix domain socket: %v", err)
		}

		var listener *net.UnixListener
		listener, err = net.ListenUnix("unix", &net.UnixAddr{Name: listenAddr, Net: "unix"})
		if err != nil {
			log.Fatal("Failed to listen on Unix networks: %v", err)
		}

		if err = os.Chmod(listenAddr, conf.Server.UnixSocketMode); err != nil {
			log.Fatal("Failed to change permission of Unix domain socket: %v", err)
		}
		err = http.Serve(listener, m)

	default:
		log.Fatal("Unexpected server protocol: %s", conf.Server.Protocol)
	}

	if err != nil {
		log.Fatal("Failed to start server: %v", err)
	}

	return nil
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// DocsHub is a documentation hosting service for published software releases.
package main

import (
	"os"

	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/cmd"
	"docshub.io/docshub/internal/conf"
)

// Version is the current application version, overridden at release build
// time via -ldflags.
var Version = "0.5.0+dev"

func init() {
	conf.App.Version = Version
}

func main() {
	app := cli.NewApp()
	app.Name = "DocsHub"
	app.Usage = "A documentation hosting service for published releases"
	app.Version = Version
	app.Commands = []cli.Command{
		cmd.Web,
		cmd.Import,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal("Failed to run application: %v", err)
	}
}

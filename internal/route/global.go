// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package route

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/macaron.v1"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/conf"
	"docshub.io/docshub/internal/database"
)

// GlobalInit is for global configuration reload-able.
func GlobalInit(customConf string) error {
	err := conf.Init(customConf)
	if err != nil {
		return errors.Wrap(err, "init configuration")
	}

	conf.InitLogging()
	log.Info("%s %s", conf.App.BrandName, conf.App.Version)
	log.Trace("Work directory: %s", conf.WorkDir())
	log.Trace("Custom path: %s", conf.CustomDir())
	log.Trace("Custom config: %s", conf.CustomConf)
	log.Trace("Log path: %s", conf.Log.RootPath)

	w, err := database.NewLogWriter()
	if err != nil {
		return errors.Wrap(err, "create database log writer")
	}
	if _, err = database.NewConnection(w); err != nil {
		return errors.Wrap(err, "connect to database")
	}

	checkRunMode()
	return nil
}

func checkRunMode() {
	if conf.IsProdMode() {
		macaron.Env = macaron.PROD
		macaron.ColorLog = false
	}
	log.Info("Run mode: %s", strings.Title(macaron.Env))
}

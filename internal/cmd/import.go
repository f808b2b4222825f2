// Copyright 2024 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	gocontext "context"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
	log "unknwon.dev/clog/v2"

	"docshub.io/docshub/internal/database"
	"docshub.io/docshub/internal/route"
)

var Import = cli.Command{
	Name:      "import",
	Usage:     "Import release records from a JSON dump",
	ArgsUsage: "<path>",
	Description: `Read a JSON array of release records and create the missing ones.
Records that already exist are skipped, so the command is safe to re-run
on an updated dump.`,
	Action: runImport,
	Flags: []cli.Flag{
		stringFlag("config, c", "", "Custom configuration file path"),
		boolFlag("quiet, q", "Only print warnings and errors"),
	},
}

type importRecord struct {
	Name        string    `json:"name"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	HasDocs     bool      `json:"has_docs"`
	TargetName  string    `json:"target_name"`
	ReleasedAt  time.Time `json:"released_at"`
	Stars       int       `json:"stars"`
}

func runImport(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("missing path to the JSON dump")
	}

	err := route.GlobalInit(c.String("config"))
	if err != nil {
		return errors.Wrap(err, "initialize application")
	}
	if c.Bool("quiet") {
		log.Remove(log.DefaultConsoleName)
		if err = log.NewConsole(0, log.ConsoleConfig{Level: log.LevelWarn}); err != nil {
			return errors.Wrap(err, "initialize console logger")
		}
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return errors.Wrap(err, "read dump")
	}

	var records []importRecord
	if err = jsoniter.Unmarshal(data, &records); err != nil {
		return errors.Wrap(err, "parse dump")
	}

	ctx := gocontext.Background()
	releases := database.Handle.Releases()
	imported := 0
	for _, record := range records {
		release := &database.Release{
			Name:        record.Name,
			Version:     record.Version,
			Description: record.Description,
			Author:      record.Author,
			HasDocs:     record.HasDocs,
			TargetName:  record.TargetName,
		}
		if !record.ReleasedAt.IsZero() {
			release.ReleasedUnix = record.ReleasedAt.Unix()
		}

		err = releases.Create(ctx, release)
		if err != nil {
			if database.IsErrReleaseAlreadyExist(err) {
				log.Trace("Skipped existing release %s-%s", record.Name, record.Version)
				continue
			}
			return errors.Wrapf(err, "create release %s-%s", record.Name, record.Version)
		}
		imported++
	}

	log.Info("Imported %d releases (%d skipped)", imported, len(records)-imported)
	log.Stop()
	return nil
}

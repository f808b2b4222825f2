// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dbutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docshub.io/docshub/internal/conf"
)

func TestParsePostgreSQLHostPort(t *testing.T) {
	tests := []struct {
		info    string
		expHost string
		expPort string
	}{
		{info: "127.0.0.1:1234", expHost: "127.0.0.1", expPort: "1234"},
		{info: "127.0.0.1", expHost: "127.0.0.1", expPort: "5432"},
		{info: "[::1]:1234", expHost: "[::1]", expPort: "1234"},
		{info: "[::1]", expHost: "[::1]", expPort: "5432"},
		{info: "/tmp/pg.sock:1234", expHost: "/tmp/pg.sock", expPort: "1234"},
	}
	for _, test := range tests {
		t.Run("", func(t *testing.T) {
			host, port := ParsePostgreSQLHostPort(test.info)
			assert.Equal(t, test.expHost, host)
			assert.Equal(t, test.expPort, port)
		})
	}
}

func TestNewDSN(t *testing.T) {
	tests := []struct {
		name   string
		opts   conf.DatabaseOpts
		expDSN string
	}{
		{
			name: "mysql",
			opts: conf.DatabaseOpts{
				Type:     "mysql",
				Host:     "localhost:3306",
				Name:     "docshub",
				User:     "docshub",
				Password: "123456",
			},
			expDSN: "docshub:123456@tcp(localhost:3306)/docshub?charset=utf8mb4&parseTime=true",
		},
		{
			name: "mysql unix socket",
			opts: conf.DatabaseOpts{
				Type:     "mysql",
				Host:     "/tmp/mysql.sock",
				Name:     "docshub",
				User:     "docshub",
				Password: "123456",
			},
			expDSN: "docshub:123456@unix(/tmp/mysql.sock)/docshub?charset=utf8mb4&parseTime=true",
		},
		{
			name: "postgres",
			opts: conf.DatabaseOpts{
				Type:     "postgres",
				Host:     "localhost:5432",
				Name:     "docshub",
				Schema:   "public",
				User:     "docshub",
				Password: "123456",
				SSLMode:  "disable",
			},
			expDSN: "user='docshub' password='123456' host='localhost' port='5432' dbname='docshub' sslmode='disable' search_path='public' application_name='docshub'",
		},
		{
			name: "sqlite3",
			opts: conf.DatabaseOpts{
				Type: "sqlite3",
				Path: "/tmp/docshub.db",
			},
			expDSN: "file:/tmp/docshub.db?cache=shared&mode=rwc",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dsn, err := NewDSN(test.opts)
			require.NoError(t, err)
			assert.Equal(t, test.expDSN, dsn)
		})
	}

	t.Run("unrecognized dialect", func(t *testing.T) {
		_, err := NewDSN(conf.DatabaseOpts{Type: "bad_dialect"})
		assert.EqualError(t, err, "unrecognized dialect: bad_dialect")
	})
}

// Copyright 2023 The DocsHub Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"docshub.io/docshub/internal/errutil"
)

// Release is a published release of a crate, with the outcome of its
// documentation build.
type Release struct {
	ID          int64  `gorm:"primarykey"`
	Name        string `gorm:"index:idx_release_name_version,unique;not null"`
	Version     string `gorm:"index:idx_release_name_version,unique;not null"`
	Description string
	Author      string `gorm:"index"`

	// HasDocs is true iff the documentation build succeeded and produced a
	// servable doc set for TargetName. TargetName may be empty when HasDocs
	// is false.
	HasDocs    bool
	TargetName string

	Stars        int
	ReleasedUnix int64     `gorm:"index"`
	Released     time.Time `gorm:"-" json:"-"`
	CreatedUnix  int64
}

// BeforeCreate implements the GORM create hook.
func (r *Release) BeforeCreate(tx *gorm.DB) error {
	if _, err := semver.NewVersion(r.Version); err != nil {
		return errors.Wrapf(err, "parse version %q", r.Version)
	}

	if r.CreatedUnix == 0 {
		r.CreatedUnix = tx.NowFunc().Unix()
	}
	if r.ReleasedUnix == 0 {
		r.ReleasedUnix = r.CreatedUnix
	}
	return nil
}

// AfterFind implements the GORM query hook.
func (r *Release) AfterFind(_ *gorm.DB) error {
	r.Released = time.Unix(r.ReleasedUnix, 0)
	return nil
}

// ReleasesStore is the storage layer for release records.
type ReleasesStore struct {
	db *gorm.DB
}

func newReleasesStore(db *gorm.DB) *ReleasesStore {
	return &ReleasesStore{db: db}
}

type ErrReleaseAlreadyExist struct {
	args errutil.Args
}

// IsErrReleaseAlreadyExist returns true if the underlying error has the type
// ErrReleaseAlreadyExist.
func IsErrReleaseAlreadyExist(err error) bool {
	return errors.As(err, &ErrReleaseAlreadyExist{})
}

func (err ErrReleaseAlreadyExist) Error() string {
	return fmt.Sprintf("release already exists: %v", err.args)
}

// Create persists a new release record. It returns ErrReleaseAlreadyExist
// when a release with the same name and version already exists.
func (s *ReleasesStore) Create(ctx context.Context, release *Release) error {
	err := s.db.WithContext(ctx).
		Where("name = ? AND version = ?", release.Name, release.Version).
		First(new(Release)).
		Error
	if err == nil {
		return ErrReleaseAlreadyExist{args: errutil.Args{"name": release.Name, "version": release.Version}}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.WithContext(ctx).Create(release).Error
}

var _ errutil.NotFound = (*ErrReleaseNotExist)(nil)

type ErrReleaseNotExist struct {
	args errutil.Args
}

// IsErrReleaseNotExist returns true if the underlying error has the type
// ErrReleaseNotExist.
func IsErrReleaseNotExist(err error) bool {
	return errors.As(err, &ErrReleaseNotExist{})
}

func (err ErrReleaseNotExist) Error() string {
	return fmt.Sprintf("release does not exist: %v", err.args)
}

func (ErrReleaseNotExist) NotFound() bool {
	return true
}

// GetByNameVersion returns the release with given name and version. It
// returns ErrReleaseNotExist when not found.
func (s *ReleasesStore) GetByNameVersion(ctx context.Context, name, version string) (*Release, error) {
	release := new(Release)
	err := s.db.WithContext(ctx).
		Where("name = ? AND version = ?", name, version).
		First(release).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReleaseNotExist{args: errutil.Args{"name": name, "version": version}}
	} else if err != nil {
		return nil, err
	}
	return release, nil
}

// ListRecent returns one page of releases ordered by publish time, most
// recent first.
func (s *ReleasesStore) ListRecent(ctx context.Context, page, pageSize int) ([]*Release, error) {
	var releases []*Release
	return releases, s.db.WithContext(ctx).
		Order("released_unix DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&releases).
		Error
}

// CountRecent returns the total number of release records.
func (s *ReleasesStore) CountRecent(ctx context.Context) int64 {
	var count int64
	s.db.WithContext(ctx).Model(new(Release)).Count(&count)
	return count
}

// ListByAuthor returns one page of the author's releases ordered by publish
// time, most recent first.
func (s *ReleasesStore) ListByAuthor(ctx context.Context, author string, page, pageSize int) ([]*Release, error) {
	var releases []*Release
	return releases, s.db.WithContext(ctx).
		Where("author = ?", author).
		Order("released_unix DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&releases).
		Error
}

// CountByAuthor returns the total number of the author's release records.
func (s *ReleasesStore) CountByAuthor(ctx context.Context, author string) int64 {
	var count int64
	s.db.WithContext(ctx).Model(new(Release)).Where("author = ?", author).Count(&count)
	return count
}

// Search returns one page of releases whose name or description matches the
// keyword, along with the total number of matches.
func (s *ReleasesStore) Search(ctx context.Context, keyword string, page, pageSize int) ([]*Release, int64, error) {
	keyword = "%" + keyword + "%"

	var count int64
	err := s.db.WithContext(ctx).
		Model(new(Release)).
		Where("name LIKE ? OR description LIKE ?", keyword, keyword).
		Count(&count).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "count")
	}

	var releases []*Release
	err = s.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", keyword, keyword).
		Order("released_unix DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&releases).
		Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "find")
	}
	return releases, count, nil
}

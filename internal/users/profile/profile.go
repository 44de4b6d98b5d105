// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile resolves user ids to display names.

Profiles are created by the account service; this package only reads them.
Lookups go through an optional cache (Redis in production) before falling
back to the source of truth.
*/
package profile

import (
	"context"
	"log/slog"
	"slices"
)

// Source is the authoritative lookup.
type Source interface {
	DisplayNames(context context.Context, userIDs []string) (map[string]string, error)
}

// Cache stores names by user id. Get returns the hits and leaves misses out.
type Cache interface {
	Get(context context.Context, userIDs []string) (map[string]string, error)
	Set(context context.Context, names map[string]string) error
}

// Directory reads names through the cache.
//
// Cache failures are logged and never fail a lookup.
type Directory struct {
	source Source
	cache  Cache
	logger *slog.Logger
}

// NewDirectory builds a [Directory]. cache may be nil.
func NewDirectory(source Source, cache Cache, logger *slog.Logger) *Directory {
	return &Directory{source: source, cache: cache, logger: logger}
}

// DisplayNames returns the names it could resolve. Ids without a profile are
// absent from the result.
func (directory *Directory) DisplayNames(context context.Context, userIDs []string) (map[string]string, error) {
	userIDs = dedupe(userIDs)
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}

	if directory.cache == nil {
		return directory.source.DisplayNames(context, userIDs)
	}

	names, err := directory.cache.Get(context, userIDs)
	if err != nil {
		directory.logger.WarnContext(context, "profile_cache_read_failed", slog.Any("error", err))
		names = nil
	}
	if names == nil {
		names = make(map[string]string, len(userIDs))
	}

	missing := slices.DeleteFunc(slices.Clone(userIDs), func(id string) bool {
		_, hit := names[id]
		return hit
	})
	if len(missing) == 0 {
		return names, nil
	}

	loaded, err := directory.source.DisplayNames(context, missing)
	if err != nil {
		return names, err
	}

	if len(loaded) > 0 {
		if err := directory.cache.Set(context, loaded); err != nil {
			directory.logger.WarnContext(context, "profile_cache_write_failed", slog.Any("error", err))
		}
	}

	for id, name := range loaded {
		names[id] = name
	}

	return names, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

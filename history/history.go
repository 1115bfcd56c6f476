// Package history tracks which videos were watched and where playback stopped.
package history

import (
	"strings"
	"time"

	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var now = time.Now

// Get returns every saved entry keyed by source and identifier.
func Get() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// List returns saved entries, most recently watched first.
// Entries watched at the same time are ordered by source and identifier.
func List() ([]*Entry, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	slices.SortFunc(entries, func(a, b *Entry) int {
		if c := b.WatchedAt.Compare(a.WatchedAt); c != 0 {
			return c
		}
		return strings.Compare(a.encode(), b.encode())
	})
	return entries, nil
}

// Save stores entry, replacing an earlier one for the same video.
// The watch time is set to now.
func Save(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	entry.WatchedAt = now()
	saved[entry.encode()] = entry

	return cacher.Set(saved)
}

// Remove deletes the entry for the same video as entry.
func Remove(entry *Entry) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return cacher.Set(saved)
}

// Clear forgets every entry.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}

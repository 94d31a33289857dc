package catalog

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ardnew/scenic/document"
)

// Cache holds parsed catalog files by canonical path. It never evicts a
// successfully parsed file. Failed parses are not kept, so a later request
// retries.
//
// The zero value is not usable; create one with [NewCache].
type Cache struct {
	mu     sync.Mutex
	files  map[string]*cached
	parses atomic.Int64
}

type cached struct {
	once sync.Once
	doc  *document.File
	err  error
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{files: make(map[string]*cached)}
}

// load returns the file at the canonical path, calling parse only if no
// other caller has parsed it. Concurrent callers for the same path wait for
// the one parse. hit reports whether the path was already present.
func (c *Cache) load(
	path string,
	parse func(string) (*document.File, error),
) (doc *document.File, hit bool, err error) {
	c.mu.Lock()

	e, hit := c.files[path]
	if !hit {
		e = &cached{}
		c.files[path] = e
	}

	c.mu.Unlock()

	e.once.Do(func() {
		c.parses.Add(1)
		e.doc, e.err = parse(path)
	})

	if e.err != nil {
		c.mu.Lock()
		if c.files[path] == e {
			delete(c.files, path)
		}
		c.mu.Unlock()
	}

	return e.doc, hit, e.err
}

// Parses returns the number of parses performed.
func (c *Cache) Parses() int { return int(c.parses.Load()) }

// Len returns the number of cached files.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.files)
}

// Paths returns the canonical paths of the cached files, sorted.
func (c *Cache) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Sorted(maps.Keys(c.files))
}

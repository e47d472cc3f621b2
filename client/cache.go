package client

import (
	"sync"

	"github.com/wireforge/go-subwire/metadata"
)

// metadataKey identifies one runtime build. Two chains running the same spec
// name never reuse a spec version for a different blob.
type metadataKey struct {
	SpecName    string
	SpecVersion uint32
}

// MetadataCache retains decoded metadata across clients. Entries are written
// once and never evicted: a key always maps to the same blob, so entries
// cannot go stale, only accumulate one per runtime upgrade.
type MetadataCache struct {
	mu      sync.RWMutex
	entries map[metadataKey]*metadata.Metadata
}

// NewMetadataCache returns an empty cache, ready to be shared by any number
// of clients.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{entries: make(map[metadataKey]*metadata.Metadata)}
}

func (c *MetadataCache) get(key metadataKey) (*metadata.Metadata, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	md, ok := c.entries[key]
	return md, ok
}

// put keeps the first metadata stored under a key. Concurrent decoders of
// the same blob may race to store; whichever lands first wins and the
// results are interchangeable.
func (c *MetadataCache) put(key metadataKey, md *metadata.Metadata) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; !ok {
		c.entries[key] = md
	}
}

// Package cfb reads Microsoft OLE Compound File Binary (CDF) containers
// and exposes their named streams as byte blobs. Legacy .doc/.ppt/.xls
// files are CFB containers; this package supplies the minimal lookup
// contract the PPT parser needs (§4.A of the format spec) on top of
// github.com/richardlehane/mscfb, the OLE2 reader also used elsewhere
// in the corpus for the same purpose.
package cfb

import (
	"bytes"
	"errors"
	"io"

	"github.com/richardlehane/mscfb"
)

// ErrNotCompound is returned when the input is not a valid CFB
// container. Callers fall through to a degraded scan (see internal/legacy).
var ErrNotCompound = errors.New("cfb: not a compound file")

// Container exposes named-stream lookup over a parsed CFB file. Streams
// are read fully into memory at Open time since the parser operates on
// fully-buffered input (spec.md §5).
type Container struct {
	streams map[string][]byte
}

// Open parses raw bytes as a CFB container. Any error from the
// underlying reader is normalized to ErrNotCompound.
func Open(data []byte) (*Container, error) {
	r, err := mscfb.New(bytes.NewReader(data))
	if err != nil {
		return nil, ErrNotCompound
	}

	c := &Container{streams: make(map[string][]byte)}
	for {
		entry, nextErr := r.Next()
		if nextErr != nil {
			break
		}
		if entry == nil || entry.Name == "" {
			continue
		}
		buf, readErr := io.ReadAll(entry)
		if readErr != nil {
			// Partial or corrupt stream: keep what was read rather than
			// dropping the entry entirely.
			if len(buf) == 0 {
				continue
			}
		}
		// A name can repeat across sibling storages; the first
		// occurrence wins, matching the streams this parser cares about
		// (all top-level: PowerPoint Document, Current User, Pictures,
		// the two property-set streams).
		if _, exists := c.streams[entry.Name]; !exists {
			c.streams[entry.Name] = buf
		}
	}

	return c, nil
}

// Find returns the named stream's bytes, or nil if absent. Callers
// tolerate a nil result.
func (c *Container) Find(name string) []byte {
	if c == nil {
		return nil
	}
	return c.streams[name]
}

// Has reports whether the named stream exists in the container.
func (c *Container) Has(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.streams[name]
	return ok
}

package cliconfig

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/sirspot/resume/internal/seed"
	"github.com/sirspot/resume/pkg/log"
)

// Blob is one JSON section array and where it came from.
type Blob struct {
	Source string
	Data   []byte
}

// EmbeddedSource names the compiled-in configuration.
const EmbeddedSource = "embedded"

// LoadData returns the configuration blobs to fill, in order: the embedded
// blob unless NoEmbedded is set, then DataFile when given.
func (c *Config) LoadData(l log.Logger) ([]Blob, error) {
	var blobs []Blob
	if !c.NoEmbedded {
		blobs = append(blobs, Blob{Source: EmbeddedSource, Data: seed.Configuration})
	}
	if c.DataFile != "" {
		b, err := os.ReadFile(c.DataFile)
		if err != nil {
			return nil, fmt.Errorf("read data: %w", err)
		}
		blobs = append(blobs, Blob{Source: c.DataFile, Data: b})
	}
	for _, b := range blobs {
		l.Info("configuration loaded",
			log.String("source", b.Source),
			log.Size("size", len(b.Data)),
			log.Digest("xxhash", xxhash.Sum64(b.Data)),
		)
	}
	return blobs, nil
}

// RenderSeed returns the configured seed, or a fresh one from crypto/rand
// when none is set.
func (c *Config) RenderSeed() (int64, error) {
	if c.Seed != 0 {
		return c.Seed, nil
	}
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

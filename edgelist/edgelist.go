// Package edgelist reads undirected edge lists from delimited text.
//
// The expected layout is a header row followed by one edge per record; the
// first two columns are the endpoint ids and any further columns are ignored:
//
//	id_1,id_2
//	0,23977
//	1,34526
//
// ReadFile decompresses .gz and .zst inputs transparently.
package edgelist

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/degrees/core"
)

// ErrMalformedRecord is returned for a record whose endpoints cannot be parsed.
var ErrMalformedRecord = errors.New("edgelist: malformed record")

// Option configures the reader.
type Option func(*options)

type options struct {
	comma  rune
	header bool
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) Option {
	return func(o *options) { o.comma = r }
}

// WithoutHeader treats the first record as data.
func WithoutHeader() Option {
	return func(o *options) { o.header = false }
}

// Read parses every record of r into an Edge, preserving duplicates and
// self-loops in input order.
func Read(r io.Reader, opts ...Option) ([]core.Edge, error) {
	o := options{comma: ',', header: true}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	var edges []core.Edge
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			return edges, nil
		}
		if err != nil {
			return nil, fmt.Errorf("edgelist: line %d: %w", line, err)
		}
		if line == 1 && o.header {
			continue
		}
		e, err := parse(rec)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		edges = append(edges, e)
	}
}

func parse(rec []string) (core.Edge, error) {
	if len(rec) < 2 {
		return core.Edge{}, fmt.Errorf("want 2 columns, got %d", len(rec))
	}
	from, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 32)
	if err != nil {
		return core.Edge{}, err
	}
	to, err := strconv.ParseUint(strings.TrimSpace(rec[1]), 10, 32)
	if err != nil {
		return core.Edge{}, err
	}
	return core.Edge{From: core.Vertex(from), To: core.Vertex(to)}, nil
}

// ReadFile opens path and reads it with Read. Files ending in .gz or .zst
// are decompressed on the fly.
func ReadFile(path string, opts ...Option) ([]core.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("edgelist: gzip %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("edgelist: zstd %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}
	return Read(r, opts...)
}

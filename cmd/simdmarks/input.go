package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/pkg/errors"
)

const (
	extGZIP   = ".gz"
	extFlate  = ".zz"
	extSnappy = ".sz"
	extS2     = ".s2"
	extLZ4    = ".lz4"
	extZstd   = ".zst"
)

const stdinName = "-"

// input is one document to scan, decompressed according to its file
// extension.
type input struct {
	io.Reader
	closers []io.Closer
}

func (in *input) Close() error {
	var first error
	for i := len(in.closers) - 1; i >= 0; i-- {
		if err := in.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func openInput(path string, stdin io.Reader) (*input, error) {
	if path == stdinName {
		return &input{Reader: stdin}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	in := &input{Reader: f, closers: []io.Closer{f}}

	if err := in.decompress(filepath.Ext(path)); err != nil {
		in.Close()
		return nil, errors.Wrapf(err, "decompress %s", path)
	}
	return in, nil
}

func (in *input) decompress(ext string) error {
	switch ext {
	case extGZIP:
		r, err := gzip.NewReader(in.Reader)
		if err != nil {
			return err
		}
		in.Reader = r
		in.closers = append(in.closers, r)
	case extFlate:
		r := flate.NewReader(in.Reader)
		in.Reader = r
		in.closers = append(in.closers, r)
	case extSnappy, extS2:
		// s2 reads snappy framed streams too
		in.Reader = s2.NewReader(in.Reader)
	case extLZ4:
		in.Reader = lz4.NewReader(in.Reader)
	case extZstd:
		r, err := zstd.NewReader(in.Reader)
		if err != nil {
			return err
		}
		in.Reader = r
		in.closers = append(in.closers, zstdCloser{r})
	}
	return nil
}

// zstd.Decoder.Close returns nothing.
type zstdCloser struct{ *zstd.Decoder }

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

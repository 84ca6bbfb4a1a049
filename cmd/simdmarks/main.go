// Command simdmarks runs stage 1 over JSON documents and reports what it
// found: how many structural, whitespace and string bytes each input has,
// and whether it is valid UTF-8.
//
//	simdmarks [flags] [file ...]
//
// With no files, or a file named "-", standard input is read. Files ending in
// .gz, .zz, .sz, .s2, .lz4 or .zst are decompressed first. The exit status is
// 1 if any input is not valid UTF-8 and 2 on usage or I/O errors.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	"github.com/biggeezerdevelopment/simdmarks"
	"github.com/biggeezerdevelopment/simdmarks/internal/index"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	fs := flag.NewFlagSet("simdmarks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))
	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		return exitError
	}
	logger = level.NewFilter(logger, cfg.logLevel)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	level.Debug(logger).Log("msg", "starting", "level", cfg.level, "default_level", simdmarks.DefaultLevel())

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{stdinName}
	}

	status := exitOK
	for _, path := range paths {
		m, err := scanFile(path, stdin, cfg.level)
		if err != nil && !errors.Is(err, simdmarks.ErrInvalidUTF8) {
			level.Error(logger).Log("msg", "failed to scan input", "path", path, "err", err)
			status = exitError
			continue
		}
		if m.Verdict != simdmarks.Success {
			level.Warn(logger).Log("msg", "input is not valid UTF-8", "path", path)
			status = max(status, exitInvalid)
		}
		printReport(stdout, path, m, cfg)
	}
	return status
}

func scanFile(path string, stdin io.Reader, l simdmarks.Level) (*simdmarks.Marks, error) {
	in, err := openInput(path, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	m, err := simdmarks.FindReader(in, simdmarks.WithLevel(l))
	if m == nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return m, err
}

// report counts the marks of one input, ignoring the padding after it.
type report struct {
	structurals int // outside strings
	whitespace  int // outside strings
	stringBytes int
	quotes      int
}

func summarize(m *simdmarks.Marks) report {
	var r report
	for w := range m.Structural {
		valid := ^uint64(0)
		if rem := m.Len - w*64; rem < 64 {
			valid = 1<<rem - 1
		}
		inString := m.QuoteMask[w] & valid
		r.structurals += index.OnesCount([]uint64{m.Structural[w] &^ inString})
		r.whitespace += index.OnesCount([]uint64{m.Whitespace[w] &^ inString})
		r.stringBytes += index.OnesCount([]uint64{inString})
	}
	r.quotes = index.OnesCount(m.QuoteBits)
	return r
}

func printReport(w io.Writer, path string, m *simdmarks.Marks, cfg Config) {
	r := summarize(m)
	indices := m.StructuralIndices()

	fmt.Fprintf(w, "%s: bytes=%d structurals=%d whitespace=%d string_bytes=%d quotes=%d indices=%d verdict=%s\n",
		path, m.Len, r.structurals, r.whitespace, r.stringBytes, r.quotes, len(indices), m.Verdict)
	if cfg.Indices {
		fmt.Fprintf(w, "%s: indices %v\n", path, indices)
	}
	if cfg.Quotes {
		var quotes []uint32
		for i, word := range m.QuoteBits {
			quotes = index.Flatten(quotes, uint32(i*64), word)
		}
		fmt.Fprintf(w, "%s: quotes %v\n", path, quotes)
	}
}

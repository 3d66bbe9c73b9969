// Package bundle builds a single "context document" from a source tree:
// every matching file wrapped in a fenced block labeled with its path,
// in sorted path order.
package bundle

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Build discovers, reads and formats every matching file and returns the
// whole document. The first failure aborts the build.
func Build(opts Options, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return "", err
	}

	startTime := time.Now()
	logger.Info("Starting context build", zap.String("root", opts.Root))

	paths, err := Discover(opts, logger)
	if err != nil {
		return "", err
	}

	progress := opts.Progress
	if progress == nil {
		progress = os.Stderr
	}

	var doc strings.Builder
	if opts.Tree && len(paths) > 0 {
		doc.WriteString(FormatTree(opts.Root, paths))
	}

	var totalBytes uint64
	for _, path := range paths {
		if opts.Verbose {
			_, _ = fmt.Fprintf(progress, "Reading %s\n", path)
		}
		content, err := ProcessSingleFile(path, opts.Language, logger)
		if err != nil {
			return "", err
		}
		doc.WriteString(content.Content)
		totalBytes += uint64(len(content.Content))
	}

	logger.Info("Context build completed",
		zap.Int("totalFiles", len(paths)),
		zap.String("size", humanize.Bytes(totalBytes)),
		zap.Duration("elapsed", time.Since(startTime)))
	return doc.String(), nil
}

// Run builds the document and writes it to out in a single write.
// Nothing is written when the build fails.
func Run(opts Options, out io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := Build(opts, logger)
	if err != nil {
		logger.Debug("Context build failed", zap.Error(err))
		return err
	}

	if _, err := io.WriteString(out, doc); err != nil {
		logger.Debug("Failed to write context document", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

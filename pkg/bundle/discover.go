// File: pkg/bundle/discover.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"ctxbundle/pkg/ignore"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Discover returns every regular file under opts.Root matching opts.Pattern,
// minus hidden and excluded paths, sorted in ascending byte order. Symlinked
// directories are not descended into.
func Discover(opts Options, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file discovery",
		zap.String("root", opts.Root),
		zap.String("pattern", opts.Pattern))

	info, err := os.Stat(opts.Root)
	if err != nil {
		logger.Debug("Root directory cannot be accessed", zap.String("root", opts.Root), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDiscovery, opts.Root)
	}

	matcher, err := loadExcludes(opts, logger)
	if err != nil {
		return nil, err
	}

	matches, err := doublestar.Glob(os.DirFS(opts.Root), opts.Pattern,
		doublestar.WithFilesOnly(),
		doublestar.WithNoFollow(),
		doublestar.WithFailOnIOErrors())
	if err != nil {
		logger.Debug("Error during file discovery", zap.String("root", opts.Root), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrDiscovery, err)
	}

	paths := make([]string, 0, len(matches))
	for _, match := range matches {
		if !opts.Hidden && isHidden(match) {
			logger.Debug("Skipping hidden file", zap.String("file", match))
			continue
		}
		if ok, p := matcher.MatchesPathWithPattern(match); ok {
			logger.Debug("Skipping excluded file",
				zap.String("file", match),
				zap.String("pattern", p.Line))
			continue
		}
		paths = append(paths, filepath.Join(opts.Root, filepath.FromSlash(match)))
	}
	slices.Sort(paths)

	logger.Debug("Completed file discovery",
		zap.Int("matched", len(matches)),
		zap.Int("kept", len(paths)))
	return paths, nil
}

// loadExcludes compiles the ignore file first so command-line patterns can override it.
func loadExcludes(opts Options, logger *zap.Logger) (*ignore.Matcher, error) {
	matcher := ignore.New(logger)
	if opts.ExcludeFile != "" {
		if err := matcher.CompileFile(opts.ExcludeFile); err != nil {
			return nil, fmt.Errorf("%w: loading exclude file: %w", ErrDiscovery, err)
		}
	}
	matcher.CompileLines(opts.Exclude...)
	return matcher, nil
}

// isHidden reports whether any segment of a slash-separated match starts with a dot.
func isHidden(match string) bool {
	for _, segment := range strings.Split(match, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

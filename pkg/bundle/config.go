// File: pkg/bundle/config.go
package bundle

import (
	"fmt"
	"io"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Defaults reproduce the behavior of the original context script.
const (
	DefaultRoot     = "src"
	DefaultPattern  = "**/*.rs"
	DefaultLanguage = "rust"
)

// Options holds the configuration for building a context document.
type Options struct {
	Root        string    // Directory to search; must exist.
	Pattern     string    // Glob pattern matched relative to Root, supports '**'.
	Language    string    // Language tag written on every opening fence.
	Verbose     bool      // If true, writes "Reading <path>" to Progress before each read.
	Exclude     []string  // Gitignore-style patterns, relative to Root, dropped from the bundle.
	ExcludeFile string    // Optional ignore file with one pattern per line.
	Tree        bool      // If true, prepends a tree listing of the bundled files.
	Hidden      bool      // If true, files and directories starting with '.' are matched too.
	Progress    io.Writer // Destination for progress lines; os.Stderr when nil.
}

// FileContent represents a single file after it has been read and formatted.
type FileContent struct {
	Path    string // Path as discovered, relative to the working directory.
	Content string // The fenced block for the file.
}

// DefaultOptions returns the options the tool runs with when no flags are given.
func DefaultOptions() Options {
	return Options{
		Root:     DefaultRoot,
		Pattern:  DefaultPattern,
		Language: DefaultLanguage,
	}
}

// Validate reports configuration problems before any filesystem access.
func (o Options) Validate() error {
	if o.Root == "" {
		return fmt.Errorf("%w: root directory is empty", ErrInvalidOptions)
	}
	if o.Pattern == "" || !doublestar.ValidatePattern(o.Pattern) {
		return fmt.Errorf("%w: bad glob pattern %q", ErrInvalidOptions, o.Pattern)
	}
	if o.Language == "" || strings.ContainsAny(o.Language, " \t\r\n`") {
		return fmt.Errorf("%w: bad language tag %q", ErrInvalidOptions, o.Language)
	}
	return nil
}

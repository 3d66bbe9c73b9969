// Package ignore matches slash-separated paths against gitignore-style
// exclusion patterns.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Pattern is one compiled pattern line together with where it came from.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of the pattern.
	Negate bool           // Pattern started with '!'.
	Line   string         // Original pattern line.
	LineNo int            // Line number in its source (1-based).
}

// Matcher holds patterns in the order they were compiled. The last matching
// pattern decides whether a path is excluded.
type Matcher struct {
	Patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher. A nil logger disables logging.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// CompileLines compiles pattern lines, skipping blanks and comments.
func (m *Matcher) CompileLines(lines ...string) {
	for i, line := range lines {
		re, negate := parsePatternLine(line)
		if re == nil {
			continue
		}
		p := &Pattern{Regexp: re, Negate: negate, Line: line, LineNo: i + 1}
		m.Patterns = append(m.Patterns, p)
		m.logger.Debug("Compiled exclude pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile compiles every line of an ignore file. A missing file is not an error.
func (m *Matcher) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Exclude file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Debug("Failed to read exclude file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.CompileLines(lines...)
	m.logger.Debug("Loaded exclude file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// MatchesPath reports whether path is excluded.
func (m *Matcher) MatchesPath(path string) bool {
	matches, _ := m.MatchesPathWithPattern(path)
	return matches
}

// MatchesPathWithPattern reports whether path is excluded and returns the
// last pattern that matched it, if any.
func (m *Matcher) MatchesPathWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	var matched *Pattern
	for _, p := range m.Patterns {
		if p.Regexp.MatchString(normalized) {
			matched = p
		}
	}
	if matched == nil {
		return false, nil
	}
	return !matched.Negate, matched
}

// parsePatternLine turns one pattern line into an anchored regular expression.
func parsePatternLine(line string) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	anchored := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false
	}

	expr := "^(?:.*/)?"
	if anchored {
		expr = "^"
	}
	expr += translate(trimmed)
	if dirOnly {
		expr += "/.*$"
	} else {
		expr += "(?:/.*)?$"
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, false
	}
	return re, negate
}

// translate converts wildcards to regex: '**' crosses directories, '*' and '?' do not.
func translate(pattern string) string {
	var b strings.Builder
	for i := 0; i < len(pattern); {
		atSegmentStart := i == 0 || pattern[i-1] == '/'
		switch {
		case atSegmentStart && strings.HasPrefix(pattern[i:], "**/"):
			b.WriteString("(?:.*/)?")
			i += 3
		case atSegmentStart && pattern[i:] == "**":
			b.WriteString(".*")
			i += 2
		case pattern[i] == '*':
			b.WriteString("[^/]*")
			i++
		case pattern[i] == '?':
			b.WriteString("[^/]")
			i++
		default:
			r, size := utf8.DecodeRuneInString(pattern[i:])
			b.WriteString(regexp.QuoteMeta(string(r)))
			i += size
		}
	}
	return b.String()
}

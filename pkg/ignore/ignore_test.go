package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMatchesPath(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"no patterns", nil, "a.rs", false},
		{"exact file name", []string{"a.rs"}, "a.rs", true},
		{"file name in subdirectory", []string{"a.rs"}, "sub/a.rs", true},
		{"dot is literal", []string{"a.rs"}, "abrs", false},
		{"star within segment", []string{"*_test.rs"}, "vm/vm_test.rs", true},
		{"star does not cross directories", []string{"vm*.rs"}, "vm/stack.rs", false},
		{"question mark", []string{"?.rs"}, "x.rs", true},
		{"question mark single char", []string{"?.rs"}, "xy.rs", false},
		{"directory pattern", []string{"target/"}, "target/debug/build.rs", true},
		{"directory pattern nested", []string{"target/"}, "crates/target/x.rs", true},
		{"directory pattern needs contents", []string{"target/"}, "target", false},
		{"anchored pattern", []string{"/build.rs"}, "build.rs", true},
		{"anchored pattern not nested", []string{"/build.rs"}, "sub/build.rs", false},
		{"leading double star", []string{"**/tests"}, "a/b/tests/t.rs", true},
		{"leading double star at root", []string{"**/tests"}, "tests/t.rs", true},
		{"middle double star", []string{"a/**/z.rs"}, "a/b/c/z.rs", true},
		{"middle double star zero dirs", []string{"a/**/z.rs"}, "a/z.rs", true},
		{"trailing double star", []string{"gen/**"}, "gen/x/y.rs", true},
		{"negation re-includes", []string{"*.rs", "!keep.rs"}, "keep.rs", false},
		{"last match wins", []string{"!keep.rs", "*.rs"}, "keep.rs", true},
		{"escaped hash", []string{`\#weird.rs`}, "#weird.rs", true},
		{"comment ignored", []string{"# a.rs"}, "a.rs", false},
		{"blank ignored", []string{"", "   "}, "a.rs", false},
		{"regex metacharacters literal", []string{"a+b(1).rs"}, "a+b(1).rs", true},
		{"backslash path normalized", []string{"sub/a.rs"}, filepath.Join("sub", "a.rs"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(zaptest.NewLogger(t))
			m.CompileLines(tt.patterns...)
			assert.Equal(t, tt.want, m.MatchesPath(tt.path))
		})
	}
}

func TestMatchesPathWithPattern(t *testing.T) {
	m := New(nil)
	m.CompileLines("# comment", "*.bak", "target/")

	ok, p := m.MatchesPathWithPattern("target/out.rs")
	require.True(t, ok)
	require.NotNil(t, p)
	assert.Equal(t, "target/", p.Line)
	assert.Equal(t, 3, p.LineNo)
	assert.False(t, p.Negate)

	ok, p = m.MatchesPathWithPattern("src/lib.rs")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads patterns", func(t *testing.T) {
		path := filepath.Join(dir, ".bundleignore")
		require.NoError(t, os.WriteFile(path, []byte("# generated code\r\ngen/\r\n!gen/keep.rs\r\n"), 0o644))

		m := New(zaptest.NewLogger(t))
		require.NoError(t, m.CompileFile(path))
		assert.Len(t, m.Patterns, 2)
		assert.True(t, m.MatchesPath("gen/a.rs"))
		assert.False(t, m.MatchesPath("gen/keep.rs"))
	})

	t.Run("missing file", func(t *testing.T) {
		m := New(zaptest.NewLogger(t))
		require.NoError(t, m.CompileFile(filepath.Join(dir, "missing")))
		assert.Empty(t, m.Patterns)
	})

	t.Run("directory is an error", func(t *testing.T) {
		m := New(zaptest.NewLogger(t))
		assert.Error(t, m.CompileFile(dir))
	})
}

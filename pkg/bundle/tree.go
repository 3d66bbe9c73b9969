// File: pkg/bundle/tree.go
package bundle

import (
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

// FormatTree renders the bundled files as a directory tree rooted at root,
// wrapped in a fenced text block.
func FormatTree(root string, paths []string) string {
	top := &treeNode{dir: true, children: map[string]*treeNode{}}

	for _, path := range paths {
		relPath, err := filepath.Rel(root, path)
		if err != nil {
			relPath = path
		}
		parts := strings.Split(filepath.ToSlash(relPath), "/")

		node := top
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				child = &treeNode{name: part, dir: i < len(parts)-1, children: map[string]*treeNode{}}
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(fence + "text tree\n")
	treeBuilder.WriteString(strings.TrimSuffix(filepath.ToSlash(filepath.Clean(root)), "/") + "/\n")
	writeTree(&treeBuilder, top, "")
	treeBuilder.WriteString(fence + "\n\n")
	return treeBuilder.String()
}

// writeTree writes directories before files, each group ordered case-insensitively.
func writeTree(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].dir != entries[j].dir {
			return entries[i].dir
		}
		li, lj := strings.ToLower(entries[i].name), strings.ToLower(entries[j].name)
		if li != lj {
			return li < lj
		}
		return entries[i].name < entries[j].name
	})

	for i, entry := range entries {
		connector := "├── "
		extension := "│   "
		if i == len(entries)-1 {
			connector = "└── "
			extension = "    "
		}

		if entry.dir {
			b.WriteString(prefix + connector + entry.name + "/\n")
			writeTree(b, entry, prefix+extension)
			continue
		}
		b.WriteString(prefix + connector + entry.name + "\n")
	}
}

// File: pkg/combine/tree.go
package combine

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

type treeNode struct {
	name     string
	dir      bool
	children map[string]*treeNode
}

func newDirNode(name string) *treeNode {
	return &treeNode{name: name, dir: true, children: map[string]*treeNode{}}
}

// GenerateTree renders the candidates under root as a box-drawing tree.
// Only directories that contain at least one candidate appear.
func GenerateTree(root string, candidates []string) string {
	top := newDirNode(root)
	for _, candidate := range candidates {
		relPath, err := filepath.Rel(root, candidate)
		if err != nil || relPath == ".." || strings.HasPrefix(relPath, ".."+string(filepath.Separator)) {
			continue
		}

		node := top
		parts := strings.Split(filepath.ToSlash(relPath), "/")
		for i, part := range parts {
			child, ok := node.children[part]
			if !ok {
				if i == len(parts)-1 {
					child = &treeNode{name: part}
				} else {
					child = newDirNode(part)
				}
				node.children[part] = child
			}
			node = child
		}
	}

	var treeBuilder strings.Builder
	treeBuilder.WriteString(fmt.Sprintf("%s/\n", root))
	writeTree(&treeBuilder, top, "")
	return treeBuilder.String()
}

func writeTree(b *strings.Builder, node *treeNode, prefix string) {
	entries := make([]*treeNode, 0, len(node.children))
	for _, child := range node.children {
		entries = append(entries, child)
	}

	// Sort entries: directories first, then files, alphabetically
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
			b.WriteString(fmt.Sprintf("%s%s%s/\n", prefix, connector, entry.name))
			writeTree(b, entry, prefix+extension)
		} else {
			b.WriteString(fmt.Sprintf("%s%s%s\n", prefix, connector, entry.name))
		}
	}
}

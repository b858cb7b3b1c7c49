package output

import (
	"path/filepath"
	"sort"
	"strings"
)

const (
	// Tree connectors
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is the column descriptions are aligned to.
	descriptionColumn = 32
)

// treeNode is a directory or file in a rendered tree.
type treeNode struct {
	name        string
	description string
	dir         bool
	children    map[string]*treeNode
}

func newTreeNode(name string, dir bool) *treeNode {
	return &treeNode{name: name, dir: dir, children: map[string]*treeNode{}}
}

// sorted returns the children with directories first, then by name.
func (n *treeNode) sorted() []*treeNode {
	out := make([]*treeNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].dir != out[j].dir {
			return out[i].dir
		}
		return out[i].name < out[j].name
	})
	return out
}

// RenderFileTree renders the files below root with their descriptions
// aligned. Keys of files are slash or OS separated paths relative to root.
func RenderFileTree(root string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	top := newTreeNode(root, true)
	for path, desc := range files {
		current := top
		parts := strings.Split(filepath.ToSlash(path), "/")
		for i, part := range parts {
			last := i == len(parts)-1
			child, ok := current.children[part]
			if !ok {
				child = newTreeNode(part, !last)
				current.children[part] = child
			}
			if last {
				child.description = desc
			}
			current = child
		}
	}

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(strings.TrimSuffix(root, "/") + "/"))
	sb.WriteString("\n")
	writeChildren(&sb, top, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, node *treeNode, prefix string) {
	children := node.sorted()
	for i, child := range children {
		last := i == len(children)-1

		connector, nextPrefix := treeEdge, prefix+treeVert
		if last {
			connector, nextPrefix = treeLast, prefix+treeSpace
		}

		name := child.name
		if child.dir {
			name += "/"
		}

		line := prefix + connector + name
		if child.description != "" {
			// Pad by rune count so box-drawing connectors align.
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleDim.Render(child.description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")

		if child.dir {
			writeChildren(sb, child, nextPrefix)
		}
	}
}

package filesystem

import (
	"fmt"
	"io"
	"strings"

	"github.com/brettbedarf/dirtree"
	"github.com/brettbedarf/dirtree/internal/util"
)

// Indent is written once per depth level in front of each listed name
const Indent = "  "

// FileSystem owns a single directory tree and all operations on it
type FileSystem struct {
	root *Node // Root of node tree
}

func NewFS() *FileSystem {
	return &FileSystem{root: NewNode()}
}

// Root returns the root container
func (fs *FileSystem) Root() *Node {
	return fs.root
}

// Resolve walks segments from the root and returns the node at the last one.
// An empty segment list resolves to the root itself.
// Fails with a NotFound error naming the first missing segment.
func (fs *FileSystem) Resolve(segments []string) (*Node, error) {
	cur := fs.root
	for _, name := range segments {
		child, ok := cur.GetChild(name)
		if !ok {
			return nil, dirtree.NewError(dirtree.ErrNotFound, "%s does not exist", name)
		}
		cur = child
	}
	return cur, nil
}

// Create adds a new empty directory at path. All ancestors must exist and the
// leaf must not.
func (fs *FileSystem) Create(path string) error {
	logger := util.GetLogger("FS.Create")
	prefix := "Cannot create " + path

	path = NormalizePath(path)
	if path == "" {
		return dirtree.NewError(dirtree.ErrEmptyPath, "path is empty").Prefixed(prefix)
	}

	parentSegs, name := splitParent(path)
	parent, err := fs.resolvePrefixed(parentSegs, prefix)
	if err != nil {
		return err
	}
	if parent.HasChild(name) {
		return dirtree.NewError(dirtree.ErrAlreadyExists, "%s already exists", name).Prefixed(prefix)
	}

	parent.AddChild(name, NewNode())
	logger.Debug().Str("path", path).Msg("Created directory")
	return nil
}

// Delete removes the directory at path together with its whole subtree
func (fs *FileSystem) Delete(path string) error {
	logger := util.GetLogger("FS.Delete")
	prefix := "Cannot delete " + path

	path = NormalizePath(path)
	if path == "" {
		return dirtree.NewError(dirtree.ErrEmptyPath, "path is empty").Prefixed(prefix)
	}

	parentSegs, name := splitParent(path)
	parent, err := fs.resolvePrefixed(parentSegs, prefix)
	if err != nil {
		return err
	}
	// A missing leaf is reported with the whole path, unlike missing ancestors
	if _, ok := parent.RemoveChild(name); !ok {
		return dirtree.NewError(dirtree.ErrNotFound, "%s does not exist", path).Prefixed(prefix)
	}

	logger.Debug().Str("path", path).Msg("Deleted directory")
	return nil
}

// Move relocates the directory at from, with its subtree, into the directory
// at to. An existing child of the same name under to is replaced.
//
// NOTE: the cycle guard is a plain string prefix test on the normalized paths,
// so moving "a" into "ab" is rejected as well.
func (fs *FileSystem) Move(from, to string) error {
	logger := util.GetLogger("FS.Move")
	prefix := fmt.Sprintf("Cannot move from %s to %s", from, to)

	from = NormalizePath(from)
	to = NormalizePath(to)
	if from == "" {
		return dirtree.NewError(dirtree.ErrEmptyPath, `"From" directory is empty`).Prefixed(prefix)
	}
	if to == "" {
		return dirtree.NewError(dirtree.ErrEmptyPath, `"To" directory is empty`).Prefixed(prefix)
	}
	if strings.HasPrefix(to, from) {
		return dirtree.NewError(dirtree.ErrCyclicMove, `"From" directory exist in "To" directory`).Prefixed(prefix)
	}

	fromSegs, name := splitParent(from)
	fromParent, err := fs.resolvePrefixed(fromSegs, prefix)
	if err != nil {
		return err
	}
	dest, err := fs.resolvePrefixed(SplitPath(to), prefix)
	if err != nil {
		return err
	}

	node, ok := fromParent.RemoveChild(name)
	if !ok {
		return dirtree.NewError(dirtree.ErrNotFound, "%s does not exist", name).Prefixed(prefix)
	}
	if dest.HasChild(name) {
		logger.Debug().Str("to", to).Str("name", name).Msg("Replacing existing directory at destination")
	}
	dest.AddChild(name, node)

	logger.Debug().Str("from", from).Str("to", to).Msg("Moved directory")
	return nil
}

// List writes the whole tree depth-first, one name per line, children in
// lexicographic order and indented by [Indent] per level.
func (fs *FileSystem) List(w io.Writer) error {
	for _, line := range fs.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Lines returns the rendering written by [FileSystem.List]
func (fs *FileSystem) Lines() []string {
	return appendLines(nil, fs.root, 0)
}

func appendLines(lines []string, n *Node, depth int) []string {
	for _, name := range n.ChildNames() {
		child, ok := n.GetChild(name)
		if !ok {
			continue
		}
		lines = append(lines, strings.Repeat(Indent, depth)+name)
		lines = appendLines(lines, child, depth+1)
	}
	return lines
}

// resolvePrefixed is [FileSystem.Resolve] with the failure message prefixed
func (fs *FileSystem) resolvePrefixed(segments []string, prefix string) (*Node, error) {
	node, err := fs.Resolve(segments)
	if err != nil {
		if e, ok := err.(*dirtree.Error); ok {
			return nil, e.Prefixed(prefix)
		}
		return nil, err
	}
	return node, nil
}

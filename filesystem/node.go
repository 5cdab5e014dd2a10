package filesystem

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v4"
)

// Node is a directory. It has no name of its own; its name is the key its
// parent stores it under.
type Node struct {
	children *xsync.Map[string, *Node] // child nodes by name
}

// Tree is a plain snapshot of a node's subtree keyed by child name
type Tree map[string]Tree

// NewNode creates a new empty Node
func NewNode() *Node {
	return &Node{
		children: xsync.NewMap[string, *Node](),
	}
}

// AddChild stores child under name, replacing any existing child of that name
func (n *Node) AddChild(name string, child *Node) {
	n.children.Store(name, child)
}

// GetChild returns a child node
func (n *Node) GetChild(name string) (child *Node, ok bool) {
	return n.children.Load(name)
}

// HasChild reports whether a child named name exists
func (n *Node) HasChild(name string) bool {
	_, ok := n.children.Load(name)
	return ok
}

// RemoveChild detaches the named child and returns it along with its subtree
func (n *Node) RemoveChild(name string) (child *Node, ok bool) {
	return n.children.LoadAndDelete(name)
}

// Len returns the number of children
func (n *Node) Len() int {
	return n.children.Size()
}

// ChildNames returns the children's names in lexicographic order
func (n *Node) ChildNames() []string {
	names := make([]string, 0, n.children.Size())
	n.children.Range(func(name string, _ *Node) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)
	return names
}

// Tree returns a snapshot of the subtree rooted at this node
func (n *Node) Tree() Tree {
	t := make(Tree, n.children.Size())
	n.children.Range(func(name string, child *Node) bool {
		t[name] = child.Tree()
		return true
	})
	return t
}

// Package device reconstructs a device's directory tree from a replayed
// terminal session and answers size queries over it.
package device

// NodeKind distinguishes the two directory entry variants.
type NodeKind int

const (
	// KindDirectory is a node holding named children.
	KindDirectory NodeKind = iota
	// KindFile is a leaf node holding a size.
	KindFile
)

// Node is one entry in the reconstructed tree: either a directory with named
// children or a file with a size. The parent pointer exists only for upward
// navigation; ownership flows root-down through the children map.
type Node struct {
	kind     NodeKind
	parent   *Node
	children map[string]*Node
	size     int
}

// NewRoot creates an empty directory node with no parent. The caller should
// keep the returned root in scope for the duration of a replay.
func NewRoot() *Node {
	return &Node{
		kind:     KindDirectory,
		children: make(map[string]*Node),
	}
}

// Kind reports whether the node is a directory or a file.
func (node *Node) Kind() NodeKind {
	return node.kind
}

// Size returns the literal size of a file node. Directories report zero;
// use TotalSize for the recursive aggregate.
func (node *Node) Size() int {
	return node.size
}

// AddFile inserts a file child with the given name and size. Insertion under
// an existing name is a no-op, never an overwrite. Returns WrongTypeError
// when called on a file node.
func (node *Node) AddFile(name string, size int) error {
	if node.kind != KindDirectory {
		return &WrongTypeError{Operation: "add file"}
	}
	if _, exists := node.children[name]; exists {
		return nil
	}
	node.children[name] = &Node{
		kind:   KindFile,
		parent: node,
		size:   size,
	}
	return nil
}

// AddDirectory inserts an empty directory child with the given name.
// Insertion under an existing name is a no-op, never an overwrite.
// Returns WrongTypeError when called on a file node.
func (node *Node) AddDirectory(name string) error {
	if node.kind != KindDirectory {
		return &WrongTypeError{Operation: "add directory"}
	}
	if _, exists := node.children[name]; exists {
		return nil
	}
	node.children[name] = &Node{
		kind:     KindDirectory,
		parent:   node,
		children: make(map[string]*Node),
	}
	return nil
}

// Child returns the named child node. It fails with NotFoundError when the
// name is absent and WrongTypeError when the receiver is a file node.
func (node *Node) Child(name string) (*Node, error) {
	if node.kind != KindDirectory {
		return nil, &WrongTypeError{Operation: "child lookup"}
	}
	child, exists := node.children[name]
	if !exists {
		return nil, &NotFoundError{Name: name}
	}
	return child, nil
}

// Parent returns the parent node, or nil at the root.
func (node *Node) Parent() *Node {
	return node.parent
}

// Root walks parent references until none remains.
func (node *Node) Root() *Node {
	root := node
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// TotalSize recursively sums the file sizes beneath this node. A file node
// returns its own size.
func (node *Node) TotalSize() int {
	_, total := node.collectDirectorySizes(nil)
	return total
}

// DirectorySizes returns the aggregate size of this node plus the size of
// every directory strictly beneath it. Files are not represented as elements;
// their sizes are folded into their ancestors.
func (node *Node) DirectorySizes() []int {
	sizes, _ := node.collectDirectorySizes(nil)
	return sizes
}

// collectDirectorySizes performs a post-order walk accumulating every
// directory's aggregate size into sizes, and returns the aggregate size of
// the node itself.
func (node *Node) collectDirectorySizes(sizes []int) ([]int, int) {
	if node.kind == KindFile {
		return sizes, node.size
	}
	total := 0
	for _, child := range node.children {
		var childSize int
		sizes, childSize = child.collectDirectorySizes(sizes)
		total += childSize
	}
	sizes = append(sizes, total)
	return sizes, total
}

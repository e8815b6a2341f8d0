package bstview

import (
	"strconv"
	"strings"
)

// EmptyDescription is returned by Tree.Describe for a tree with no nodes.
const EmptyDescription = "tree is empty"

// Tree is a binary search tree keyed by unique ints. It is not safe for
// concurrent use; a single logical thread of control owns it.
type Tree struct {
	root *Node
	size int

	// OnChange, when set, is called after every structural mutation with the
	// operation that caused it. It is not called for no-ops (duplicate insert,
	// removal of an absent value, clearing or balancing an empty tree).
	OnChange func(ChangeEvent)
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil when the tree is empty. The returned
// nodes MUST NOT be mutated by the caller.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t.root == nil
}

// Insert adds value as a new leaf. Inserting a value that is already present
// leaves the tree untouched and returns false.
func (t *Tree) Insert(value int) bool {
	if !t.insert(value) {
		return false
	}
	relabelDepths(t.root)
	t.changed(OpInsert, value)
	return true
}

// insert attaches value without relabelling depths or notifying.
func (t *Tree) insert(value int) bool {
	if t.root == nil {
		t.root = newNode(value, 1)
		t.size = 1
		return true
	}
	n := t.root
	for {
		switch {
		case value < n.Value:
			if n.Left == nil {
				n.Left = newNode(value, n.Depth+1)
				t.size++
				return true
			}
			n = n.Left
		case value > n.Value:
			if n.Right == nil {
				n.Right = newNode(value, n.Depth+1)
				t.size++
				return true
			}
			n = n.Right
		default:
			return false
		}
	}
}

// Find returns the stored depth of the node holding value.
func (t *Tree) Find(value int) (depth int, found bool) {
	n := t.root
	for n != nil {
		switch {
		case value < n.Value:
			n = n.Left
		case value > n.Value:
			n = n.Right
		default:
			return n.Depth, true
		}
	}
	return 0, false
}

// Contains reports whether value is present.
func (t *Tree) Contains(value int) bool {
	_, ok := t.Find(value)
	return ok
}

// Remove deletes value from the tree. A node with two children takes the
// value of its in-order successor, which is then unlinked from the right
// subtree. Removing an absent value is a no-op and returns false.
func (t *Tree) Remove(value int) bool {
	link := &t.root
	for *link != nil && (*link).Value != value {
		if value < (*link).Value {
			link = &(*link).Left
		} else {
			link = &(*link).Right
		}
	}
	n := *link
	if n == nil {
		return false
	}

	switch {
	case n.Left == nil:
		*link = n.Right
	case n.Right == nil:
		*link = n.Left
	default:
		succLink := &n.Right
		for (*succLink).Left != nil {
			succLink = &(*succLink).Left
		}
		succ := *succLink
		n.Value = succ.Value
		*succLink = succ.Right
	}
	t.size--

	relabelDepths(t.root)
	t.changed(OpRemove, value)
	return true
}

// Clear releases every node.
func (t *Tree) Clear() {
	if t.root == nil {
		return
	}
	t.root = nil
	t.size = 0
	t.changed(OpClear, 0)
}

// Height returns the number of levels: 0 for an empty tree, 1 for a lone
// root. It is computed from the structure on every call.
func (t *Tree) Height() int {
	return subtreeHeight(t.root)
}

// Balance discards the tree and rebuilds it from its sorted values, choosing
// the middle element of every range as the subtree root. The result has
// height ceil(log2(n+1)).
func (t *Tree) Balance() {
	if t.root == nil {
		return
	}
	values := t.Values()
	t.root = buildBalanced(values, 0, len(values)-1, 1)
	t.size = len(values)
	t.changed(OpBalance, 0)
}

// Build replaces the contents of the tree with values, inserted in order.
// Duplicates are skipped. Observers get a single OpBuild notification.
func (t *Tree) Build(values []int) {
	t.root = nil
	t.size = 0
	for _, v := range values {
		t.insert(v)
	}
	relabelDepths(t.root)
	t.changed(OpBuild, 0)
}

// Values returns every key in ascending order.
func (t *Tree) Values() []int {
	values := make([]int, 0, t.size)
	walkInOrder(t.root, func(n *Node) bool {
		values = append(values, n.Value)
		return true
	})
	return values
}

// Walk calls fn for every node in ascending key order until fn returns false.
func (t *Tree) Walk(fn func(*Node) bool) {
	walkInOrder(t.root, fn)
}

// Describe returns the in-order listing of "value(depth)" pairs separated by
// spaces, or EmptyDescription.
func (t *Tree) Describe() string {
	if t.root == nil {
		return EmptyDescription
	}
	var b strings.Builder
	walkInOrder(t.root, func(n *Node) bool {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(n.Value))
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(n.Depth))
		b.WriteByte(')')
		return true
	})
	return b.String()
}

func (t *Tree) changed(op OpKind, value int) {
	if t.OnChange != nil {
		t.OnChange(ChangeEvent{Op: op, Value: value})
	}
}

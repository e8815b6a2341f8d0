package bstview

// Node is one element of the search tree. Each node is owned by exactly one
// parent (or by the Tree for the root); there are no back references.
//
// Renderers receive nodes through Tree.Root and Tree.Walk and MUST NOT mutate
// them. Depth is relabelled by the tree after every structural change.
type Node struct {
	Value int
	Left  *Node
	Right *Node
	Depth int // 1 for the root
}

func newNode(value, depth int) *Node {
	return &Node{Value: value, Depth: depth}
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// NumChildren returns the number of non-nil children (0, 1 or 2).
func (n *Node) NumChildren() int {
	c := 0
	if n.Left != nil {
		c++
	}
	if n.Right != nil {
		c++
	}
	return c
}

// --- Traversal helpers ---
//
// All walks use explicit stacks or queues. A tree built from sorted input
// degenerates into a list, and recursion would grow the goroutine stack by
// one frame per node.

// walkInOrder calls fn for every node in ascending key order. It stops early
// when fn returns false.
func walkInOrder(root *Node, fn func(*Node) bool) {
	var stack []*Node
	n := root
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.Left
		}
		n = stack[len(stack)-1]
		stack[len(stack)-1] = nil
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		n = n.Right
	}
}

// relabelDepths rewrites Depth for every node breadth-first from root, which
// is assigned depth 1. Returns the number of levels, i.e. the tree height.
func relabelDepths(root *Node) int {
	if root == nil {
		return 0
	}
	level := []*Node{root}
	depth := 0
	for len(level) > 0 {
		depth++
		var next []*Node
		for _, n := range level {
			n.Depth = depth
			if n.Left != nil {
				next = append(next, n.Left)
			}
			if n.Right != nil {
				next = append(next, n.Right)
			}
		}
		level = next
	}
	return depth
}

// subtreeHeight returns the number of levels below and including n. It does
// not read or write Depth.
func subtreeHeight(n *Node) int {
	if n == nil {
		return 0
	}
	level := []*Node{n}
	height := 0
	for len(level) > 0 {
		height++
		var next []*Node
		for _, c := range level {
			if c.Left != nil {
				next = append(next, c.Left)
			}
			if c.Right != nil {
				next = append(next, c.Right)
			}
		}
		level = next
	}
	return height
}

// leftmost returns the node holding the smallest key of the subtree rooted at n.
func leftmost(n *Node) *Node {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// buildBalanced builds a subtree from sorted[start:end+1], choosing the middle
// element of each range as the subtree root. Recursion depth is bounded by
// log2(len(sorted)).
func buildBalanced(sorted []int, start, end, depth int) *Node {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	n := newNode(sorted[mid], depth)
	n.Left = buildBalanced(sorted, start, mid-1, depth+1)
	n.Right = buildBalanced(sorted, mid+1, end, depth+1)
	return n
}

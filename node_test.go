package bstview

import (
	"slices"
	"testing"
)

func TestNodeChildren(t *testing.T) {
	tr := buildTree(sampleValues...)
	root := tr.Root()
	if root.IsLeaf() || root.NumChildren() != 2 {
		t.Errorf("root: IsLeaf=%v NumChildren=%d", root.IsLeaf(), root.NumChildren())
	}
	leaf := root.Left.Left
	if !leaf.IsLeaf() || leaf.NumChildren() != 0 {
		t.Errorf("leaf %d: IsLeaf=%v NumChildren=%d", leaf.Value, leaf.IsLeaf(), leaf.NumChildren())
	}

	chain := buildTree(1, 2)
	if chain.Root().NumChildren() != 1 {
		t.Errorf("NumChildren() = %d, want 1", chain.Root().NumChildren())
	}
}

func TestWalkInOrderEmpty(t *testing.T) {
	walkInOrder(nil, func(*Node) bool {
		t.Fatal("fn called on empty tree")
		return true
	})
}

func TestRelabelDepths(t *testing.T) {
	// Hand-built tree with stale depths.
	root := &Node{Value: 5, Left: &Node{Value: 2, Right: &Node{Value: 3}}, Right: &Node{Value: 9}}
	if h := relabelDepths(root); h != 3 {
		t.Errorf("relabelDepths() = %d, want 3", h)
	}
	got := []int{root.Depth, root.Left.Depth, root.Left.Right.Depth, root.Right.Depth}
	if want := []int{1, 2, 3, 2}; !slices.Equal(got, want) {
		t.Errorf("depths = %v, want %v", got, want)
	}
	if relabelDepths(nil) != 0 {
		t.Error("relabelDepths(nil) should be 0")
	}
}

func TestSubtreeHeight(t *testing.T) {
	tr := buildTree(sampleValues...)
	if h := subtreeHeight(tr.Root().Left); h != 2 {
		t.Errorf("subtreeHeight(left) = %d, want 2", h)
	}
	if h := subtreeHeight(nil); h != 0 {
		t.Errorf("subtreeHeight(nil) = %d, want 0", h)
	}
}

func TestBuildBalanced(t *testing.T) {
	tests := []struct {
		sorted []int
		root   int
		height int
	}{
		{[]int{1}, 1, 1},
		{[]int{1, 2}, 1, 2},
		{[]int{1, 2, 3}, 2, 2},
		{[]int{1, 2, 3, 4}, 2, 3},
		{[]int{1, 2, 3, 4, 5, 6, 7}, 4, 3},
	}
	for _, tt := range tests {
		n := buildBalanced(tt.sorted, 0, len(tt.sorted)-1, 1)
		if n.Value != tt.root {
			t.Errorf("%v: root = %d, want %d", tt.sorted, n.Value, tt.root)
		}
		if h := subtreeHeight(n); h != tt.height {
			t.Errorf("%v: height = %d, want %d", tt.sorted, h, tt.height)
		}
	}
	if buildBalanced(nil, 0, -1, 1) != nil {
		t.Error("empty range should build nil")
	}
}

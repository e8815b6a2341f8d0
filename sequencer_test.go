package bstview

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/stretchr/testify/require"
)

func formatAnimation(a *Animation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "op=%s value=%d mutates=%t\n", a.Op, a.Value, a.Mutates())
	for i, st := range a.Steps {
		fmt.Fprintf(&b, "%d: %s\n", i, st)
	}
	return b.String()
}

func TestSequencer(t *testing.T) {
	var tree *Tree
	var seq *Sequencer
	datadriven.RunTest(t, "testdata/sequencer", func(t *testing.T, td *datadriven.TestData) string {
		var value int
		switch td.Cmd {
		case "build":
			values, err := ParseValues(td.Input)
			require.NoError(t, err)
			tree = NewTree()
			tree.Build(values)
			seq = NewSequencer(tree)
			return tree.Describe() + "\n"

		case "clear":
			tree.Clear()
			return tree.Describe() + "\n"

		case "prepare-find":
			td.ScanArgs(t, "value", &value)
			return formatAnimation(seq.PrepareFind(value))

		case "prepare-insert":
			td.ScanArgs(t, "value", &value)
			return formatAnimation(seq.PrepareInsert(value))

		case "prepare-delete":
			td.ScanArgs(t, "value", &value)
			return formatAnimation(seq.PrepareDelete(value))

		case "prepare-balance":
			return formatAnimation(seq.PrepareBalance())

		case "commit":
			mutated := seq.Commit()
			return fmt.Sprintf("mutated=%t\n%s\n", mutated, tree.Describe())

		case "discard":
			seq.Discard()
			return ""

		case "describe":
			return tree.Describe() + "\n"

		default:
			td.Fatalf(t, "unknown command %q", td.Cmd)
			return ""
		}
	})
}

func TestPrepareDoesNotMutate(t *testing.T) {
	tr := buildTree(sampleValues...)
	before := tr.Describe()
	calls := 0
	tr.OnChange = func(ChangeEvent) { calls++ }

	seq := NewSequencer(tr)
	seq.PrepareFind(4)
	seq.PrepareInsert(6)
	seq.PrepareDelete(3)
	seq.PrepareBalance()

	require.Equal(t, before, tr.Describe())
	require.Zero(t, calls)
}

func TestPrepareInsertStepCount(t *testing.T) {
	tr := buildTree(sampleValues...)
	seq := NewSequencer(tr)

	// Ancestors of the insertion point plus three trailer steps.
	a := seq.PrepareInsert(6)
	require.Equal(t, 3+3, a.Len())
	require.True(t, a.Mutates())

	// A duplicate yields exactly one step.
	a = seq.PrepareInsert(8)
	require.Equal(t, 1, a.Len())
	require.False(t, a.Mutates())
	require.False(t, seq.Commit())
	require.Equal(t, 7, tr.Len())
}

func TestPrepareDeleteAbsent(t *testing.T) {
	tr := buildTree(sampleValues...)
	seq := NewSequencer(tr)

	a := seq.PrepareDelete(42)
	require.Equal(t, 1, a.Len())
	require.Equal(t, "Node 42 not found, nothing to delete", a.Steps[0].Description)
	_, hl := a.Steps[0].Highlight()
	require.False(t, hl)
	require.False(t, seq.Commit())
}

func TestPrepareReplacesPending(t *testing.T) {
	tr := buildTree(sampleValues...)
	seq := NewSequencer(tr)

	seq.PrepareInsert(6)
	second := seq.PrepareDelete(3)
	require.Same(t, second, seq.Pending())

	require.True(t, seq.Commit())
	require.False(t, tr.Contains(6), "replaced insert must not be applied")
	require.False(t, tr.Contains(3))
	require.Nil(t, seq.Pending())
}

func TestCommitMatchesDirectOperation(t *testing.T) {
	ops := []struct {
		name    string
		prepare func(*Sequencer) *Animation
		direct  func(*Tree)
	}{
		{"insert", func(s *Sequencer) *Animation { return s.PrepareInsert(6) }, func(t *Tree) { t.Insert(6) }},
		{"insert_dup", func(s *Sequencer) *Animation { return s.PrepareInsert(4) }, func(t *Tree) { t.Insert(4) }},
		{"delete_leaf", func(s *Sequencer) *Animation { return s.PrepareDelete(9) }, func(t *Tree) { t.Remove(9) }},
		{"delete_root", func(s *Sequencer) *Animation { return s.PrepareDelete(5) }, func(t *Tree) { t.Remove(5) }},
		{"delete_absent", func(s *Sequencer) *Animation { return s.PrepareDelete(42) }, func(t *Tree) { t.Remove(42) }},
		{"balance", func(s *Sequencer) *Animation { return s.PrepareBalance() }, func(t *Tree) { t.Balance() }},
		{"find", func(s *Sequencer) *Animation { return s.PrepareFind(7) }, func(*Tree) {}},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			animated := buildTree(1, 2, 3, 5, 4, 8, 9, 7)
			direct := buildTree(1, 2, 3, 5, 4, 8, 9, 7)

			seq := NewSequencer(animated)
			op.prepare(seq)
			seq.Commit()
			op.direct(direct)

			require.Equal(t, direct.Describe(), animated.Describe())
			require.NoError(t, animated.CheckInvariants())
		})
	}
}

func TestFindStepsMatchDepth(t *testing.T) {
	tr := buildTree(sampleValues...)
	seq := NewSequencer(tr)
	for _, v := range tr.Values() {
		a := seq.PrepareFind(v)
		depth, ok := tr.Find(v)
		require.True(t, ok)
		// One visit per level, then the found step.
		require.Equal(t, depth+1, a.Len(), "value %d", v)
		last := a.Steps[a.Len()-1]
		require.Nil(t, last.Path)
		n, hl := last.Highlight()
		require.True(t, hl)
		require.Equal(t, v, n)
		require.Len(t, a.Steps[depth-1].Path, depth)
	}
}

func TestStepPathsAreIndependent(t *testing.T) {
	tr := buildTree(sampleValues...)
	a := NewSequencer(tr).PrepareFind(4)
	a.Steps[0].Path[0] = 99
	require.Equal(t, []int{5, 3}, a.Steps[1].Path)
}

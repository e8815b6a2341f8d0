package bstview

// Sequencer prepares animations for a Tree without mutating it. Each Prepare
// call walks the tree as it exists now, materializes every step eagerly, and
// queues exactly one pending mutation, replacing whatever was queued before.
type Sequencer struct {
	tree    *Tree
	pending *Animation
}

// NewSequencer returns a sequencer bound to t.
func NewSequencer(t *Tree) *Sequencer {
	return &Sequencer{tree: t}
}

// Tree returns the tree the sequencer prepares animations for.
func (s *Sequencer) Tree() *Tree {
	return s.tree
}

// Pending returns the queued animation, or nil.
func (s *Sequencer) Pending() *Animation {
	return s.pending
}

// descend records one step per node on the search path for value and reports
// whether value was found. The comparison logic matches Tree.Find.
func (s *Sequencer) descend(rec *stepRecorder, value int, label string) bool {
	n := s.tree.root
	for i := 1; n != nil; i++ {
		rec.visit(n.Value, "%s step %d: visiting node %d", label, i, n.Value)
		switch {
		case value < n.Value:
			n = n.Left
		case value > n.Value:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// PrepareFind records the search path for value followed by a found or
// not-found step. Committing a find animation does nothing.
func (s *Sequencer) PrepareFind(value int) *Animation {
	var rec stepRecorder
	if s.descend(&rec, value, "Find") {
		rec.highlight(value, "Found node %d", value)
	} else {
		rec.note("Node %d not found", value)
	}
	return s.queue(&Animation{Op: OpFind, Value: value, Steps: rec.done()})
}

// PrepareInsert records the descent to the insertion point and the insert
// trailer. A value that is already present yields a single step and a no-op
// commit.
func (s *Sequencer) PrepareInsert(value int) *Animation {
	var rec stepRecorder
	if s.tree.Contains(value) {
		rec.highlight(value, "Node %d already exists, nothing to insert", value)
		return s.queue(&Animation{Op: OpInsert, Value: value, Steps: rec.done()})
	}
	s.descend(&rec, value, "Insert")
	rec.highlight(value, "Inserting new node %d", value)
	rec.note("Updating node depths")
	rec.note("Insert complete")
	return s.queue(&Animation{Op: OpInsert, Value: value, Steps: rec.done(), mutates: true})
}

// PrepareDelete records the descent to value and the delete trailer. An
// absent value yields a single step and a no-op commit.
func (s *Sequencer) PrepareDelete(value int) *Animation {
	var rec stepRecorder
	if !s.tree.Contains(value) {
		rec.note("Node %d not found, nothing to delete", value)
		return s.queue(&Animation{Op: OpRemove, Value: value, Steps: rec.done()})
	}
	s.descend(&rec, value, "Delete")
	rec.highlight(value, "Deleting node %d", value)
	rec.note("Restructuring tree")
	rec.note("Updating node depths")
	rec.note("Delete complete")
	return s.queue(&Animation{Op: OpRemove, Value: value, Steps: rec.done(), mutates: true})
}

// PrepareBalance records the in-order collection of every value followed by
// the rebuild trailer. An empty tree yields a single step and a no-op commit.
func (s *Sequencer) PrepareBalance() *Animation {
	var rec stepRecorder
	if s.tree.IsEmpty() {
		rec.note("Tree is empty, nothing to balance")
		return s.queue(&Animation{Op: OpBalance, Steps: rec.done()})
	}
	rec.note("Start balancing tree")
	rec.note("Collecting nodes in order")
	i := 0
	s.tree.Walk(func(n *Node) bool {
		i++
		rec.highlight(n.Value, "In-order step %d: visiting node %d", i, n.Value)
		return true
	})
	rec.note("Building balanced tree")
	rec.note("Updating node depths")
	rec.note("Balance complete")
	return s.queue(&Animation{Op: OpBalance, Steps: rec.done(), mutates: true})
}

func (s *Sequencer) queue(a *Animation) *Animation {
	s.pending = a
	return a
}

// Commit applies the pending mutation, if any, and clears it. It returns
// whether the tree was mutated. Calling Commit twice applies nothing the
// second time.
func (s *Sequencer) Commit() bool {
	a := s.pending
	s.pending = nil
	if a == nil || !a.mutates {
		return false
	}
	switch a.Op {
	case OpInsert:
		return s.tree.Insert(a.Value)
	case OpRemove:
		return s.tree.Remove(a.Value)
	case OpBalance:
		if s.tree.IsEmpty() {
			return false
		}
		s.tree.Balance()
		return true
	}
	return false
}

// Discard drops the pending mutation without applying it.
func (s *Sequencer) Discard() {
	s.pending = nil
}

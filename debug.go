package bstview

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// CheckInvariants verifies strict key ordering, depth labels and the node
// count. It returns nil for a consistent tree and otherwise an error wrapping
// ErrOrderViolation, ErrDepthMismatch or ErrSizeMismatch.
func (t *Tree) CheckInvariants() error {
	count := 0
	var prev int
	var err error
	walkInOrder(t.root, func(n *Node) bool {
		if count > 0 && n.Value <= prev {
			err = errors.Wrapf(ErrOrderViolation, "%d follows %d in order", n.Value, prev)
			return false
		}
		prev = n.Value
		count++
		return true
	})
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrSizeMismatch, "walked %d nodes, size is %d", count, t.size)
	}

	if t.root == nil {
		return nil
	}
	type item struct {
		n     *Node
		depth int
	}
	queue := []item{{t.root, 1}}
	for len(queue) > 0 {
		it := queue[0]
		queue = queue[1:]
		if it.n.Depth != it.depth {
			return errors.Wrapf(ErrDepthMismatch, "node %d has depth %d, want %d",
				it.n.Value, it.n.Depth, it.depth)
		}
		if it.n.Left != nil {
			queue = append(queue, item{it.n.Left, it.depth + 1})
		}
		if it.n.Right != nil {
			queue = append(queue, item{it.n.Right, it.depth + 1})
		}
	}
	return nil
}

// debugMaxTreeDepth is the height above which debug mode warns. Replay of a
// descent that deep takes more than half a minute at the default speed.
const debugMaxTreeDepth = 32

// debugCheckTree logs a warning for an inconsistent or very deep tree. Only
// called when the Visualizer is in debug mode.
func debugCheckTree(log logrus.FieldLogger, t *Tree, e ChangeEvent) {
	if err := t.CheckInvariants(); err != nil {
		log.WithError(err).WithField("op", e.Op).Warn("tree invariant violated")
	}
	if h := t.Height(); h > debugMaxTreeDepth {
		log.WithFields(logrus.Fields{"height": h, "threshold": debugMaxTreeDepth, "nodes": t.Len()}).
			Warn("tree height exceeds threshold; consider balancing")
	}
}

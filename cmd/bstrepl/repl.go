package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/bstdisplay/bstview"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
)

// REPL holds the state of the interactive session.
type REPL struct {
	v     *bstview.Visualizer
	clock *bstview.TimedClock
	reg   prometheus.Gatherer
	rng   *rand.Rand
	out   io.Writer
}

func newREPL(v *bstview.Visualizer, clock *bstview.TimedClock, reg prometheus.Gatherer, out io.Writer) *REPL {
	r := &REPL{
		v:     v,
		clock: clock,
		reg:   reg,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		out:   out,
	}
	v.OnStep(func(e bstview.StepEvent) {
		fmt.Fprintf(r.out, "  [%d/%d] %s\n", e.Index+1, e.Total, e.Step.Description)
	})
	v.OnHighlightPath(func(path []int) {
		fmt.Fprintf(r.out, "         path: %s\n", joinInts(path, " -> "))
	})
	v.OnFinished(func(a *bstview.Animation) {
		if a.Mutates() {
			fmt.Fprintf(r.out, "Applied %s. Tree: %s\n", a.Op, v.Describe())
		}
	})
	return r
}

func (r *REPL) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		r.printf("Goodbye!\n")
		return false

	case "insert":
		r.cmdInsert(args)

	case "delete", "remove":
		r.cmdDelete(args)

	case "find":
		r.cmdFind(args)

	case "clear":
		r.v.Clear()
		r.printf("Tree cleared\n")

	case "balance":
		r.v.Balance()
		r.printf("Tree balanced. Height: %d\n", r.v.Height())

	case "build":
		r.cmdBuild(args)

	case "random":
		r.cmdRandom(args)

	case "show":
		r.cmdShow()

	case "describe":
		r.printf("%s\n", r.v.Describe())

	case "height":
		r.printf("Height: %d\n", r.v.Height())

	case "speed":
		r.cmdSpeed(args)

	case "animate":
		r.cmdAnimate(args)

	case "stats":
		r.cmdStats()

	default:
		r.printf("Unknown command: %s. Type 'help' for available commands.\n", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

TREE OPERATIONS:
  insert <v> [<v>...]     Insert one or more values
  delete <v>              Delete a value
  find <v>                Report the depth of a value
  clear                   Remove every node
  balance                 Rebuild the tree with minimal height
  build <v> [<v>...]      Replace the tree with the given values
  random [<n>]            Replace the tree with n random values in 0..99 (default 10)

ANIMATIONS:
  animate find <v>        Replay the search for a value step by step
  animate insert <v>      Replay an insertion, then apply it
  animate delete <v>      Replay a deletion, then apply it
  animate balance         Replay the in-order collection, then rebuild
  speed [<ms>]            Show or set the time per step (100..2000 ms)

INSPECTION:
  show                    Print every node with its depth
  describe                Print the tree as value(depth) pairs
  height                  Print the tree height
  stats                   Print session counters

OTHER:
  help                    Show this help
  quit, exit              Leave the session
`
	r.printf("%s\n", help)
}

func (r *REPL) parseArg(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		r.printf("Usage: %s\n", usage)
		return 0, false
	}
	v, err := bstview.ParseValue(args[0])
	if err != nil {
		r.printf("Error: %v\n", err)
		return 0, false
	}
	return v, true
}

func (r *REPL) cmdInsert(args []string) {
	if len(args) == 0 {
		r.printf("Usage: insert <v> [<v>...]\n")
		return
	}
	values, err := bstview.ParseValues(strings.Join(args, " "))
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	for _, v := range values {
		if r.v.Insert(v) {
			r.printf("Inserted %d\n", v)
		} else {
			r.printf("Node %d already exists\n", v)
		}
	}
}

func (r *REPL) cmdDelete(args []string) {
	v, ok := r.parseArg(args, "delete <v>")
	if !ok {
		return
	}
	if r.v.Remove(v) {
		r.printf("Deleted %d\n", v)
	} else {
		r.printf("Node %d not found\n", v)
	}
}

func (r *REPL) cmdFind(args []string) {
	v, ok := r.parseArg(args, "find <v>")
	if !ok {
		return
	}
	if depth, found := r.v.Find(v); found {
		r.printf("Found node %d at depth %d\n", v, depth)
	} else {
		r.printf("Node %d not found\n", v)
	}
}

func (r *REPL) cmdBuild(args []string) {
	values, err := bstview.ParseValues(strings.Join(args, " "))
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	r.v.Build(values)
	r.printf("Built tree from %d values: %s\n", len(values), r.v.Describe())
}

func (r *REPL) cmdRandom(args []string) {
	count := bstview.DefaultRandomCount
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			r.printf("Invalid count: %v\n", err)
			return
		}
		count = n
	}
	values, err := r.v.RandomTree(r.rng, count)
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	r.printf("Random values: %s\n", joinInts(values, " "))
}

func (r *REPL) cmdShow() {
	if r.v.IsEmpty() {
		r.printf("%s\n", bstview.EmptyDescription)
		return
	}
	tbl := tablewriter.NewWriter(r.out)
	tbl.SetHeader([]string{"Value", "Depth", "Left", "Right"})
	child := func(n *bstview.Node) string {
		if n == nil {
			return "-"
		}
		return strconv.Itoa(n.Value)
	}
	r.v.Tree().Walk(func(n *bstview.Node) bool {
		tbl.Append([]string{
			strconv.Itoa(n.Value),
			strconv.Itoa(n.Depth),
			child(n.Left),
			child(n.Right),
		})
		return true
	})
	tbl.Render()
	r.printf("%d nodes, height %d\n", r.v.Tree().Len(), r.v.Height())
}

func (r *REPL) cmdSpeed(args []string) {
	if len(args) == 0 {
		r.printf("Speed: %s per step\n", r.v.Speed())
		return
	}
	ms, err := strconv.Atoi(args[0])
	if err != nil {
		r.printf("Invalid speed: %v\n", err)
		return
	}
	r.v.SetSpeed(time.Duration(ms) * time.Millisecond)
	r.printf("Speed: %s per step\n", r.v.Speed())
}

// cmdAnimate starts an animation and blocks until its replay completes.
func (r *REPL) cmdAnimate(args []string) {
	if len(args) == 0 {
		r.printf("Usage: animate find|insert|delete|balance [<v>]\n")
		return
	}
	op := strings.ToLower(args[0])
	switch op {
	case "balance":
		r.v.AnimateBalance()
	case "find", "insert", "delete":
		v, ok := r.parseArg(args[1:], "animate "+op+" <v>")
		if !ok {
			return
		}
		switch op {
		case "find":
			r.v.AnimateFind(v)
		case "insert":
			r.v.AnimateInsert(v)
		case "delete":
			r.v.AnimateDelete(v)
		}
	default:
		r.printf("Unknown animation: %s\n", op)
		return
	}
	r.clock.Run()
}

func (r *REPL) cmdStats() {
	families, err := r.reg.Gather()
	if err != nil {
		r.printf("Error: %v\n", err)
		return
	}
	tbl := tablewriter.NewWriter(r.out)
	tbl.SetHeader([]string{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			}
			tbl.Append([]string{
				mf.GetName(),
				strings.Join(labels, ","),
				strconv.FormatFloat(value, 'f', -1, 64),
			})
		}
	}
	tbl.Render()
}

func joinInts(values []int, sep string) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, sep)
}

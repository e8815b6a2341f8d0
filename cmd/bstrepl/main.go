package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bstdisplay/bstview"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	speed   time.Duration
	debug   bool
	initial string
)

var rootCmd = &cobra.Command{
	Use:   "bstrepl [command] (flags)",
	Short: "interactive binary search tree explorer",
	Long: `Starts an interactive session on a binary search tree. Every operation can
be run directly or replayed step by step with "animate".`,
	Args: cobra.NoArgs,
	RunE: runREPL,
}

var runCmd = &cobra.Command{
	Use:   "run <script.json>",
	Short: "replay a JSON script headlessly and print every step",
	Args:  cobra.ExactArgs(1),
	RunE:  runScript,
}

func main() {
	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(runCmd)

	rootCmd.PersistentFlags().DurationVarP(
		&speed, "speed", "s", bstview.DefaultInterval, "time each animation step is shown")
	rootCmd.PersistentFlags().BoolVarP(
		&debug, "debug", "d", false, "log debug output and check tree invariants after every change")
	rootCmd.PersistentFlags().StringVar(
		&initial, "values", "", "whitespace-separated values to build the initial tree from")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newVisualizer builds a Visualizer from the command-line flags.
func newVisualizer(clock bstview.Clock, reg prometheus.Registerer) (*bstview.Visualizer, error) {
	if debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	v, err := bstview.New(bstview.Config{
		Interval: speed,
		Debug:    debug,
		Logger:   logrus.WithField("pkg", "bstrepl"),
		Metrics:  bstview.NewMetrics(reg),
		Clock:    clock,
	})
	if err != nil {
		return nil, err
	}
	if initial != "" {
		values, err := bstview.ParseValues(initial)
		if err != nil {
			return nil, err
		}
		v.Build(values)
	}
	return v, nil
}

func runREPL(cmd *cobra.Command, args []string) error {
	reg := prometheus.NewRegistry()
	clock := bstview.NewTimedClock()
	v, err := newVisualizer(clock, reg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	repl := newREPL(v, clock, reg, out)
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, "BST REPL - Binary Search Tree Explorer")
	fmt.Fprintln(out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, "bst> ")
		input, err := reader.ReadString('\n')
		if err != nil {
			fmt.Fprintln(out, "\nGoodbye!")
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !repl.handleCommand(input) {
			return nil
		}
	}
}

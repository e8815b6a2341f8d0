package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bstdisplay/bstview"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// maxScriptFrames bounds a headless script run.
const maxScriptFrames = 1_000_000

func runScript(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "read script %s", args[0])
	}
	runner, err := bstview.LoadScript(data)
	if err != nil {
		return err
	}
	v, err := newVisualizer(bstview.NewFrameClock(), nil)
	if err != nil {
		return err
	}
	return playScript(v, runner, cmd.OutOrStdout())
}

// playScript advances v one step interval per frame until runner is done,
// printing every delivered step and applied change.
func playScript(v *bstview.Visualizer, runner *bstview.ScriptRunner, out io.Writer) error {
	v.OnStep(func(e bstview.StepEvent) {
		fmt.Fprintf(out, "%s %d/%d: %s\n", e.Op, e.Index+1, e.Total, e.Step)
	})
	v.OnTreeChanged(func(bstview.ChangeEvent) {
		fmt.Fprintf(out, "tree: %s\n", v.Describe())
	})
	v.OnCancelled(func(a *bstview.Animation) {
		fmt.Fprintf(out, "%s cancelled\n", a.Op)
	})
	v.SetScriptRunner(runner)
	defer v.SetScriptRunner(nil)

	for frame := 0; !runner.Done(); frame++ {
		if frame >= maxScriptFrames {
			return errors.Newf("script did not finish within %d frames", maxScriptFrames)
		}
		v.Update(float32(v.Speed().Seconds()))
	}
	for i, ok := range runner.Found {
		fmt.Fprintf(out, "find #%d: %t\n", i+1, ok)
	}
	fmt.Fprintf(out, "final: %s (height %d)\n", v.Describe(), v.Height())
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/cli"
)

func mainCmd() *cobra.Command {
	flags := cli.NewPlotFlags()
	out := "out.png"

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Plot a Julia or Mandelbrot set to a PNG file",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, flags, out)
		},
	}

	flags.Bind(cmd.Flags())
	cmd.Flags().StringVarP(&out, "out", "o", out, "output PNG path")

	return cmd
}

func runCmd(cmd *cobra.Command, flags *cli.PlotFlags, out string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	c, err := flags.Render(cmd.Context(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return err
		}
	}

	err = c.SavePNG(out)
	if err != nil {
		return fmt.Errorf("saving %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Done, wrote %s\n", out)
	return nil
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

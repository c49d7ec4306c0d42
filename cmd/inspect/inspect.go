package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/willbeason/escape-fractal/pkg/cli"
	"github.com/willbeason/escape-fractal/pkg/inspect"
)

func mainCmd() *cobra.Command {
	flags := cli.NewPlotFlags()
	addr := ":8080"

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Plot a fractal and serve it; clicking a point prints its coordinates",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCmd(cmd, flags, addr)
		},
	}

	flags.Bind(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", addr, "address to serve on")

	return cmd
}

func runCmd(cmd *cobra.Command, flags *cli.PlotFlags, addr string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c, err := flags.Render(ctx, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	err = c.EncodePNG(&buf)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Done")
	fmt.Fprintln(out, "Click on the image for information on a point, or ctrl-c to end")

	srv := inspect.NewServer(flags.Config.Mapper, c.Viewport(), buf.Bytes())
	srv.OnPoint = func(p inspect.Point) {
		fmt.Fprintln(out, "x_offset =", p.XOffset)
		fmt.Fprintln(out, "y_offset =", p.YOffset)
		fmt.Fprintln(out)
	}

	return srv.ListenAndServe(ctx, addr)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yildizm/landing/internal/chart"
	"github.com/yildizm/landing/internal/clock"
	"github.com/yildizm/landing/internal/loader"
	"github.com/yildizm/landing/internal/ui"
)

var loaderNoTUI bool

func newLoaderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loader",
		Short: "Play the loading transition",
		Long: `Play only the loading transition: the counter climbs to 100%, the mark
breaks apart, the screen zooms to white and the command exits.

With --no-tui the phases and progress are printed as plain lines instead.`,
		Args: cobra.NoArgs,
		RunE: runLoader,
	}

	cmd.Flags().BoolVar(&loaderNoTUI, "no-tui", false, "print progress lines instead of the terminal UI")

	return cmd
}

func runLoader(cmd *cobra.Command, args []string) error {
	cfg := GetGlobalConfig()

	if !loaderNoTUI {
		opts := uiOptions(cfg, chart.NewEngine(chart.SampleDataset()))
		opts.LoaderOnly = true
		return ui.Run(opts)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runPlainLoader(ctx, cmd.OutOrStdout(), clock.Real(), cfg.LoaderTimings())
}

// runPlainLoader runs the transition and prints each phase change and every
// tenth percent of progress. It returns loader.ErrCancelled if ctx ends first.
func runPlainLoader(ctx context.Context, out io.Writer, clk clock.Clock, timings loader.Timings) error {
	states := make(chan loader.State, loader.MaxProgress+8)
	done := make(chan struct{})

	machine := loader.New(clk,
		func() { close(done) },
		loader.WithTimings(timings),
		loader.WithObserver(func(s loader.State) {
			select {
			case states <- s:
			case <-ctx.Done():
			}
		}),
	)
	defer machine.Cancel()

	if err := machine.Start(); err != nil {
		return err
	}

	log := newLogger("loader")
	var last loader.State
	printed := false
	report := func(s loader.State) {
		if printed && s.Phase == last.Phase && s.Progress/10 == last.Progress/10 {
			return
		}
		printed = true
		last = s
		fmt.Fprintf(out, "%-8s %3d%%\n", s.Phase, s.Progress)
	}

	for {
		select {
		case s := <-states:
			report(s)
		case <-done:
			for {
				select {
				case s := <-states:
					report(s)
				default:
					log.Debug("Transition complete")
					return nil
				}
			}
		case <-ctx.Done():
			machine.Cancel()
			log.Debug("Transition cancelled")
			return loader.ErrCancelled
		}
	}
}

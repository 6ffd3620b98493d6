package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/yt-mov/internal/model"
	"github.com/ytget/yt-mov/internal/session"
)

// Pipeline failures reported by run
var (
	ErrDownloadFailed = errors.New("download failed")
	ErrConvertFailed  = errors.New("conversion failed")
)

func newRunCommand(opts *rootOptions) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "run <url> -o <path>",
		Short: "Download and convert one video without opening a window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			env := newEnv(opts.cfg, opts.logger, nil)
			_, err := runHeadless(ctx, env, opts.logger, args[0], outputPath, cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "path of the MP4 file to write")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// runHeadless drives one pipeline run through the same Program the window
// uses, prints the diagnostics to out and returns the final session.
func runHeadless(ctx context.Context, env session.Env, log *zap.Logger, url, savePath string, out io.Writer) (model.Session, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := session.NewProgram(env, log)

	finished := make(chan session.View, 1)
	program.OnChange(func(v session.View) {
		if v.Stage.IsFinished() && !v.Busy {
			select {
			case finished <- v:
			default:
			}
		}
	})

	runErr := make(chan error, 1)
	go func() {
		runErr <- program.Run(ctx)
	}()

	program.Send(session.InputURL{Text: url})
	program.Send(session.InputSavePath{Text: savePath})
	program.Send(session.StartDownload{})

	var view session.View
	select {
	case view = <-finished:
	case <-ctx.Done():
	}
	cancel()
	<-runErr

	state := program.State()
	for _, line := range state.Logs {
		fmt.Fprintln(out, line)
	}

	switch {
	case view.Stage == model.StageDownloadFailed:
		return state, ErrDownloadFailed
	case view.Stage == model.StageConvertFailed:
		return state, ErrConvertFailed
	case view.Stage != model.StageCompleted:
		return state, fmt.Errorf("interrupted: %w", context.Cause(ctx))
	}
	return state, nil
}

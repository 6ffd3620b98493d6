package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-mov/internal/platform"
)

// ErrToolsMissing is returned by check when an executable cannot be found
var ErrToolsMissing = errors.New("required tools are missing")

func newCheckCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report whether yt-dlp and ffmpeg can be found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			statuses := platform.CheckTools(
				platform.Tool{Name: "yt-dlp", Binary: opts.cfg.Downloader.Binary},
				platform.Tool{Name: "ffmpeg", Binary: opts.cfg.Converter.Binary},
			)

			out := cmd.OutOrStdout()
			missing := 0
			for _, s := range statuses {
				if s.Found() {
					fmt.Fprintf(out, "%-8s ok       %s\n", s.Name, s.Path)
					continue
				}
				missing++
				fmt.Fprintf(out, "%-8s missing  %v\n", s.Name, s.Err)
			}

			if missing > 0 {
				return fmt.Errorf("%w: %d of %d", ErrToolsMissing, missing, len(statuses))
			}
			return nil
		},
	}
}

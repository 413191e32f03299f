package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/cflags/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [files...]",
		Short: "Print the compilation flags for the given source files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			format, _ := cmd.Flags().GetString("format")
			compact, _ := cmd.Flags().GetBool("compact")
			viaDaemon, _ := cmd.Flags().GetBool("daemon")

			// Include paths resolve against the working directory, so
			// changing it here changes the answer.
			if chdir, _ := cmd.Flags().GetString("chdir"); chdir != "" {
				if err := os.Chdir(chdir); err != nil {
					return zerr.Wrap(err, "failed to change directory")
				}
			}

			return c.app.Query(cmd.Context(), args, app.QueryOptions{
				Format:    format,
				Compact:   compact,
				ViaDaemon: viaDaemon,
			})
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Output format: json, yaml, or text")
	cmd.Flags().Bool("compact", false, "Emit one record per line (json only)")
	cmd.Flags().Bool("daemon", false, "Resolve flags through the background daemon")
	cmd.Flags().StringP("chdir", "C", "", "Resolve include paths against this directory")
	return cmd
}

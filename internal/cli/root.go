package cli

import (
	"github.com/spf13/cobra"
	"github.com/tgeorghiu/go-ebustl/internal/logging"
)

var (
	verbose bool
	logger  *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stldump",
	Short: "Inspect EBU-STL binary subtitle files",
	Long: `Stldump decodes EBU Tech 3264 (EBU-STL) binary subtitle files and shows
what is inside them.

The info command reads the GSI header block, the dump command lists the
assembled subtitles with their timing, position and text.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		Bool("json", false, "Output as JSON instead of tables")
}

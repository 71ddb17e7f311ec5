package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	ebustl "github.com/tgeorghiu/go-ebustl"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [stl_file]",
	Short: "List the subtitles in an STL file",
	Long: `List every assembled subtitle with its number, timecodes, row position
and text. Records chained through extension blocks appear as a single
subtitle.

Comment blocks carry production notes rather than on-screen text and are
skipped unless --comments is given.

Examples:
  stldump dump subtitles.stl
  stldump dump subtitles.stl --text
  stldump dump subtitles.stl --json --fragments`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().
		BoolP("text", "t", false, "Print plain text with timecode headers instead of a table")
	dumpCmd.Flags().
		Bool("comments", false, "Include comment blocks")
	dumpCmd.Flags().
		Bool("fragments", false, "Include the fragment sequence in JSON output")
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	withComments, _ := cmd.Flags().GetBool("comments")
	asText, _ := cmd.Flags().GetBool("text")
	asJSON, _ := cmd.Flags().GetBool("json")
	withFragments, _ := cmd.Flags().GetBool("fragments")

	logger.Infow("Reading STL file", "path", path)

	doc, err := ebustl.ParseFile(path)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	subs := doc.Subtitles
	if !withComments {
		subs = visibleSubtitles(subs)
	}
	logger.Infow("Decoded file",
		"subtitles", len(doc.Subtitles),
		"listed", len(subs),
	)

	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		views := make([]subtitleView, 0, len(subs))
		for _, s := range subs {
			views = append(views, newSubtitleView(s, withFragments))
		}
		return writeJSON(cmd, views)
	case asText:
		for _, s := range subs {
			fmt.Fprintf(out, "%d  %s --> %s\n%s\n\n", s.Number, s.Start, s.End, s.Text())
		}
	default:
		rows := make([][]string, 0, len(subs))
		for _, s := range subs {
			rows = append(rows, []string{
				fmt.Sprintf("%d", s.Number),
				s.Start.String(),
				s.End.String(),
				fmt.Sprintf("%d", s.VerticalPosition),
				s.Justification.String(),
				oneLine(s.Text()),
			})
		}
		renderTable(out, []string{"#", "Start", "End", "Row", "Justify", "Text"}, rows, []text.Align{
			text.AlignRight,
			text.AlignLeft,
			text.AlignLeft,
			text.AlignRight,
			text.AlignLeft,
			text.AlignLeft,
		})
	}
	return nil
}

// visibleSubtitles filters out comment blocks.
func visibleSubtitles(subs []ebustl.Subtitle) []ebustl.Subtitle {
	kept := make([]ebustl.Subtitle, 0, len(subs))
	for _, s := range subs {
		if !s.Comment {
			kept = append(kept, s)
		}
	}
	return kept
}

// oneLine joins subtitle rows for table display.
func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " | ")
}

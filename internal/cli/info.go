package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	ebustl "github.com/tgeorghiu/go-ebustl"
)

var infoCmd = &cobra.Command{
	Use:   "info [stl_file]",
	Short: "Show file metadata from the GSI header block",
	Long: `Show the General Subtitle Information block of an STL file: programme
titles, disk format, character table, language and subtitle counts.

Examples:
  stldump info subtitles.stl
  stldump info subtitles.stl --json`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	path := args[0]

	logger.Infow("Reading STL file", "path", path)

	doc, err := ebustl.ParseFile(path)
	if err != nil {
		return fmt.Errorf("decoding failed: %w", err)
	}

	logger.Infow("Decoded file",
		"subtitles", len(doc.Subtitles),
		"frame_rate", doc.GSI.FrameRate,
		"character_table", doc.GSI.CharacterTable.String(),
	)
	if !doc.GSI.CodePage.Known() {
		logger.Warnw("Unknown code page, header text decoded as multilingual",
			"code_page", doc.GSI.CodePage.String(),
		)
	}

	v := newGSIView(doc.GSI)

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		return writeJSON(cmd, v)
	}

	rows := [][]string{
		{"Code page", v.CodePage},
		{"Disk format", v.DiskFormat},
		{"Frame rate", fmt.Sprintf("%d fps", v.FrameRate)},
		{"Display standard", v.DisplayStandard},
		{"Character table", v.CharacterTable},
		{"Language", languageLabel(doc.GSI)},
		{"Original programme", v.OriginalProgramme},
		{"Original episode", v.OriginalEpisode},
		{"Translated programme", v.TranslatedProgramme},
		{"Translated episode", v.TranslatedEpisode},
		{"Translator", v.Translator},
		{"Subtitle list ref", v.SubtitleListRef},
		{"Created", v.CreationDate},
		{"Revised", fmt.Sprintf("%s (rev %d)", v.RevisionDate, v.RevisionNumber)},
		{"TTI blocks", fmt.Sprintf("%d", v.TTIBlocks)},
		{"Subtitles", fmt.Sprintf("%d (%d assembled)", v.Subtitles, len(doc.Subtitles))},
		{"Subtitle groups", fmt.Sprintf("%d", v.SubtitleGroups)},
		{"Row size", fmt.Sprintf("%d characters, %d rows", v.MaxCharactersPerRow, v.MaxRows)},
		{"Timecode status", v.TimecodeStatus},
		{"Programme start", v.TimecodeStart},
		{"First cue", v.TimecodeFirst},
		{"Disk", fmt.Sprintf("%d of %d", v.DiskSequence, v.TotalDisks)},
		{"Country", v.Country},
		{"Publisher", v.Publisher},
	}

	renderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, rows, nil)
	return nil
}

func languageLabel(g ebustl.GSI) string {
	if name := g.Language.Name(); name != "" {
		return fmt.Sprintf("%s (%s)", name, g.Language)
	}
	return g.Language.String()
}

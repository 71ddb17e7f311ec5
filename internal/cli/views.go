package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	ebustl "github.com/tgeorghiu/go-ebustl"
)

// View structs shape the JSON output. Padded GSI text is trimmed here; the
// library keeps fields exactly as stored.

type gsiView struct {
	CodePage            string `json:"code_page"`
	CodePageKnown       bool   `json:"code_page_known"`
	DiskFormat          string `json:"disk_format"`
	FrameRate           int    `json:"frame_rate"`
	DisplayStandard     string `json:"display_standard"`
	CharacterTable      string `json:"character_table"`
	Language            string `json:"language"`
	LanguageName        string `json:"language_name,omitempty"`
	LanguageTag         string `json:"language_tag,omitempty"`
	OriginalProgramme   string `json:"original_programme"`
	OriginalEpisode     string `json:"original_episode"`
	TranslatedProgramme string `json:"translated_programme"`
	TranslatedEpisode   string `json:"translated_episode"`
	Translator          string `json:"translator"`
	TranslatorContact   string `json:"translator_contact"`
	SubtitleListRef     string `json:"subtitle_list_ref"`
	CreationDate        string `json:"creation_date"`
	RevisionDate        string `json:"revision_date"`
	RevisionNumber      int    `json:"revision_number"`
	TTIBlocks           int    `json:"tti_blocks"`
	Subtitles           int    `json:"subtitles"`
	SubtitleGroups      int    `json:"subtitle_groups"`
	MaxCharactersPerRow int    `json:"max_characters_per_row"`
	MaxRows             int    `json:"max_rows"`
	TimecodeStatus      string `json:"timecode_status"`
	TimecodeStart       string `json:"timecode_start"`
	TimecodeFirst       string `json:"timecode_first"`
	TotalDisks          int    `json:"total_disks"`
	DiskSequence        int    `json:"disk_sequence"`
	Country             string `json:"country"`
	Publisher           string `json:"publisher"`
	Editor              string `json:"editor"`
	EditorContact       string `json:"editor_contact"`
}

type fragmentView struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Code string `json:"code,omitempty"`
}

type subtitleView struct {
	Number        uint16         `json:"number"`
	Group         uint8          `json:"group"`
	Start         string         `json:"start"`
	End           string         `json:"end"`
	Row           uint8          `json:"row"`
	Justification string         `json:"justification"`
	Comment       bool           `json:"comment,omitempty"`
	Cumulative    string         `json:"cumulative,omitempty"`
	Text          string         `json:"text"`
	Fragments     []fragmentView `json:"fragments,omitempty"`
}

func newGSIView(g ebustl.GSI) gsiView {
	v := gsiView{
		CodePage:            g.CodePage.String(),
		CodePageKnown:       g.CodePage.Known(),
		DiskFormat:          g.DiskFormat,
		FrameRate:           g.FrameRate,
		DisplayStandard:     g.DisplayStandard.String(),
		CharacterTable:      g.CharacterTable.String(),
		Language:            g.Language.String(),
		LanguageName:        g.Language.Name(),
		OriginalProgramme:   strings.TrimSpace(g.OriginalProgramme),
		OriginalEpisode:     strings.TrimSpace(g.OriginalEpisode),
		TranslatedProgramme: strings.TrimSpace(g.TranslatedProgramme),
		TranslatedEpisode:   strings.TrimSpace(g.TranslatedEpisode),
		Translator:          strings.TrimSpace(g.Translator),
		TranslatorContact:   strings.TrimSpace(g.TranslatorContact),
		SubtitleListRef:     strings.TrimSpace(g.SubtitleListRef),
		CreationDate:        g.CreationDate,
		RevisionDate:        g.RevisionDate,
		RevisionNumber:      g.RevisionNumber,
		TTIBlocks:           g.TTIBlocks,
		Subtitles:           g.Subtitles,
		SubtitleGroups:      g.SubtitleGroups,
		MaxCharactersPerRow: g.MaxCharactersPerRow,
		MaxRows:             g.MaxRows,
		TimecodeStatus:      g.TimecodeStatus.String(),
		TimecodeStart:       g.TimecodeStart.String(),
		TimecodeFirst:       g.TimecodeFirst.String(),
		TotalDisks:          g.TotalDisks,
		DiskSequence:        g.DiskSequence,
		Country:             strings.TrimSpace(g.Country),
		Publisher:           strings.TrimSpace(g.Publisher),
		Editor:              strings.TrimSpace(g.Editor),
		EditorContact:       strings.TrimSpace(g.EditorContact),
	}
	if tag := g.Language.Tag(); !tag.IsRoot() {
		v.LanguageTag = tag.String()
	}
	return v
}

func newSubtitleView(s ebustl.Subtitle, withFragments bool) subtitleView {
	v := subtitleView{
		Number:        s.Number,
		Group:         s.GroupNumber,
		Start:         s.Start.String(),
		End:           s.End.String(),
		Row:           s.VerticalPosition,
		Justification: s.Justification.String(),
		Comment:       s.Comment,
		Text:          s.Text(),
	}
	if s.Cumulative != ebustl.CumulativeNone {
		v.Cumulative = s.Cumulative.String()
	}
	if withFragments {
		for _, f := range s.Fragments {
			fv := fragmentView{Kind: f.Kind.String()}
			switch f.Kind {
			case ebustl.FragmentText:
				fv.Text = f.Text
			case ebustl.FragmentUnsupported:
				fv.Code = fmt.Sprintf("0x%02X", f.Code)
			}
			v.Fragments = append(v.Fragments, fv)
		}
	}
	return v
}

// writeJSON prints v indented on the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

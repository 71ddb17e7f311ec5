package ebustl

import (
	"fmt"
	"strconv"
	"strings"
)

const gsiBlockSize = 1024

// DisplayStandard is the GSI display standard code, kept as the raw field
// byte so unknown values survive a parse.
type DisplayStandard byte

const (
	DisplayStandardBlank          DisplayStandard = ' '
	DisplayStandardOpenSubtitling DisplayStandard = '0'
	DisplayStandardTeletextLevel1 DisplayStandard = '1'
	DisplayStandardTeletextLevel2 DisplayStandard = '2'
)

func (d DisplayStandard) String() string {
	switch d {
	case DisplayStandardBlank:
		return "undefined"
	case DisplayStandardOpenSubtitling:
		return "open subtitling"
	case DisplayStandardTeletextLevel1:
		return "teletext level 1"
	case DisplayStandardTeletextLevel2:
		return "teletext level 2"
	}
	return fmt.Sprintf("unknown (0x%02X)", byte(d))
}

// TimecodeStatus tells whether the timecodes in the file are meant to drive
// presentation.
type TimecodeStatus byte

const (
	TimecodeStatusNotForUse TimecodeStatus = '0'
	TimecodeStatusForUse    TimecodeStatus = '1'
)

func (s TimecodeStatus) String() string {
	switch s {
	case TimecodeStatusNotForUse:
		return "not intended for use"
	case TimecodeStatusForUse:
		return "intended for use"
	}
	return fmt.Sprintf("unknown (0x%02X)", byte(s))
}

// GSI is the decoded General Subtitle Information block, the 1024-byte file
// header. Text fields are decoded through the file's code page and keep
// their space padding; trimming is left to the caller. Numeric fields fall
// back to zero when unreadable, except TotalDisks and DiskSequence which
// default to 1 as single-disk programmes commonly leave them blank.
type GSI struct {
	CodePage        CodePage
	DiskFormat      string
	FrameRate       int
	DisplayStandard DisplayStandard
	CharacterTable  CharacterTable
	Language        LanguageCode

	OriginalProgramme   string
	OriginalEpisode     string
	TranslatedProgramme string
	TranslatedEpisode   string
	Translator          string
	TranslatorContact   string

	SubtitleListRef string
	CreationDate    string
	RevisionDate    string
	RevisionNumber  int

	TTIBlocks           int
	Subtitles           int
	SubtitleGroups      int
	MaxCharactersPerRow int
	MaxRows             int

	TimecodeStatus TimecodeStatus
	TimecodeStart  Timecode
	TimecodeFirst  Timecode

	TotalDisks   int
	DiskSequence int
	Country      string

	Publisher     string
	Editor        string
	EditorContact string

	Spare    []byte
	UserData []byte
}

// parseGSI decodes the header block from the start of data. Byte positions
// follow the standard's layout table, given as inclusive ranges.
func parseGSI(data []byte) (GSI, error) {
	if len(data) < gsiBlockSize {
		return GSI{}, fmt.Errorf("%w: GSI block needs %d bytes, have %d", ErrTruncatedInput, gsiBlockSize, len(data))
	}
	field := func(lo, hi int) []byte { return data[lo : hi+1] }

	var g GSI

	cpn := field(0, 2)
	page, err := strconv.Atoi(string(cpn))
	if err != nil || page < 0 {
		return GSI{}, fmt.Errorf("%w: %q", ErrUnrecognizedCodePage, cpn)
	}
	g.CodePage = CodePage(page)

	g.DiskFormat = string(field(3, 10))
	g.FrameRate, err = frameRateOf(g.DiskFormat)
	if err != nil {
		return GSI{}, err
	}

	g.DisplayStandard = DisplayStandard(data[11])
	g.CharacterTable = CharacterTable(field(12, 13))
	g.Language = LanguageCode(field(14, 15))

	dec := g.CodePage.decode
	g.OriginalProgramme = dec(field(16, 47))
	g.OriginalEpisode = dec(field(48, 79))
	g.TranslatedProgramme = dec(field(80, 111))
	g.TranslatedEpisode = dec(field(112, 143))
	g.Translator = dec(field(144, 175))
	g.TranslatorContact = dec(field(176, 207))

	g.SubtitleListRef = string(field(208, 223))
	g.CreationDate = string(field(224, 229))
	g.RevisionDate = string(field(230, 235))
	g.RevisionNumber = numericField(field(236, 237), 0)

	g.TTIBlocks = numericField(field(238, 242), 0)
	g.Subtitles = numericField(field(243, 247), 0)
	g.SubtitleGroups = numericField(field(248, 250), 0)
	g.MaxCharactersPerRow = numericField(field(251, 252), 0)
	g.MaxRows = numericField(field(253, 254), 0)

	g.TimecodeStatus = TimecodeStatus(data[255])
	g.TimecodeStart = timecodeFromDigits(field(256, 263))
	g.TimecodeFirst = timecodeFromDigits(field(264, 271))

	g.TotalDisks = numericField(field(272, 272), 1)
	g.DiskSequence = numericField(field(273, 273), 1)
	g.Country = string(field(274, 276))

	g.Publisher = dec(field(277, 308))
	g.Editor = dec(field(309, 340))
	g.EditorContact = dec(field(341, 372))

	g.Spare = append([]byte(nil), field(373, 447)...)
	g.UserData = append([]byte(nil), field(448, 1023)...)

	return g, nil
}

// frameRateOf extracts the nominal frame rate from a disk format field of
// the form "STLnn.01".
func frameRateOf(dfc string) (int, error) {
	rest, ok := strings.CutPrefix(dfc, "STL")
	if !ok {
		return 0, fmt.Errorf("%w: disk format %q", ErrUnrecognizedFrameRate, dfc)
	}
	digits, ok := strings.CutSuffix(rest, ".01")
	if !ok {
		return 0, fmt.Errorf("%w: disk format %q", ErrUnrecognizedFrameRate, dfc)
	}
	rate, err := strconv.Atoi(digits)
	if err != nil || rate <= 0 {
		return 0, fmt.Errorf("%w: disk format %q", ErrUnrecognizedFrameRate, dfc)
	}
	return rate, nil
}

// numericField reads a space-padded decimal field, returning fallback for
// blank or unreadable values.
func numericField(data []byte, fallback int) int {
	s := strings.TrimSpace(string(data))
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

// timecodeFromDigits reads the eight-digit "HHMMSSFF" form used by the GSI
// timecode fields. Malformed fields yield the zero timecode.
func timecodeFromDigits(data []byte) Timecode {
	var v [4]uint8
	for i := range v {
		hi, lo := data[2*i], data[2*i+1]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return Timecode{}
		}
		v[i] = (hi-'0')*10 + (lo - '0')
	}
	return Timecode{Hours: v[0], Minutes: v[1], Seconds: v[2], Frames: v[3]}
}

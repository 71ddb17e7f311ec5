package ebustl

import (
	"errors"
	"strings"
	"testing"
)

// testGSIBlock builds a well-formed header for a 25 fps teletext file with
// Latin text and English subtitles.
func testGSIBlock() []byte {
	b := make([]byte, gsiBlockSize)
	for i := range b {
		b[i] = ' '
	}
	copy(b[0:], "850")
	copy(b[3:], "STL25.01")
	b[11] = '1'
	copy(b[12:], "00")
	copy(b[14:], "09")
	copy(b[16:], "NIGHT TRAIN")
	copy(b[48:], "EPISODE 3")
	copy(b[144:], "A. TRANSLATOR")
	copy(b[208:], "REF 42")
	copy(b[224:], "260815")
	copy(b[230:], "260816")
	copy(b[236:], "02")
	copy(b[238:], "00003")
	copy(b[243:], "00002")
	copy(b[248:], "001")
	copy(b[251:], "40")
	copy(b[253:], "23")
	b[255] = '1'
	copy(b[256:], "09590000")
	copy(b[264:], "10000000")
	b[272] = '1'
	b[273] = '1'
	copy(b[274:], "GBR")
	copy(b[277:], "PUBLISHER LTD")
	return b
}

func TestParseGSIFields(t *testing.T) {
	g, err := parseGSI(testGSIBlock())
	if err != nil {
		t.Fatalf("parseGSI failed: %v", err)
	}
	if g.CodePage != CodePageMultilingual {
		t.Errorf("CodePage = %v, want 850", g.CodePage)
	}
	if g.DiskFormat != "STL25.01" || g.FrameRate != 25 {
		t.Errorf("DiskFormat = %q, FrameRate = %d", g.DiskFormat, g.FrameRate)
	}
	if g.DisplayStandard != DisplayStandardTeletextLevel1 {
		t.Errorf("DisplayStandard = %v", g.DisplayStandard)
	}
	if g.CharacterTable != CharacterTableLatin {
		t.Errorf("CharacterTable = %v", g.CharacterTable)
	}
	if g.Language != "09" || g.Language.Name() != "English" {
		t.Errorf("Language = %v (%s)", g.Language, g.Language.Name())
	}
	// Text fields keep their padding.
	if want := "NIGHT TRAIN" + strings.Repeat(" ", 21); g.OriginalProgramme != want {
		t.Errorf("OriginalProgramme = %q, want %q", g.OriginalProgramme, want)
	}
	if !strings.HasPrefix(g.OriginalEpisode, "EPISODE 3 ") {
		t.Errorf("OriginalEpisode = %q", g.OriginalEpisode)
	}
	if !strings.HasPrefix(g.Translator, "A. TRANSLATOR ") {
		t.Errorf("Translator = %q", g.Translator)
	}
	if !strings.HasPrefix(g.SubtitleListRef, "REF 42 ") {
		t.Errorf("SubtitleListRef = %q", g.SubtitleListRef)
	}
	if g.CreationDate != "260815" || g.RevisionDate != "260816" {
		t.Errorf("dates = %q, %q", g.CreationDate, g.RevisionDate)
	}
	if g.RevisionNumber != 2 {
		t.Errorf("RevisionNumber = %d, want 2", g.RevisionNumber)
	}
	if g.TTIBlocks != 3 || g.Subtitles != 2 || g.SubtitleGroups != 1 {
		t.Errorf("counts = %d, %d, %d", g.TTIBlocks, g.Subtitles, g.SubtitleGroups)
	}
	if g.MaxCharactersPerRow != 40 || g.MaxRows != 23 {
		t.Errorf("display limits = %d, %d", g.MaxCharactersPerRow, g.MaxRows)
	}
	if g.TimecodeStatus != TimecodeStatusForUse {
		t.Errorf("TimecodeStatus = %v", g.TimecodeStatus)
	}
	if want := (Timecode{Hours: 9, Minutes: 59}); g.TimecodeStart != want {
		t.Errorf("TimecodeStart = %v, want %v", g.TimecodeStart, want)
	}
	if want := (Timecode{Hours: 10}); g.TimecodeFirst != want {
		t.Errorf("TimecodeFirst = %v, want %v", g.TimecodeFirst, want)
	}
	if g.TotalDisks != 1 || g.DiskSequence != 1 {
		t.Errorf("disks = %d of %d", g.DiskSequence, g.TotalDisks)
	}
	if g.Country != "GBR" {
		t.Errorf("Country = %q", g.Country)
	}
	if !strings.HasPrefix(g.Publisher, "PUBLISHER LTD ") {
		t.Errorf("Publisher = %q", g.Publisher)
	}
	if len(g.Spare) != 75 || len(g.UserData) != 576 {
		t.Errorf("spare/user data = %d, %d bytes", len(g.Spare), len(g.UserData))
	}
}

func TestParseGSIUnknownCodePage(t *testing.T) {
	b := testGSIBlock()
	copy(b[0:], "852")
	b[16] = 0x9B
	g, err := parseGSI(b)
	if err != nil {
		t.Fatalf("numeric unknown code page must not fail: %v", err)
	}
	if g.CodePage != CodePage(852) || g.CodePage.Known() {
		t.Errorf("CodePage = %v, Known = %v", g.CodePage, g.CodePage.Known())
	}
	// Text still decodes, through the multilingual fallback.
	if !strings.HasPrefix(g.OriginalProgramme, "ø") {
		t.Errorf("OriginalProgramme = %q", g.OriginalProgramme)
	}
}

func TestParseGSIUnknownFieldsPreserved(t *testing.T) {
	b := testGSIBlock()
	b[11] = '9'
	copy(b[12:], "07")
	g, err := parseGSI(b)
	if err != nil {
		t.Fatalf("parseGSI failed: %v", err)
	}
	if g.DisplayStandard != DisplayStandard('9') {
		t.Errorf("DisplayStandard = %v", g.DisplayStandard)
	}
	if !strings.Contains(g.DisplayStandard.String(), "unknown") {
		t.Errorf("DisplayStandard.String() = %q", g.DisplayStandard.String())
	}
	if g.CharacterTable != CharacterTable("07") || g.CharacterTable.Known() {
		t.Errorf("CharacterTable = %q, Known = %v", g.CharacterTable, g.CharacterTable.Known())
	}
}

func TestParseGSIBadCodePage(t *testing.T) {
	b := testGSIBlock()
	copy(b[0:], "A50")
	_, err := parseGSI(b)
	if !errors.Is(err, ErrUnrecognizedCodePage) {
		t.Errorf("err = %v, want ErrUnrecognizedCodePage", err)
	}
}

func TestParseGSIBadDiskFormat(t *testing.T) {
	for _, dfc := range []string{"MOV25.01", "STL2X.01", "STL25.02", "STL00.01"} {
		b := testGSIBlock()
		copy(b[3:], dfc)
		if _, err := parseGSI(b); !errors.Is(err, ErrUnrecognizedFrameRate) {
			t.Errorf("%q: err = %v, want ErrUnrecognizedFrameRate", dfc, err)
		}
	}
}

func TestParseGSIFrameRates(t *testing.T) {
	b := testGSIBlock()
	copy(b[3:], "STL30.01")
	g, err := parseGSI(b)
	if err != nil {
		t.Fatalf("parseGSI failed: %v", err)
	}
	if g.FrameRate != 30 {
		t.Errorf("FrameRate = %d, want 30", g.FrameRate)
	}
}

func TestParseGSIBlankDiskFields(t *testing.T) {
	b := testGSIBlock()
	b[272] = ' '
	b[273] = ' '
	g, err := parseGSI(b)
	if err != nil {
		t.Fatalf("parseGSI failed: %v", err)
	}
	if g.TotalDisks != 1 || g.DiskSequence != 1 {
		t.Errorf("blank disk fields = %d, %d, want 1, 1", g.TotalDisks, g.DiskSequence)
	}
}

func TestParseGSIGarbageCounts(t *testing.T) {
	b := testGSIBlock()
	copy(b[238:243], "XXXXX")
	g, err := parseGSI(b)
	if err != nil {
		t.Fatalf("parseGSI failed: %v", err)
	}
	if g.TTIBlocks != 0 {
		t.Errorf("TTIBlocks = %d, want 0", g.TTIBlocks)
	}
}

func TestParseGSITruncated(t *testing.T) {
	_, err := parseGSI(testGSIBlock()[:100])
	if !errors.Is(err, ErrTruncatedInput) {
		t.Errorf("err = %v, want ErrTruncatedInput", err)
	}
}

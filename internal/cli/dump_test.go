package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	ebustl "github.com/tgeorghiu/go-ebustl"
)

// fixtureSTL builds a two-subtitle file: one spoken line and one comment
// block.
func fixtureSTL() []byte {
	gsi := make([]byte, 1024)
	for i := range gsi {
		gsi[i] = ' '
	}
	copy(gsi[0:], "850")
	copy(gsi[3:], "STL25.01")
	gsi[11] = '1'
	copy(gsi[12:], "00")
	copy(gsi[14:], "09")

	block := func(number byte, comment byte, text string) []byte {
		b := make([]byte, 128)
		b[1] = number
		b[3] = 0xFF
		copy(b[5:9], []byte{10, 0, 0, 0})
		copy(b[9:13], []byte{10, 0, 2, 0})
		b[14] = 2
		b[15] = comment
		for i := 16; i < 128; i++ {
			b[i] = 0x8F
		}
		copy(b[16:], text)
		return b
	}

	file := append(gsi, block(1, 0, "On screen")...)
	return append(file, block(2, 1, "Internal note")...)
}

func TestDumpJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixture.stl")
	if err := os.WriteFile(path, fixtureSTL(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"dump", "--json", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	var views []subtitleView
	if err := json.Unmarshal(buf.Bytes(), &views); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(views) != 1 {
		t.Fatalf("got %d subtitles, want 1 (comments skipped)", len(views))
	}
	if views[0].Text != "On screen" || views[0].Start != "10:00:00:00" {
		t.Errorf("view = %+v", views[0])
	}
}

func TestVisibleSubtitles(t *testing.T) {
	subs := []ebustl.Subtitle{{Number: 1}, {Number: 2, Comment: true}, {Number: 3}}
	kept := visibleSubtitles(subs)
	if len(kept) != 2 || kept[0].Number != 1 || kept[1].Number != 3 {
		t.Errorf("kept = %v", kept)
	}
}

func TestOneLine(t *testing.T) {
	if got := oneLine("one\ntwo"); got != "one | two" {
		t.Errorf("oneLine = %q", got)
	}
}

func TestSubtitleViewFragments(t *testing.T) {
	s := ebustl.Subtitle{
		Number: 5,
		Fragments: []ebustl.Fragment{
			{Kind: ebustl.FragmentItalicsOn},
			{Kind: ebustl.FragmentText, Text: "hi"},
			{Kind: ebustl.FragmentUnsupported, Code: 0x86},
		},
	}
	v := newSubtitleView(s, true)
	if len(v.Fragments) != 3 {
		t.Fatalf("got %d fragments, want 3", len(v.Fragments))
	}
	if v.Fragments[0].Kind != "italics on" {
		t.Errorf("kind = %q", v.Fragments[0].Kind)
	}
	if v.Fragments[1].Text != "hi" {
		t.Errorf("text = %q", v.Fragments[1].Text)
	}
	if v.Fragments[2].Code != "0x86" {
		t.Errorf("code = %q", v.Fragments[2].Code)
	}

	if got := newSubtitleView(s, false); len(got.Fragments) != 0 {
		t.Errorf("fragments included without the flag: %v", got.Fragments)
	}
}

func TestGSIViewTrimsPadding(t *testing.T) {
	doc, err := ebustl.Parse(fixtureSTL())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	v := newGSIView(doc.GSI)
	if v.Language != "09" || v.LanguageName != "English" || v.LanguageTag != "en" {
		t.Errorf("language view = %q %q %q", v.Language, v.LanguageName, v.LanguageTag)
	}
	if v.OriginalProgramme != "" {
		t.Errorf("blank programme not trimmed: %q", v.OriginalProgramme)
	}
	if v.FrameRate != 25 {
		t.Errorf("frame rate = %d", v.FrameRate)
	}
}

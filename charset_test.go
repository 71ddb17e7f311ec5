package ebustl

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeLatin(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    rune
		size    int
	}{
		{"ascii letter", []byte{'A'}, 'A', 1},
		{"currency sign replaces dollar", []byte{0x24}, '¤', 1},
		{"dollar lives in the supplement", []byte{0xA4}, '$', 1},
		{"note symbol", []byte{0xD5}, '♪', 1},
		{"soft hyphen", []byte{0xFF}, '­', 1},
		{"acute e", []byte{0xC2, 'e'}, 'é', 2},
		{"ring a", []byte{0xCA, 'a'}, 'å', 2},
		{"caron Z", []byte{0xCF, 'Z'}, 'Ž', 2},
		{"cedilla c", []byte{0xCB, 'c'}, 'ç', 2},
		{"unknown composition", []byte{0xC2, 'q'}, utf8.RuneError, 2},
		{"dangling prefix", []byte{0xC2}, utf8.RuneError, 1},
		{"prefix before control code", []byte{0xC2, ctrlRowBreak}, utf8.RuneError, 1},
		{"unassigned supplement byte", []byte{0xA6}, utf8.RuneError, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, size := decodeLatin(tt.payload)
			if got != tt.want || size != tt.size {
				t.Errorf("decodeLatin(% X) = %q, %d, want %q, %d", tt.payload, got, size, tt.want, tt.size)
			}
		})
	}
}

func TestCharacterTableDecodeChar(t *testing.T) {
	tests := []struct {
		table   CharacterTable
		payload []byte
		want    rune
	}{
		{CharacterTableCyrillic, []byte{0xB0}, 'А'},
		{CharacterTableCyrillic, []byte{0xD6}, 'ж'},
		{CharacterTableGreek, []byte{0xC1}, 'Α'},
		{CharacterTableArabic, []byte{0xC7}, 'ا'},
		{CharacterTableHebrew, []byte{0xE0}, 'א'},
	}
	for _, tt := range tests {
		got, size := tt.table.decodeChar(tt.payload)
		if got != tt.want || size != 1 {
			t.Errorf("%s: decodeChar(% X) = %q, %d, want %q, 1", tt.table, tt.payload, got, size, tt.want)
		}
	}
}

func TestUnknownCharacterTableFallsBackToLatin(t *testing.T) {
	table := CharacterTable("07")
	if table.Known() {
		t.Fatal("table 07 reported as known")
	}
	got, size := table.decodeChar([]byte{0xC2, 'a'})
	if got != 'á' || size != 2 {
		t.Errorf("decodeChar = %q, %d, want %q, 2", got, size, 'á')
	}
}

func TestCodePageDecode(t *testing.T) {
	// 0x9B tells the pages apart: cent sign on 437, slashed o on 850.
	if got := CodePageUnitedStates.decode([]byte{0x9B}); got != "¢" {
		t.Errorf("437 decode = %q, want ¢", got)
	}
	if got := CodePageMultilingual.decode([]byte{0x9B}); got != "ø" {
		t.Errorf("850 decode = %q, want ø", got)
	}
	if got := CodePageMultilingual.decode([]byte{'n', 0x82}); got != "né" {
		t.Errorf("850 decode = %q, want né", got)
	}
	// Unknown pages decode through the multilingual table.
	if got := CodePage(999).decode([]byte{0x9B}); got != "ø" {
		t.Errorf("unknown page decode = %q, want ø", got)
	}
}

func TestCodePageKnown(t *testing.T) {
	for _, c := range []CodePage{CodePageUnitedStates, CodePageMultilingual, CodePagePortugal, CodePageCanadaFrench, CodePageNordic} {
		if !c.Known() {
			t.Errorf("%s reported unknown", c)
		}
	}
	if CodePage(999).Known() {
		t.Error("999 reported known")
	}
	if got := CodePage(850).String(); got != "850" {
		t.Errorf("String() = %q, want 850", got)
	}
}

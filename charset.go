package ebustl

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// CharacterTable identifies the repertoire used by subtitle text fields,
// declared in the GSI CCT field. The value is kept exactly as it appears in
// the file, so unknown tables survive a parse.
type CharacterTable string

// Character code tables defined by EBU Tech 3264.
const (
	CharacterTableLatin    CharacterTable = "00" // ISO 6937/2 with diacritic composition
	CharacterTableCyrillic CharacterTable = "01" // ISO 8859-5
	CharacterTableArabic   CharacterTable = "02" // ISO 8859-6
	CharacterTableGreek    CharacterTable = "03" // ISO 8859-7
	CharacterTableHebrew   CharacterTable = "04" // ISO 8859-8
)

// The single-byte tables. Latin is absent because ISO 6937/2 is not a plain
// charmap; its diacritic prefixes make some characters two bytes wide.
var characterTables = map[CharacterTable]*charmap.Charmap{
	CharacterTableCyrillic: charmap.ISO8859_5,
	CharacterTableArabic:   charmap.ISO8859_6,
	CharacterTableGreek:    charmap.ISO8859_7,
	CharacterTableHebrew:   charmap.ISO8859_8,
}

var characterTableNames = map[CharacterTable]string{
	CharacterTableLatin:    "Latin (ISO 6937/2)",
	CharacterTableCyrillic: "Cyrillic (ISO 8859-5)",
	CharacterTableArabic:   "Arabic (ISO 8859-6)",
	CharacterTableGreek:    "Greek (ISO 8859-7)",
	CharacterTableHebrew:   "Hebrew (ISO 8859-8)",
}

// Known reports whether the table is one of the five defined by the
// standard. Text under an unknown table decodes through the Latin table.
func (t CharacterTable) Known() bool {
	_, ok := characterTableNames[t]
	return ok
}

func (t CharacterTable) String() string {
	if name, ok := characterTableNames[t]; ok {
		return name
	}
	return fmt.Sprintf("unknown (%q)", string(t))
}

// decodeChar maps the text bytes at the start of payload to a single rune
// and reports how many bytes it consumed: two for a Latin diacritic
// sequence, one otherwise. Bytes without a mapping decode to U+FFFD rather
// than failing; the caller never sees an error from character decoding.
func (t CharacterTable) decodeChar(payload []byte) (rune, int) {
	if cm, ok := characterTables[t]; ok {
		return cm.DecodeByte(payload[0]), 1
	}
	return decodeLatin(payload)
}

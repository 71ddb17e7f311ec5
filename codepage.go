package ebustl

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// CodePage identifies the IBM PC code page used to encode the text fields of
// the GSI block. It has no effect on subtitle text, which follows the
// character table instead.
type CodePage uint16

// Code pages named by EBU Tech 3264.
const (
	CodePageUnitedStates CodePage = 437
	CodePageMultilingual CodePage = 850
	CodePagePortugal     CodePage = 860
	CodePageCanadaFrench CodePage = 863
	CodePageNordic       CodePage = 865
)

// defaultCodePage is the table used to decode GSI text when the declared
// page has no known decoding table.
const defaultCodePage = CodePageMultilingual

var codePageTables = map[CodePage]*charmap.Charmap{
	CodePageUnitedStates: charmap.CodePage437,
	CodePageMultilingual: charmap.CodePage850,
	CodePagePortugal:     charmap.CodePage860,
	CodePageCanadaFrench: charmap.CodePage863,
	CodePageNordic:       charmap.CodePage865,
}

// Known reports whether the code page has a decoding table. Unknown numeric
// pages are preserved in the GSI and decoded with the multilingual table.
func (c CodePage) Known() bool {
	_, ok := codePageTables[c]
	return ok
}

// String formats the page the way it appears in the file, as three digits.
func (c CodePage) String() string {
	return fmt.Sprintf("%03d", uint16(c))
}

// decode converts one GSI text field to UTF-8.
func (c CodePage) decode(data []byte) string {
	cm, ok := codePageTables[c]
	if !ok {
		cm = codePageTables[defaultCodePage]
	}
	var b strings.Builder
	b.Grow(len(data))
	for _, by := range data {
		b.WriteRune(cm.DecodeByte(by))
	}
	return b.String()
}

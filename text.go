package ebustl

import "strings"

// FragmentKind discriminates the decoded units of a subtitle text field.
type FragmentKind uint8

const (
	FragmentText FragmentKind = iota
	FragmentRowBreak
	FragmentItalicsOn
	FragmentItalicsOff
	FragmentUnderlineOn
	FragmentUnderlineOff
	FragmentBoxingOn
	FragmentBoxingOff
	FragmentDoubleHeightOn
	FragmentDoubleHeightOff
	FragmentUnsupported
)

var fragmentKindNames = map[FragmentKind]string{
	FragmentText:            "text",
	FragmentRowBreak:        "row break",
	FragmentItalicsOn:       "italics on",
	FragmentItalicsOff:      "italics off",
	FragmentUnderlineOn:     "underline on",
	FragmentUnderlineOff:    "underline off",
	FragmentBoxingOn:        "boxing on",
	FragmentBoxingOff:       "boxing off",
	FragmentDoubleHeightOn:  "double height on",
	FragmentDoubleHeightOff: "double height off",
	FragmentUnsupported:     "unsupported control",
}

func (k FragmentKind) String() string {
	if name, ok := fragmentKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Fragment is one decoded unit of subtitle content: either a run of text or
// a typed marker for a control code. Text is set only for FragmentText;
// Code carries the raw byte only for FragmentUnsupported.
type Fragment struct {
	Kind FragmentKind
	Text string
	Code byte
}

// Control bytes of the TTI text field. The 0x80 range is used by open
// subtitles, the low teletext range expresses boxing and double height.
const (
	ctrlTeletextEndBox   = 0x0A
	ctrlTeletextStartBox = 0x0B
	ctrlTeletextNormal   = 0x0C
	ctrlTeletextDouble   = 0x0D
	ctrlItalicsOn        = 0x80
	ctrlItalicsOff       = 0x81
	ctrlUnderlineOn      = 0x82
	ctrlUnderlineOff     = 0x83
	ctrlBoxingOn         = 0x84
	ctrlBoxingOff        = 0x85
	ctrlRowBreak         = 0x8A
	ctrlFill             = 0x8F
)

// isTextByte reports whether b is subtitle text rather than a control code.
func isTextByte(b byte) bool {
	return (b >= 0x20 && b <= 0x7F) || b >= 0xA0
}

// decodeTextField scans one 112-byte text field into its fragment sequence.
// The scan is a single forward pass that stops at the first fill byte.
// Styling codes are tracked as toggles, so the doubled control bytes that
// teletext transmission uses for robustness yield one marker, and a code
// that would not change the current style yields none. Adjacent characters
// collapse into a single text fragment.
func decodeTextField(payload []byte, table CharacterTable) []Fragment {
	var (
		frags []Fragment
		text  strings.Builder

		italics, underline, boxing, doubleHeight bool
	)
	flush := func() {
		if text.Len() > 0 {
			frags = append(frags, Fragment{Kind: FragmentText, Text: text.String()})
			text.Reset()
		}
	}
	toggle := func(state *bool, on bool, kind FragmentKind) {
		if *state == on {
			return
		}
		*state = on
		flush()
		frags = append(frags, Fragment{Kind: kind})
	}

	for i := 0; i < len(payload); {
		b := payload[i]
		if isTextByte(b) {
			r, n := table.decodeChar(payload[i:])
			text.WriteRune(r)
			i += n
			continue
		}
		switch b {
		case ctrlFill:
			flush()
			return frags
		case ctrlRowBreak:
			flush()
			frags = append(frags, Fragment{Kind: FragmentRowBreak})
		case ctrlItalicsOn:
			toggle(&italics, true, FragmentItalicsOn)
		case ctrlItalicsOff:
			toggle(&italics, false, FragmentItalicsOff)
		case ctrlUnderlineOn:
			toggle(&underline, true, FragmentUnderlineOn)
		case ctrlUnderlineOff:
			toggle(&underline, false, FragmentUnderlineOff)
		case ctrlBoxingOn, ctrlTeletextStartBox:
			toggle(&boxing, true, FragmentBoxingOn)
		case ctrlBoxingOff, ctrlTeletextEndBox:
			toggle(&boxing, false, FragmentBoxingOff)
		case ctrlTeletextDouble:
			toggle(&doubleHeight, true, FragmentDoubleHeightOn)
		case ctrlTeletextNormal:
			toggle(&doubleHeight, false, FragmentDoubleHeightOff)
		default:
			flush()
			frags = append(frags, Fragment{Kind: FragmentUnsupported, Code: b})
		}
		i++
	}
	flush()
	return frags
}

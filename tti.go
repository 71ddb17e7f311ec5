package ebustl

import (
	"encoding/binary"
	"fmt"
)

const (
	ttiBlockSize = 128
	ttiTextSize  = 112
)

// CumulativeStatus marks a subtitle's role in a cumulative set, where lines
// accumulate on screen.
type CumulativeStatus byte

const (
	CumulativeNone         CumulativeStatus = 0
	CumulativeFirst        CumulativeStatus = 1
	CumulativeIntermediate CumulativeStatus = 2
	CumulativeLast         CumulativeStatus = 3
)

func (s CumulativeStatus) String() string {
	switch s {
	case CumulativeNone:
		return "none"
	case CumulativeFirst:
		return "first"
	case CumulativeIntermediate:
		return "intermediate"
	case CumulativeLast:
		return "last"
	}
	return fmt.Sprintf("unknown (0x%02X)", byte(s))
}

// Justification is the horizontal alignment code of a subtitle.
type Justification byte

const (
	JustificationUnchanged Justification = 0
	JustificationLeft      Justification = 1
	JustificationCentre    Justification = 2
	JustificationRight     Justification = 3
)

func (j Justification) String() string {
	switch j {
	case JustificationUnchanged:
		return "unchanged"
	case JustificationLeft:
		return "left"
	case JustificationCentre:
		return "centre"
	case JustificationRight:
		return "right"
	}
	return fmt.Sprintf("unknown (0x%02X)", byte(j))
}

// tti is one physical Text and Timing Information record, before extension
// blocks are merged into subtitles.
type tti struct {
	groupNumber    uint8
	subtitleNumber uint16
	extensionBlock uint8
	cumulative     CumulativeStatus
	timecodeIn     Timecode
	timecodeOut    Timecode
	verticalPos    uint8
	justification  Justification
	comment        bool
	fragments      []Fragment
}

// parseTTIBlocks reads consecutive 128-byte records until data runs out.
// rate is the frame rate from the GSI block, used to validate frame counts;
// table selects the text decoding.
func parseTTIBlocks(data []byte, table CharacterTable, rate int) ([]tti, error) {
	var blocks []tti
	for record := 0; len(data) > 0; record++ {
		if len(data) < ttiBlockSize {
			return nil, fmt.Errorf("%w: TTI record %d needs %d bytes, have %d",
				ErrTruncatedInput, record, ttiBlockSize, len(data))
		}
		b := tti{
			groupNumber:    data[0],
			subtitleNumber: binary.LittleEndian.Uint16(data[1:3]),
			extensionBlock: data[3],
			cumulative:     CumulativeStatus(data[4]),
			timecodeIn:     Timecode{data[5], data[6], data[7], data[8]},
			timecodeOut:    Timecode{data[9], data[10], data[11], data[12]},
			verticalPos:    data[13],
			justification:  Justification(data[14]),
			comment:        data[15] != 0,
		}
		if err := b.timecodeIn.check(rate); err != nil {
			return nil, fmt.Errorf("%w: TTI record %d: timecode in: %v", ErrInvalidTimecode, record, err)
		}
		if err := b.timecodeOut.check(rate); err != nil {
			return nil, fmt.Errorf("%w: TTI record %d: timecode out: %v", ErrInvalidTimecode, record, err)
		}
		b.fragments = decodeTextField(data[16:16+ttiTextSize], table)
		blocks = append(blocks, b)
		data = data[ttiBlockSize:]
	}
	return blocks, nil
}

package ebustl

import (
	"fmt"
	"strings"
)

// Extension block numbers with reserved meanings. A chain of blocks
// belonging to one subtitle counts up from zero and either just stops or
// ends on the last-block marker; 0xF0 through 0xFE are reserved for user
// data and stand alone.
const (
	ebnLastBlock   = 0xFF
	ebnReservedLow = 0xF0
)

// Subtitle is one assembled on-screen subtitle. Records chained through
// extension blocks have already been merged: timing spans the first block's
// in-time to the last block's out-time, and the fragment sequences are
// concatenated with a row break between blocks.
type Subtitle struct {
	Number      uint16
	GroupNumber uint8

	Start Timecode
	End   Timecode

	VerticalPosition uint8
	Justification    Justification
	Comment          bool
	Cumulative       CumulativeStatus

	Fragments []Fragment
}

// Text renders the fragment sequence as plain text. Row breaks become
// newlines; styling and unsupported markers are dropped.
func (s *Subtitle) Text() string {
	var b strings.Builder
	for _, f := range s.Fragments {
		switch f.Kind {
		case FragmentText:
			b.WriteString(f.Text)
		case FragmentRowBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func newSubtitle(b tti) *Subtitle {
	return &Subtitle{
		Number:           b.subtitleNumber,
		GroupNumber:      b.groupNumber,
		Start:            b.timecodeIn,
		End:              b.timecodeOut,
		VerticalPosition: b.verticalPos,
		Justification:    b.justification,
		Comment:          b.comment,
		Cumulative:       b.cumulative,
		Fragments:        b.fragments,
	}
}

// appendBlock merges a continuation record into the open subtitle. The
// out-time always follows the newest block. A row break separates the
// blocks' text unless the previous block already ended on one.
func appendBlock(s *Subtitle, b tti) {
	if n := len(s.Fragments); n > 0 && len(b.fragments) > 0 &&
		s.Fragments[n-1].Kind != FragmentRowBreak {
		s.Fragments = append(s.Fragments, Fragment{Kind: FragmentRowBreak})
	}
	s.Fragments = append(s.Fragments, b.fragments...)
	s.End = b.timecodeOut
}

// assemble folds the physical record sequence into subtitles, walking the
// extension block chains. Presentation metadata comes from the first block
// of a chain; later blocks contribute only text and the final out-time.
func assemble(blocks []tti, rate int) ([]Subtitle, error) {
	var (
		subs    []Subtitle
		cur     *Subtitle
		lastEBN uint8
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		if cur.End.frameCount(rate) < cur.Start.frameCount(rate) {
			return fmt.Errorf("%w: subtitle %d: out-time %s before in-time %s",
				ErrInvalidTimeRange, cur.Number, cur.End, cur.Start)
		}
		subs = append(subs, *cur)
		cur = nil
		return nil
	}

	for record, b := range blocks {
		ebn := b.extensionBlock

		if cur != nil && ebn != 0 {
			sameSubtitle := b.subtitleNumber == cur.Number && b.groupNumber == cur.GroupNumber
			switch {
			case ebn == ebnLastBlock && sameSubtitle:
				appendBlock(cur, b)
				if err := finish(); err != nil {
					return nil, err
				}
			case ebn == lastEBN+1 && ebn < ebnReservedLow && sameSubtitle:
				appendBlock(cur, b)
				lastEBN = ebn
			default:
				return nil, fmt.Errorf("%w: TTI record %d: extension block %d after %d (subtitle %d)",
					ErrBrokenExtensionSequence, record, ebn, lastEBN, b.subtitleNumber)
			}
			continue
		}

		// A zero extension block starts the next subtitle, closing any
		// open chain that simply stopped.
		if cur != nil {
			if err := finish(); err != nil {
				return nil, err
			}
		}
		switch {
		case ebn == 0:
			cur = newSubtitle(b)
			lastEBN = 0
		case ebn >= ebnReservedLow:
			// Last-block markers and reserved numbers may stand alone.
			cur = newSubtitle(b)
			if err := finish(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: TTI record %d: extension block %d without a first block",
				ErrBrokenExtensionSequence, record, ebn)
		}
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return subs, nil
}

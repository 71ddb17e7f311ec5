package ebustl

import "errors"

// Parse errors. Structural damage and impossible timing data abort the
// parse; everything else (unknown code pages with a numeric value, unknown
// character tables, unknown control codes) is preserved in the Document
// instead of failing. All errors returned by Parse wrap one of these
// sentinels and add the offending record or field, so callers can match
// with errors.Is.
var (
	// ErrTruncatedInput reports an input shorter than the GSI block or a
	// trailing TTI record shorter than 128 bytes.
	ErrTruncatedInput = errors.New("ebustl: truncated input")

	// ErrUnrecognizedCodePage reports a GSI code page field that is not a
	// number at all. Numeric pages without a decoding table do not error.
	ErrUnrecognizedCodePage = errors.New("ebustl: unrecognized code page")

	// ErrUnrecognizedFrameRate reports a GSI disk format field from which
	// no frame rate can be read.
	ErrUnrecognizedFrameRate = errors.New("ebustl: unrecognized frame rate")

	// ErrInvalidTimecode reports a TTI timecode with an out-of-range
	// component, such as a frame count at or above the file's frame rate.
	ErrInvalidTimecode = errors.New("ebustl: invalid timecode")

	// ErrInvalidTimeRange reports a subtitle whose out-time lies before
	// its in-time.
	ErrInvalidTimeRange = errors.New("ebustl: invalid time range")

	// ErrBrokenExtensionSequence reports extension block numbers that do
	// not form a valid chain, such as a continuation block without a first
	// block or a gap in the sequence.
	ErrBrokenExtensionSequence = errors.New("ebustl: broken extension block sequence")
)

package ebustl

import (
	"fmt"
	"os"
)

// Document is the decoded contents of one STL file: the file-wide GSI
// metadata and the assembled subtitles in file order.
type Document struct {
	GSI       GSI
	Subtitles []Subtitle
}

// Parse decodes a complete EBU-STL file from memory. The returned Document
// owns all of its data; data may be reused afterwards. A file with a valid
// GSI block and no TTI records parses to a Document with no subtitles.
func Parse(data []byte) (*Document, error) {
	gsi, err := parseGSI(data)
	if err != nil {
		return nil, err
	}
	blocks, err := parseTTIBlocks(data[gsiBlockSize:], gsi.CharacterTable, gsi.FrameRate)
	if err != nil {
		return nil, err
	}
	subs, err := assemble(blocks, gsi.FrameRate)
	if err != nil {
		return nil, err
	}
	return &Document{GSI: gsi, Subtitles: subs}, nil
}

// ParseFile reads the file at path and parses it.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read STL file: %w", err)
	}
	return Parse(data)
}

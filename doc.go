// Package ebustl decodes EBU Tech 3264 ("EBU-STL") binary subtitle files.
//
// An STL file is a fixed-layout container used in broadcast workflows: a
// single 1024-byte General Subtitle Information (GSI) block followed by any
// number of 128-byte Text and Timing Information (TTI) blocks. Parse reads
// the whole file from memory and returns a Document holding the decoded GSI
// metadata and the assembled subtitles:
//
//	doc, err := ebustl.ParseFile("subtitles.stl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, sub := range doc.Subtitles {
//	    fmt.Printf("%s --> %s\n%s\n\n", sub.Start, sub.End, sub.Text())
//	}
//
// Subtitle text is decoded through the character table declared in the file
// (ISO 6937/2 Latin by default, ISO 8859 variants for Cyrillic, Arabic,
// Greek and Hebrew), and embedded control codes become typed Fragment
// markers. Subtitles that span several TTI blocks through the extension
// block mechanism are merged into a single Subtitle.
//
// Parsing is a pure function over the input bytes: the returned Document
// shares no memory with the input, and concurrent calls need no
// coordination. Unknown code pages, character tables, control codes and
// language codes never abort a parse; they are preserved verbatim so that
// callers can decide how to treat unfamiliar files. Structural damage
// (truncated records, broken extension chains, out-of-range timecodes)
// surfaces as wrapped sentinel errors.
package ebustl

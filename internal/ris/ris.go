// Package ris reads bibliographic records in the RIS tagged format.
//
// A RIS document is a sequence of records. Each record is a block of lines
// of the form "TAG  - value" and is terminated by an "ER  -" line.
package ris

import "strings"

const (
	// EndOfRecord separates one record from the next.
	EndOfRecord = "\nER  -"

	// Separator divides a tag from its value on a field line.
	Separator = "  - "
)

// Common tags.
const (
	TagType     = "TY"
	TagAuthor   = "AU"
	TagTitle    = "TI"
	TagJournal  = "JO"
	TagTitle2   = "T2"
	TagVolume   = "VL"
	TagIssue    = "IS"
	TagStart    = "SP"
	TagYear     = "PY"
	TagDOI      = "DO"
	TagURL      = "UR"
	TagISSN     = "SN"
	TagAbstract = "AB"
)

// Split divides a document into record blocks at each end-of-record marker.
// The marker itself is dropped. The segment after the last marker is kept
// even when blank; a document without markers yields a single block.
func Split(doc string) []string {
	return strings.Split(doc, EndOfRecord)
}

// Records returns the non-blank record blocks of doc in source order.
func Records(doc string) []string {
	var blocks []string
	for _, block := range Split(doc) {
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks = append(blocks, block)
	}
	return blocks
}

// Parse extracts the tagged fields of one record block. Lines without a
// separator are ignored.
func Parse(block string) Record {
	rec := Record{fields: make(map[string][]string)}
	for _, line := range strings.Split(block, "\n") {
		tag, value, ok := strings.Cut(line, Separator)
		if !ok {
			continue
		}
		tag = strings.TrimSpace(tag)
		rec.fields[tag] = append(rec.fields[tag], strings.TrimSpace(value))
	}
	return rec
}

// Package export provides functions to export RIS records to BibTeX.
package export

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matsen/ris2bib/internal/latex"
	"github.com/matsen/ris2bib/internal/ris"
)

const (
	// labelWidth is the column width field labels are padded to.
	labelWidth = 13

	// DefaultRISType is used when a record has no TY tag.
	DefaultRISType = "MISC"
	// UnknownAuthor replaces the surname in keys of records without authors.
	UnknownAuthor = "unknown"
	// UnknownYear replaces the year of records without PY.
	UnknownYear = "????"
)

// field maps a BibTeX field to the RIS tag it is read from.
type field struct {
	name string
	tag  string
}

// Fields other than author and year, in output order around the year. Each
// takes the first value of its tag.
var (
	fieldsBeforeYear = []field{
		{"title", ris.TagTitle},
		{"journal", ris.TagJournal},
		{"booktitle", ris.TagTitle2},
		{"volume", ris.TagVolume},
		{"number", ris.TagIssue},
		{"pages", ris.TagStart},
	}
	fieldsAfterYear = []field{
		{"doi", ris.TagDOI},
		{"url", ris.TagURL},
		{"issn", ris.TagISSN},
		{"abstract", ris.TagAbstract},
	}
)

// ToBibTeX converts a RIS record to a BibTeX entry. Every field is written,
// empty when the record lacks it. The entry has no trailing newline.
func ToBibTeX(rec ris.Record) string {
	lines := make([]string, 0, 2+len(fieldsBeforeYear)+len(fieldsAfterYear))

	lines = append(lines, formatField("author", latex.Escape(strings.Join(rec.Authors(), " and "))))
	for _, f := range fieldsBeforeYear {
		lines = append(lines, formatField(f.name, latex.Escape(rec.Value(f.tag))))
	}

	// Year is copied verbatim
	lines = append(lines, formatField("year", year(rec)))

	for _, f := range fieldsAfterYear {
		lines = append(lines, formatField(f.name, latex.Escape(rec.Value(f.tag))))
	}

	return fmt.Sprintf("@%s{%s,\n%s\n    }", recordType(rec), CiteKey(rec), strings.Join(lines, ",\n"))
}

// ToBibTeXList converts multiple records, terminating each entry with a newline.
func ToBibTeXList(recs []ris.Record) string {
	var b strings.Builder
	for _, rec := range recs {
		b.WriteString(ToBibTeX(rec))
		b.WriteString("\n")
	}
	return b.String()
}

// CiteKey returns the citation key of a record: the first author's surname
// followed by the year. The surname is the part of the first AU value before
// its first comma, and is empty when that value has no comma. Keys are not
// guaranteed to be unique across records.
func CiteKey(rec ris.Record) string {
	surname := UnknownAuthor
	if first, ok := rec.First(ris.TagAuthor); ok {
		surname = ""
		if before, _, found := strings.Cut(first, ","); found {
			surname = before
		}
	}
	return surname + year(rec)
}

// EntryType maps a RIS type code to a BibTeX entry type. Matching is
// case-insensitive; unknown codes map to misc.
func EntryType(risType string) string {
	switch strings.ToUpper(risType) {
	case "JOUR":
		return "article"
	case "BOOK":
		return "book"
	case "CHAP":
		return "incollection"
	case "CONF", "CPAPER":
		return "inproceedings"
	case "THES":
		return "phdthesis"
	case "RPRT":
		return "techreport"
	default:
		return "misc"
	}
}

func recordType(rec ris.Record) string {
	ty, ok := rec.First(ris.TagType)
	if !ok {
		ty = DefaultRISType
	}
	return EntryType(ty)
}

func year(rec ris.Record) string {
	if y, ok := rec.First(ris.TagYear); ok {
		return y
	}
	return UnknownYear
}

func formatField(name, value string) string {
	return fmt.Sprintf("    %s= {%s}", runewidth.FillRight(name, labelWidth), value)
}

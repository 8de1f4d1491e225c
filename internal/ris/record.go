package ris

// Record holds the fields of one RIS record. Values of a repeated tag keep
// the order in which they appeared.
//
// Only authors are read as a list. Every other field is single-valued and
// resolves to its first occurrence.
type Record struct {
	fields map[string][]string
}

// First returns the first value of tag.
func (r Record) First(tag string) (string, bool) {
	values := r.fields[tag]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Value returns the first value of tag, or "" if it is absent.
func (r Record) Value(tag string) string {
	v, _ := r.First(tag)
	return v
}

// Authors returns all AU values in source order.
func (r Record) Authors() []string {
	return r.fields[TagAuthor]
}

// Len returns the number of distinct tags in the record.
func (r Record) Len() int {
	return len(r.fields)
}

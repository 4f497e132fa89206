package header

import "strings"

// A Field is a single header line split into its
// name and value, both trimmed of surrounding whitespace.
type Field struct {
	Name  string
	Value string
}

// List holds header fields in the order they arrived.
// Duplicate names are kept.
type List struct {
	fields []Field
}

func NewList() *List {
	return &List{}
}

// Add appends a field to the end of the list.
func (hl *List) Add(name, value string) {
	hl.fields = append(hl.fields, Field{name, value})
}

// Get returns the value of the first field whose name
// matches `name` case-insensitively.
func (hl *List) Get(name string) (string, bool) {
	for _, f := range hl.fields {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

func (hl *List) Values(name string) []string {
	var ret []string
	for _, f := range hl.fields {
		if strings.EqualFold(f.Name, name) {
			ret = append(ret, f.Value)
		}
	}
	return ret
}

func (hl *List) Len() int {
	return len(hl.fields)
}

// Fields returns a copy of the fields in insertion order.
func (hl *List) Fields() []Field {
	ret := make([]Field, len(hl.fields))
	copy(ret, hl.fields)
	return ret
}

func (hl *List) String() string {
	var sb strings.Builder
	for _, f := range hl.fields {
		sb.WriteString(f.Name)
		sb.WriteString(": ")
		sb.WriteString(f.Value)
		sb.WriteString("\r\n")
	}
	return sb.String()
}

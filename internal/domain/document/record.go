package document

import (
	"fmt"
	"sort"

	"github.com/erp/docgen/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ValueKind discriminates the variants of a Record field value
type ValueKind int

const (
	KindString ValueKind = iota
	KindNumber
	KindBool
	KindList
)

// Value is a tagged union of the types a Record field may hold:
// string, number, boolean, or a list of child Records.
type Value struct {
	kind ValueKind
	str  string
	num  decimal.Decimal
	b    bool
	list []Record
}

// StringValue creates a string Value
func StringValue(s string) Value {
	return Value{kind: KindString, str: s}
}

// NumberValue creates a numeric Value. The engine never rounds or
// formats numbers; String() emits the exact decimal representation.
func NumberValue(d decimal.Decimal) Value {
	return Value{kind: KindNumber, num: d}
}

// BoolValue creates a boolean Value
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// ListValue creates a list Value holding child Records
func ListValue(children []Record) Value {
	return Value{kind: KindList, list: children}
}

// Kind returns the variant of the value
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsList returns true for list-valued fields
func (v Value) IsList() bool {
	return v.kind == KindList
}

// List returns the child Records of a list value (nil for scalars)
func (v Value) List() []Record {
	return v.list
}

// String returns the interpolation form of a scalar value.
// List values have no scalar form and yield the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// Truthy reports whether the value enables a conditional section:
// non-empty string, non-zero number, true, or non-empty list.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.str != ""
	case KindNumber:
		return !v.num.IsZero()
	case KindBool:
		return v.b
	default:
		return len(v.list) > 0
	}
}

// Record is the flat data shape consumed by the template engine: named
// scalar fields plus named lists of child Records whose own fields are
// visible only inside their iteration block.
type Record struct {
	fields map[string]Value
}

// NewRecord creates an empty Record
func NewRecord() Record {
	return Record{fields: make(map[string]Value)}
}

// SetString sets a string field
func (r Record) SetString(name, value string) {
	r.fields[name] = StringValue(value)
}

// SetNumber sets a numeric field
func (r Record) SetNumber(name string, value decimal.Decimal) {
	r.fields[name] = NumberValue(value)
}

// SetBool sets a boolean field
func (r Record) SetBool(name string, value bool) {
	r.fields[name] = BoolValue(value)
}

// SetList sets a list field
func (r Record) SetList(name string, children []Record) {
	r.fields[name] = ListValue(children)
}

// Get returns the value of a field and whether it is present
func (r Record) Get(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// Has reports whether the field is present
func (r Record) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// FieldNames returns the field names in sorted order
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r.fields))
	for name := range r.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the scope-collision invariant: a top-level scalar
// field name must never be reused inside an iteration block, since the
// engine resolves iteration-local fields only inside their own block.
func (r Record) Validate() error {
	for listName, v := range r.fields {
		if !v.IsList() {
			continue
		}
		for _, child := range v.list {
			for childField, cv := range child.fields {
				if cv.IsList() {
					if err := child.Validate(); err != nil {
						return err
					}
					continue
				}
				if top, ok := r.fields[childField]; ok && !top.IsList() {
					return shared.NewDomainError("FIELD_COLLISION",
						fmt.Sprintf("field %q of list %q collides with a top-level field", childField, listName))
				}
			}
		}
	}
	return nil
}

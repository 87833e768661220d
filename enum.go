// Package enum implements declarative enumeration types backed by a
// fixed-width binary representation. A Type maps names to integer
// values and back, and values of a Type encode to, and decode from,
// exactly the bytes that the underlying integer representation would
// occupy in the host's native layout, letting them stand in for raw
// integers inside larger fixed-layout binary records.
package enum

import (
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// reservedPrefix marks names that are never treated as members.
// Lookups for names starting with it always report absence.
const reservedPrefix = "_"

// A Member is a single entry in a type declaration: a name and,
// optionally, an explicit value. Members without an explicit value
// are numbered sequentially from the previous member's value.
type Member struct {
	Name  string
	Value int64

	// Explicit marks Value as declared rather than assigned by the
	// running counter.
	Explicit bool
}

// M declares a member whose value follows on from the previous
// member's.
func M(name string) Member {
	return Member{Name: name}
}

// MV declares a member with an explicit value. The value also resets
// the running counter, so a bare member following MV("B", 2) gets the
// value 3.
func MV(name string, value int64) Member {
	return Member{Name: name, Value: value, Explicit: true}
}

// A Def declares an enumeration type.
type Def struct {
	// Name is the name of the type, used in diagnostics.
	Name string

	// Storage is the integer representation backing the type. The
	// zero value is Long, the platform-native signed integer.
	Storage Storage

	// Start is the value assigned to the first member if it doesn't
	// declare one explicitly.
	Start int64

	// Members is the ordered list of declarations.
	Members []Member
}

// Type is an enumeration type: an immutable set of named integer
// values together with the storage representation used to encode
// them. It is built once by New and safe for concurrent readers
// afterwards.
type Type struct {
	name    string
	storage Storage

	// byName is unique per name; when two members declare the same
	// name the last declaration wins. byValue keeps every name for a
	// value, in declaration order, so aliases survive.
	byName  map[string]int64
	byValue map[int64][]string
	values  []int64
}

// New builds a Type from def. Members are numbered by walking the
// declaration list: a bare member gets the previous value plus one,
// starting from def.Start, and an explicit value resets the counter.
// Duplicate values are kept as aliases; duplicate names overwrite.
func New(def Def) *Type {
	t := Type{
		name:    def.Name,
		storage: def.Storage,
		byName:  make(map[string]int64, len(def.Members)),
		byValue: make(map[int64][]string),
	}

	cur := def.Start
	for _, m := range def.Members {
		if m.Explicit {
			cur = m.Value
		}
		t.byName[m.Name] = cur
		t.byValue[cur] = append(t.byValue[cur], m.Name)
		cur++
	}

	t.values = maps.Keys(t.byValue)
	slices.Sort(t.values)

	return &t
}

// Name returns the declared name of the type.
func (t *Type) Name() string {
	return t.name
}

// Storage returns the integer representation backing the type.
func (t *Type) Storage() Storage {
	return t.storage
}

// Size returns the number of bytes a value of t occupies when
// encoded.
func (t *Type) Size() int {
	return t.storage.Size()
}

// ValueOf returns the value declared for name. It reports false for
// names that were never declared and always for names starting with
// an underscore, which are reserved.
func (t *Type) ValueOf(name string) (int64, bool) {
	if strings.HasPrefix(name, reservedPrefix) {
		return 0, false
	}
	v, ok := t.byName[name]
	return v, ok
}

// NameOf returns the canonical name for value, which is the
// first-declared of its aliases. It reports false if value was never
// declared.
func (t *Type) NameOf(value int64) (string, bool) {
	names := t.byValue[value]
	if len(names) == 0 {
		return "", false
	}
	return names[0], true
}

// NamesOf returns every name declared for value in declaration order,
// or nil if value was never declared.
func (t *Type) NamesOf(value int64) []string {
	return slices.Clone(t.byValue[value])
}

// Contains reports whether value was declared as a member of t.
func (t *Type) Contains(value int64) bool {
	return len(t.byValue[value]) > 0
}

// Values returns a copy of the full name-to-value table.
func (t *Type) Values() map[string]int64 {
	return maps.Clone(t.byName)
}

// Members iterates over the (name, value) pairs of t in ascending
// value order. Aliases of a value are yielded consecutively in
// declaration order. The sequence is finite and can be ranged over
// any number of times.
func (t *Type) Members() iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		for _, v := range t.values {
			for _, name := range t.byValue[v] {
				if !yield(name, v) {
					return
				}
			}
		}
	}
}

func (t *Type) String() string {
	return fmt.Sprintf("<Enumeration %v>", t.name)
}

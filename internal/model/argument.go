// Package model defines the value types shared by the argumentation engine,
// its adapters and the CLI.
package model

import (
	"slices"
	"strconv"
	"strings"
)

// Argument is an opaque argument identifier.
type Argument string

// Attack is a directed attack from one argument onto another.
// Self-attacks (From == To) are permitted.
type Attack struct {
	From Argument `yaml:"from"`
	To   Argument `yaml:"to"`
}

// String renders the attack as "a->b".
func (a Attack) String() string {
	return string(a.From) + "->" + string(a.To)
}

// ArgumentSet is an immutable set of arguments. The zero value is the empty
// set. Every method that "changes" a set returns a new value and leaves the
// receiver untouched, so sets can be shared freely between goroutines.
type ArgumentSet struct {
	members map[Argument]struct{}
}

// NewArgumentSet builds a set from the given arguments; duplicates collapse.
func NewArgumentSet(args ...Argument) ArgumentSet {
	if len(args) == 0 {
		return ArgumentSet{}
	}

	members := make(map[Argument]struct{}, len(args))
	for _, arg := range args {
		members[arg] = struct{}{}
	}

	return ArgumentSet{members: members}
}

// Contains reports whether a is a member of the set.
func (s ArgumentSet) Contains(a Argument) bool {
	_, ok := s.members[a]
	return ok
}

// Len returns the number of members.
func (s ArgumentSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s ArgumentSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Members returns the members in ascending order.
func (s ArgumentSet) Members() []Argument {
	out := make([]Argument, 0, len(s.members))
	for a := range s.members {
		out = append(out, a)
	}

	slices.Sort(out)

	return out
}

// With returns a copy of the set that also contains a.
func (s ArgumentSet) With(a Argument) ArgumentSet {
	members := make(map[Argument]struct{}, len(s.members)+1)
	for m := range s.members {
		members[m] = struct{}{}
	}

	members[a] = struct{}{}

	return ArgumentSet{members: members}
}

// Union returns s ∪ other.
func (s ArgumentSet) Union(other ArgumentSet) ArgumentSet {
	if other.IsEmpty() {
		return s
	}

	if s.IsEmpty() {
		return other
	}

	members := make(map[Argument]struct{}, len(s.members)+len(other.members))
	for m := range s.members {
		members[m] = struct{}{}
	}

	for m := range other.members {
		members[m] = struct{}{}
	}

	return ArgumentSet{members: members}
}

// Intersect returns s ∩ other.
func (s ArgumentSet) Intersect(other ArgumentSet) ArgumentSet {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}

	members := make(map[Argument]struct{})
	for m := range small.members {
		if large.Contains(m) {
			members[m] = struct{}{}
		}
	}

	return ArgumentSet{members: members}
}

// Difference returns s \ other.
func (s ArgumentSet) Difference(other ArgumentSet) ArgumentSet {
	members := make(map[Argument]struct{}, len(s.members))
	for m := range s.members {
		if !other.Contains(m) {
			members[m] = struct{}{}
		}
	}

	return ArgumentSet{members: members}
}

// SubsetOf reports whether s ⊆ other.
func (s ArgumentSet) SubsetOf(other ArgumentSet) bool {
	if s.Len() > other.Len() {
		return false
	}

	for m := range s.members {
		if !other.Contains(m) {
			return false
		}
	}

	return true
}

// ProperSubsetOf reports whether s ⊊ other.
func (s ArgumentSet) ProperSubsetOf(other ArgumentSet) bool {
	return s.Len() < other.Len() && s.SubsetOf(other)
}

// Equal reports set equality.
func (s ArgumentSet) Equal(other ArgumentSet) bool {
	return s.Len() == other.Len() && s.SubsetOf(other)
}

// Key returns a canonical identity for the set: two sets have the same key
// iff they are equal.
func (s ArgumentSet) Key() string {
	var b strings.Builder

	for _, m := range s.Members() {
		b.WriteString(strconv.Itoa(len(m)))
		b.WriteByte(':')
		b.WriteString(string(m))
	}

	return b.String()
}

// String renders the set as "{a, b, c}".
func (s ArgumentSet) String() string {
	members := s.Members()

	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = string(m)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}

// MarshalYAML encodes the set as a sorted sequence.
func (s ArgumentSet) MarshalYAML() (interface{}, error) {
	return s.Members(), nil
}

// UnmarshalYAML decodes a sequence of arguments.
func (s *ArgumentSet) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var members []Argument
	if err := unmarshal(&members); err != nil {
		return err
	}

	*s = NewArgumentSet(members...)

	return nil
}

// IntersectAll returns the intersection of all sets. The boolean is false
// when sets is empty, since the intersection of nothing is undefined here.
func IntersectAll(sets []ArgumentSet) (ArgumentSet, bool) {
	if len(sets) == 0 {
		return ArgumentSet{}, false
	}

	out := sets[0]
	for _, s := range sets[1:] {
		out = out.Intersect(s)
	}

	return out, true
}

// FormatSets renders a collection of sets in canonical order, so two
// collections that are equal as sets of sets render identically. Sets are
// ordered by size, then by rendering; equal sets appear once.
func FormatSets(sets []ArgumentSet) []string {
	sorted := slices.Clone(sets)
	slices.SortFunc(sorted, compareSets)

	out := make([]string, 0, len(sorted))

	for i, s := range sorted {
		if i > 0 && s.Equal(sorted[i-1]) {
			continue
		}

		out = append(out, s.String())
	}

	return out
}

func compareSets(a, b ArgumentSet) int {
	if a.Len() != b.Len() {
		return a.Len() - b.Len()
	}

	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}

	return strings.Compare(a.Key(), b.Key())
}

package model

// Path represents a file system path.
type Path string

// FrameworkSpec is the declarative description of an argumentation framework
// as it appears in framework files and in the worked-example catalog.
//
// Attacks are [from, to] pairs. Arguments that only appear in attacks are
// implied, so an edge list alone is a valid spec.
type FrameworkSpec struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Source      string       `yaml:"source,omitempty"`
	Arguments   []Argument   `yaml:"arguments,omitempty"`
	Attacks     [][]Argument `yaml:"attacks"`
}

// CatalogEntry is a worked example: a framework together with the answers
// published for it.
type CatalogEntry struct {
	FrameworkSpec `yaml:",inline"`

	// Expected maps a semantics to its published extensions. Single-valued
	// semantics (grounded, ideal, eager) hold exactly one set.
	Expected map[Semantics][][]Argument `yaml:"expected,omitempty"`
}

// ExpectedSets converts the published answer for sem into argument sets.
func (e CatalogEntry) ExpectedSets(sem Semantics) ([]ArgumentSet, bool) {
	raw, ok := e.Expected[sem]
	if !ok {
		return nil, false
	}

	sets := make([]ArgumentSet, len(raw))
	for i, members := range raw {
		sets[i] = NewArgumentSet(members...)
	}

	return sets, true
}

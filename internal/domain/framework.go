// Package domain contains the argumentation engine: the framework store, the
// set operators built on it, and the semantics derived from them, plus the
// workflows the CLI drives.
//
// # Ownership Model
//
// A Framework is immutable once constructed. Every query returns fresh
// values or immutable sets, so a Framework can be read from many goroutines
// without locking.
//
// # Cost
//
// Semantics that classify subsets enumerate the power set of the arguments,
// which is exponential. The engine targets frameworks of at most a few dozen
// arguments, and in practice about a dozen.
package domain

import (
	"fmt"
	"slices"
	"strings"

	m "argue.dev/pkg/argue/internal/model"
)

// Framework is a finite abstract argumentation framework: a directed graph
// whose nodes are arguments and whose edges are attacks.
type Framework struct {
	arguments    m.ArgumentSet
	order        []m.Argument
	attacks      []m.Attack
	successors   map[m.Argument]m.ArgumentSet
	predecessors map[m.Argument]m.ArgumentSet
}

// NewFramework builds a framework from explicit argument and attack
// collections. Every attack endpoint must be one of the arguments. Duplicate
// arguments and attacks collapse.
func NewFramework(arguments []m.Argument, attacks []m.Attack) (*Framework, error) {
	for _, arg := range arguments {
		if arg == "" {
			return nil, ErrEmptyArgument
		}
	}

	argSet := m.NewArgumentSet(arguments...)

	seen := make(map[m.Attack]struct{}, len(attacks))
	unique := make([]m.Attack, 0, len(attacks))
	out := make(map[m.Argument][]m.Argument, argSet.Len())
	in := make(map[m.Argument][]m.Argument, argSet.Len())

	for _, attack := range attacks {
		if !argSet.Contains(attack.From) {
			return nil, fmt.Errorf("%w: attacker %q of %s", ErrUnknownArgument, attack.From, attack)
		}

		if !argSet.Contains(attack.To) {
			return nil, fmt.Errorf("%w: target %q of %s", ErrUnknownArgument, attack.To, attack)
		}

		if _, dup := seen[attack]; dup {
			continue
		}

		seen[attack] = struct{}{}
		unique = append(unique, attack)
		out[attack.From] = append(out[attack.From], attack.To)
		in[attack.To] = append(in[attack.To], attack.From)
	}

	slices.SortFunc(unique, compareAttacks)

	fw := &Framework{
		arguments:    argSet,
		order:        argSet.Members(),
		attacks:      unique,
		successors:   make(map[m.Argument]m.ArgumentSet, len(out)),
		predecessors: make(map[m.Argument]m.ArgumentSet, len(in)),
	}

	for arg, targets := range out {
		fw.successors[arg] = m.NewArgumentSet(targets...)
	}

	for arg, attackers := range in {
		fw.predecessors[arg] = m.NewArgumentSet(attackers...)
	}

	return fw, nil
}

// FromAttacks builds a framework from an edge list; the arguments are exactly
// the attack endpoints.
func FromAttacks(attacks ...m.Attack) (*Framework, error) {
	arguments := make([]m.Argument, 0, 2*len(attacks))
	for _, attack := range attacks {
		arguments = append(arguments, attack.From, attack.To)
	}

	return NewFramework(arguments, attacks)
}

// FromSpec builds a framework from its declarative description. Arguments
// mentioned only by attacks are added implicitly.
func FromSpec(spec m.FrameworkSpec) (*Framework, error) {
	attacks := make([]m.Attack, 0, len(spec.Attacks))
	arguments := slices.Clone(spec.Arguments)

	for i, pair := range spec.Attacks {
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: attack #%d of %q has %d elements, want 2", ErrMalformedAttack, i, spec.Name, len(pair))
		}

		attacks = append(attacks, m.Attack{From: pair[0], To: pair[1]})
		arguments = append(arguments, pair[0], pair[1])
	}

	fw, err := NewFramework(arguments, attacks)
	if err != nil {
		return nil, fmt.Errorf("framework %q: %w", spec.Name, err)
	}

	return fw, nil
}

// Spec renders the framework back into its declarative description.
func (fw *Framework) Spec(name string) m.FrameworkSpec {
	attacks := make([][]m.Argument, len(fw.attacks))
	for i, attack := range fw.attacks {
		attacks[i] = []m.Argument{attack.From, attack.To}
	}

	return m.FrameworkSpec{
		Name:      name,
		Arguments: fw.ArgumentList(),
		Attacks:   attacks,
	}
}

// Arguments returns the argument set.
func (fw *Framework) Arguments() m.ArgumentSet {
	return fw.arguments
}

// ArgumentList returns the arguments in ascending order.
func (fw *Framework) ArgumentList() []m.Argument {
	return slices.Clone(fw.order)
}

// Attacks returns the attack relation, sorted by attacker then target.
func (fw *Framework) Attacks() []m.Attack {
	return slices.Clone(fw.attacks)
}

// NumArguments returns the number of arguments.
func (fw *Framework) NumArguments() int {
	return len(fw.order)
}

// NumAttacks returns the number of attacks.
func (fw *Framework) NumAttacks() int {
	return len(fw.attacks)
}

// Empty reports whether the framework has no arguments.
func (fw *Framework) Empty() bool {
	return fw.NumArguments() == 0
}

// Trivial reports whether the framework has no attacks.
func (fw *Framework) Trivial() bool {
	return fw.NumAttacks() == 0
}

// Successors returns the arguments that a attacks directly.
func (fw *Framework) Successors(a m.Argument) (m.ArgumentSet, error) {
	if err := fw.validateArgument(a); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.successors[a], nil
}

// Predecessors returns the arguments that attack a directly.
func (fw *Framework) Predecessors(a m.Argument) (m.ArgumentSet, error) {
	if err := fw.validateArgument(a); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.predecessors[a], nil
}

// Subframework returns the framework induced on subset: its arguments are
// subset and its attacks are those with both endpoints in subset.
func (fw *Framework) Subframework(subset m.ArgumentSet) (*Framework, error) {
	if err := fw.validateSet(subset); err != nil {
		return nil, err
	}

	attacks := make([]m.Attack, 0, len(fw.attacks))
	for _, attack := range fw.attacks {
		if subset.Contains(attack.From) && subset.Contains(attack.To) {
			attacks = append(attacks, attack)
		}
	}

	return NewFramework(subset.Members(), attacks)
}

// String renders the framework as "<args> | <attacks>".
func (fw *Framework) String() string {
	attacks := make([]string, len(fw.attacks))
	for i, attack := range fw.attacks {
		attacks[i] = attack.String()
	}

	return fw.arguments.String() + " | " + strings.Join(attacks, " ")
}

func (fw *Framework) validateArgument(a m.Argument) error {
	if !fw.arguments.Contains(a) {
		return fmt.Errorf("%w: %q", ErrUnknownArgument, a)
	}

	return nil
}

func (fw *Framework) validateSet(subset m.ArgumentSet) error {
	if !subset.SubsetOf(fw.arguments) {
		return fmt.Errorf("%w: %s not in framework", ErrInvalidArgumentSet, subset.Difference(fw.arguments))
	}

	return nil
}

func compareAttacks(a, b m.Attack) int {
	if c := strings.Compare(string(a.From), string(b.From)); c != 0 {
		return c
	}

	return strings.Compare(string(a.To), string(b.To))
}

package domain

import (
	m "argue.dev/pkg/argue/internal/model"
)

// Forward returns S⁺, the arguments attacked by some member of subset.
func (fw *Framework) Forward(subset m.ArgumentSet) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.forward(subset), nil
}

// Backward returns S⁻, the arguments attacking some member of subset.
func (fw *Framework) Backward(subset m.ArgumentSet) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.backward(subset), nil
}

// AttacksArgument reports whether subset attacks a.
func (fw *Framework) AttacksArgument(subset m.ArgumentSet, a m.Argument) (bool, error) {
	if err := fw.validateSet(subset); err != nil {
		return false, err
	}

	if err := fw.validateArgument(a); err != nil {
		return false, err
	}

	return fw.forward(subset).Contains(a), nil
}

// AttacksSet reports whether some member of from attacks some member of to.
func (fw *Framework) AttacksSet(from, to m.ArgumentSet) (bool, error) {
	if err := fw.validateSet(from); err != nil {
		return false, err
	}

	if err := fw.validateSet(to); err != nil {
		return false, err
	}

	return !fw.forward(from).Intersect(to).IsEmpty(), nil
}

// Unattacked reports whether nothing attacks a.
func (fw *Framework) Unattacked(a m.Argument) (bool, error) {
	if err := fw.validateArgument(a); err != nil {
		return false, err
	}

	return fw.predecessors[a].IsEmpty(), nil
}

// UnattackedSet returns every argument that nothing attacks.
func (fw *Framework) UnattackedSet() m.ArgumentSet {
	var out []m.Argument

	for _, a := range fw.order {
		if fw.predecessors[a].IsEmpty() {
			out = append(out, a)
		}
	}

	return m.NewArgumentSet(out...)
}

// SelfAttacking reports whether a attacks itself.
func (fw *Framework) SelfAttacking(a m.Argument) (bool, error) {
	if err := fw.validateArgument(a); err != nil {
		return false, err
	}

	return fw.successors[a].Contains(a), nil
}

// SelfAttackingSet returns every self-attacking argument.
func (fw *Framework) SelfAttackingSet() m.ArgumentSet {
	var out []m.Argument

	for _, a := range fw.order {
		if fw.successors[a].Contains(a) {
			out = append(out, a)
		}
	}

	return m.NewArgumentSet(out...)
}

// Neutrality returns n(S), the arguments that subset does not attack.
func (fw *Framework) Neutrality(subset m.ArgumentSet) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.neutrality(subset), nil
}

// ConflictFree reports whether no member of subset attacks a member of
// subset, self-attacks included.
func (fw *Framework) ConflictFree(subset m.ArgumentSet) (bool, error) {
	if err := fw.validateSet(subset); err != nil {
		return false, err
	}

	return fw.conflictFree(subset), nil
}

// Defense returns d(S): the arguments all of whose attackers are attacked by
// subset. The function is monotone in subset.
func (fw *Framework) Defense(subset m.ArgumentSet) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.defense(subset), nil
}

// Range returns S ∪ S⁺.
func (fw *Framework) Range(subset m.ArgumentSet) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.rangeOf(subset), nil
}

// GradedNeutrality returns the arguments that fewer than threshold members
// of subset attack. With threshold 1 it coincides with Neutrality.
func (fw *Framework) GradedNeutrality(subset m.ArgumentSet, threshold int) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	return fw.gradedNeutrality(subset, threshold), nil
}

// GradedDefense returns the arguments that have fewer than attackThreshold
// attackers left undefeated, where an attacker counts as defeated once at
// least defendThreshold members of subset attack it. With both thresholds at
// 1 it coincides with Defense.
func (fw *Framework) GradedDefense(subset m.ArgumentSet, attackThreshold, defendThreshold int) (m.ArgumentSet, error) {
	if err := fw.validateSet(subset); err != nil {
		return m.ArgumentSet{}, err
	}

	undefeated := fw.gradedNeutrality(subset, defendThreshold)

	return fw.gradedNeutrality(undefeated, attackThreshold), nil
}

func (fw *Framework) forward(subset m.ArgumentSet) m.ArgumentSet {
	var out m.ArgumentSet
	for _, a := range subset.Members() {
		out = out.Union(fw.successors[a])
	}

	return out
}

func (fw *Framework) backward(subset m.ArgumentSet) m.ArgumentSet {
	var out m.ArgumentSet
	for _, a := range subset.Members() {
		out = out.Union(fw.predecessors[a])
	}

	return out
}

func (fw *Framework) neutrality(subset m.ArgumentSet) m.ArgumentSet {
	return fw.arguments.Difference(fw.forward(subset))
}

func (fw *Framework) conflictFree(subset m.ArgumentSet) bool {
	return fw.forward(subset).Intersect(subset).IsEmpty()
}

func (fw *Framework) defense(subset m.ArgumentSet) m.ArgumentSet {
	attacked := fw.forward(subset)

	var out []m.Argument

	for _, a := range fw.order {
		if fw.predecessors[a].SubsetOf(attacked) {
			out = append(out, a)
		}
	}

	return m.NewArgumentSet(out...)
}

func (fw *Framework) rangeOf(subset m.ArgumentSet) m.ArgumentSet {
	return subset.Union(fw.forward(subset))
}

func (fw *Framework) gradedNeutrality(subset m.ArgumentSet, threshold int) m.ArgumentSet {
	var out []m.Argument

	for _, a := range fw.order {
		if fw.predecessors[a].Intersect(subset).Len() < threshold {
			out = append(out, a)
		}
	}

	return m.NewArgumentSet(out...)
}

package domain

import "errors"

// Sentinel errors for framework construction and engine queries.
var (
	// ErrInvalidArgumentSet is returned when a subset parameter is not a
	// subset of the framework's arguments.
	ErrInvalidArgumentSet = errors.New("invalid argument set")

	// ErrUnknownArgument is returned when a single-argument parameter, or an
	// attack endpoint during construction, is not one of the framework's
	// arguments.
	ErrUnknownArgument = errors.New("unknown argument")

	// ErrDegenerateTheorem is returned when an operation that theory says has
	// exactly one result (grounded, ideal, eager, least fixed point) computes
	// zero or several candidates. It signals a malformed framework upstream,
	// and no candidate is picked arbitrarily.
	ErrDegenerateTheorem = errors.New("degenerate theorem violation")

	// ErrEmptyArgument is returned when an argument identifier is empty.
	ErrEmptyArgument = errors.New("empty argument identifier")

	// ErrMalformedAttack is returned when an attack in a spec is not a
	// [from, to] pair.
	ErrMalformedAttack = errors.New("malformed attack")

	// ErrTooManyArguments is returned by powerset-consuming operations when
	// the framework exceeds the engine's configured enumeration ceiling.
	ErrTooManyArguments = errors.New("too many arguments for exhaustive enumeration")

	// ErrNoFramework is returned by workflows given neither a framework file
	// nor a catalog example.
	ErrNoFramework = errors.New("no framework selected")

	// ErrExpectationMismatch is returned by the check workflow when a computed
	// answer differs from the published one.
	ErrExpectationMismatch = errors.New("computed extensions differ from published answers")
)

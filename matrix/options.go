// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for InverseWith / SolveWith.
// This file defines:
//   - Option (functional setter over unexported options),
//   - documented defaults (constants, the single source of truth),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions, which resolves a ...Option list.
//
// The zero-argument call InverseWith(m) reproduces Inverse(m) bit for bit:
// adjacent-sweep reordering, no singularity check, no finite check.

package matrix

// Pivoting selects how rows are reordered during Gauss–Jordan elimination.
type Pivoting uint8

const (
	// PivotAdjacentSweep runs one descending pass over the first column,
	// swapping rows i and i−1 when m[i−1][0] < m[i][0]. No other reordering.
	PivotAdjacentSweep Pivoting = iota

	// PivotPartial swaps, before each pivot i, the row j ≥ i with the largest
	// |m[j][i]| into position i.
	PivotPartial

	// PivotNone performs no reordering.
	PivotNone
)

// String implements fmt.Stringer.
func (p Pivoting) String() string {
	switch p {
	case PivotAdjacentSweep:
		return "adjacent-sweep"
	case PivotPartial:
		return "partial"
	case PivotNone:
		return "none"
	}

	return "unknown"
}

// ---------- Defaults ----------

const (
	// DefaultPivoting is the reordering strategy used by Inverse.
	DefaultPivoting = PivotAdjacentSweep

	// DefaultSingularCheck controls pivot validation in InverseWith.
	DefaultSingularCheck = false

	// DefaultFiniteCheck controls result validation in InverseWith.
	DefaultFiniteCheck = false
)

// ---------- Internal panic messages ----------

const (
	panicPivotingInvalid  = "matrix: WithPivoting: unknown strategy"
	panicSingularTolerant = "matrix: WithSingularCheck: eps must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	pivoting      Pivoting
	singularCheck bool
	singularEps   float64 // |pivot| <= singularEps ⇒ ErrSingular
	finiteCheck   bool
}

// WithPivoting selects the row reordering strategy.
// Panics on a value outside the declared constants.
func WithPivoting(p Pivoting) Option {
	if p > PivotNone {
		panic(panicPivotingInvalid)
	}

	return func(o *options) { o.pivoting = p }
}

// WithSingularCheck makes InverseWith return ErrSingular when a pivot's
// magnitude is ≤ eps. eps == 0 rejects exact zeros only.
// Panics when eps is negative, NaN or ±Inf.
func WithSingularCheck(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicSingularTolerant)
	}

	return func(o *options) {
		o.singularCheck = true
		o.singularEps = eps
	}
}

// WithFiniteCheck makes InverseWith return ErrNaNInf when the result holds
// any NaN or ±Inf element.
func WithFiniteCheck() Option {
	return func(o *options) { o.finiteCheck = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) options {
	o := options{
		pivoting:      DefaultPivoting,
		singularCheck: DefaultSingularCheck,
		finiteCheck:   DefaultFiniteCheck,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

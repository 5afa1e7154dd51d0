// File: types.go
// Role: Routine enum, the Optimiser struct, its functional options, and
// getters/setters for every state field named in SPEC_FULL.md §4.5.

package optimiser

import (
	"math/rand"

	"github.com/katalvlaran/leiden/localmove"
)

// Routine selects which local-move primitive a pass uses.
type Routine int

const (
	// MoveNodesRoutine runs the queue-driven local-move routine.
	MoveNodesRoutine Routine = iota
	// MergeNodesRoutine runs the single-pass local-merge routine.
	MergeNodesRoutine
)

// DefaultIterations is the n_iterations value SPEC_FULL.md §4.5 names as
// the default for optimise_partition. Callers pass it explicitly; the
// Optimiser has no implicit default of its own.
const DefaultIterations = 2

// stabilityEpsilon absorbs floating-point noise when deciding whether the
// last local-move sweep "produced no positive diff".
const stabilityEpsilon = 1e-9

// Optimiser drives optimise_partition/optimise_partition_multiplex. All of
// its randomized decisions draw from a single owned RNG stream, seedable
// via SetRNGSeed for bit-identical repeat runs.
type Optimiser struct {
	considerComms          localmove.ConsiderPolicy
	refineConsiderComms    localmove.ConsiderPolicy
	optimiseRoutine        Routine
	refineRoutine          Routine
	refinePartition        bool
	considerEmptyCommunity bool
	maxCommSize            int
	seed                   uint64
	rng                    *rand.Rand
}

// Option configures an Optimiser at construction time.
type Option func(*Optimiser)

// WithConsiderComms sets the top-level local-move candidate policy.
func WithConsiderComms(policy localmove.ConsiderPolicy) Option {
	return func(o *Optimiser) { o.considerComms = policy }
}

// WithRefineConsiderComms sets the refinement-stage candidate policy.
func WithRefineConsiderComms(policy localmove.ConsiderPolicy) Option {
	return func(o *Optimiser) { o.refineConsiderComms = policy }
}

// WithOptimiseRoutine selects MOVE_NODES or MERGE_NODES for the top-level
// pass. Defaults to MoveNodesRoutine.
func WithOptimiseRoutine(r Routine) Option {
	return func(o *Optimiser) { o.optimiseRoutine = r }
}

// WithRefineRoutine selects MOVE_NODES or MERGE_NODES for the refinement
// pass. Defaults to MergeNodesRoutine.
func WithRefineRoutine(r Routine) Option {
	return func(o *Optimiser) { o.refineRoutine = r }
}

// WithRefinePartition toggles the refinement stage. Defaults to true.
func WithRefinePartition(b bool) Option {
	return func(o *Optimiser) { o.refinePartition = b }
}

// WithConsiderEmptyCommunity toggles whether an empty community is offered
// as a candidate. Defaults to true.
func WithConsiderEmptyCommunity(b bool) Option {
	return func(o *Optimiser) { o.considerEmptyCommunity = b }
}

// WithMaxCommSize caps the size a candidate community may grow to. 0 means
// unbounded. The cap applies to OptimisePartition and the MoveNodes/
// MergeNodes wrappers; OptimisePartitionMultiplex does not apply it.
func WithMaxCommSize(n int) Option {
	return func(o *Optimiser) { o.maxCommSize = n }
}

// WithRNGSeed seeds the Optimiser's RNG stream at construction time.
func WithRNGSeed(seed uint64) Option {
	return func(o *Optimiser) { o.seed = seed; o.rng = rand.New(rand.NewSource(int64(seed))) }
}

// New builds an Optimiser with the spec defaults: AllNeighComms for both
// consider policies, MOVE_NODES at the top level, MERGE_NODES for
// refinement, refinement enabled, empty communities considered, no size
// cap, and RNG seed 1.
func New(opts ...Option) *Optimiser {
	o := &Optimiser{
		considerComms:          localmove.AllNeighComms,
		refineConsiderComms:    localmove.AllNeighComms,
		optimiseRoutine:        MoveNodesRoutine,
		refineRoutine:          MergeNodesRoutine,
		refinePartition:        true,
		considerEmptyCommunity: true,
		seed:                   1,
		rng:                    rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// SetRNGSeed reseeds the Optimiser's RNG stream. Two calls with the same
// seed and identical subsequent operations reproduce bit-identical
// memberships, per SPEC_FULL.md §5.
func (o *Optimiser) SetRNGSeed(seed uint64) {
	o.seed = seed
	o.rng = rand.New(rand.NewSource(int64(seed)))
}

// RNGSeed returns the seed last passed to SetRNGSeed or WithRNGSeed.
func (o *Optimiser) RNGSeed() uint64 { return o.seed }

// ConsiderComms returns the top-level candidate policy.
func (o *Optimiser) ConsiderComms() localmove.ConsiderPolicy { return o.considerComms }

// SetConsiderComms updates the top-level candidate policy.
func (o *Optimiser) SetConsiderComms(policy localmove.ConsiderPolicy) { o.considerComms = policy }

// RefineConsiderComms returns the refinement-stage candidate policy.
func (o *Optimiser) RefineConsiderComms() localmove.ConsiderPolicy { return o.refineConsiderComms }

// SetRefineConsiderComms updates the refinement-stage candidate policy.
func (o *Optimiser) SetRefineConsiderComms(policy localmove.ConsiderPolicy) {
	o.refineConsiderComms = policy
}

// OptimiseRoutine returns the top-level routine.
func (o *Optimiser) OptimiseRoutine() Routine { return o.optimiseRoutine }

// SetOptimiseRoutine updates the top-level routine.
func (o *Optimiser) SetOptimiseRoutine(r Routine) { o.optimiseRoutine = r }

// RefineRoutine returns the refinement-stage routine.
func (o *Optimiser) RefineRoutine() Routine { return o.refineRoutine }

// SetRefineRoutine updates the refinement-stage routine.
func (o *Optimiser) SetRefineRoutine(r Routine) { o.refineRoutine = r }

// RefinePartition reports whether the refinement stage is enabled.
func (o *Optimiser) RefinePartition() bool { return o.refinePartition }

// SetRefinePartition toggles the refinement stage.
func (o *Optimiser) SetRefinePartition(b bool) { o.refinePartition = b }

// ConsiderEmptyCommunity reports whether an empty community is offered as
// a candidate.
func (o *Optimiser) ConsiderEmptyCommunity() bool { return o.considerEmptyCommunity }

// SetConsiderEmptyCommunity toggles whether an empty community is offered.
func (o *Optimiser) SetConsiderEmptyCommunity(b bool) { o.considerEmptyCommunity = b }

// MaxCommSize returns the configured community size cap (0 means
// unbounded).
func (o *Optimiser) MaxCommSize() int { return o.maxCommSize }

// SetMaxCommSize updates the community size cap.
func (o *Optimiser) SetMaxCommSize(n int) { o.maxCommSize = n }

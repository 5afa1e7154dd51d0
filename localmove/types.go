// File: types.go
// Role: ConsiderPolicy, functional options, and config validation shared
// by move_nodes and merge_nodes.

package localmove

// ConsiderPolicy selects how a vertex's candidate target communities are
// enumerated, per SPEC_FULL.md §4.2.
type ConsiderPolicy int

const (
	// AllComms considers every non-empty community plus, optionally, one
	// empty community.
	AllComms ConsiderPolicy = iota
	// AllNeighComms considers the union of v's neighbors' communities,
	// v's own, plus, optionally, one empty community.
	AllNeighComms
	// RandComm considers one community chosen uniformly among non-empty
	// communities.
	RandComm
	// RandNeighComm considers one community chosen from v's neighbors
	// with probability proportional to edge weight toward it.
	RandNeighComm
)

// Option configures a move_nodes/merge_nodes call.
type Option func(*config)

type config struct {
	isFixed                []bool
	maxCommSize            int
	considerEmptyCommunity bool
	policy                 ConsiderPolicy
}

// WithFixed marks vertices that must never move.
func WithFixed(isFixed []bool) Option {
	return func(c *config) { c.isFixed = isFixed }
}

// WithMaxCommSize caps the size a candidate community may grow to, except
// that v's current community is always eligible. 0 means unbounded.
func WithMaxCommSize(n int) Option {
	return func(c *config) { c.maxCommSize = n }
}

// WithConsiderEmptyCommunity toggles whether one empty community is added
// to the AllComms/AllNeighComms candidate set. Defaults to true.
func WithConsiderEmptyCommunity(b bool) Option {
	return func(c *config) { c.considerEmptyCommunity = b }
}

// WithConsiderPolicy selects the candidate-enumeration policy. Defaults to
// AllNeighComms.
func WithConsiderPolicy(p ConsiderPolicy) Option {
	return func(c *config) { c.policy = p }
}

func newConfig(n int, opts []Option) (*config, error) {
	cfg := &config{considerEmptyCommunity: true, policy: AllNeighComms}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.isFixed != nil && len(cfg.isFixed) != n {
		return nil, ErrFixedLength
	}
	if cfg.maxCommSize < 0 {
		return nil, ErrNegativeMaxCommSize
	}
	return cfg, nil
}

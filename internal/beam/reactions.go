package beam

// Reaction is the force system a support or spring applies to the beam
type Reaction struct {
	Position float64     `json:"position" yaml:"position"` // x (mm)
	Kind     SupportKind `json:"kind" yaml:"kind"`
	Force    float64     `json:"force" yaml:"force"`                       // vertical force (N), upward positive
	Moment   float64     `json:"moment,omitempty" yaml:"moment,omitempty"` // fixing moment (N·mm), fixed supports only
}

// ReactionSet holds the solved reactions of a statically determinate beam
type ReactionSet struct {
	Supports []Reaction `json:"supports" yaml:"supports"`
	Spring   *Reaction  `json:"spring,omitempty" yaml:"spring,omitempty"`
}

// Reactions validates the beam and solves its support reactions from the
// equilibrium equations
func (b *Beam) Reactions() (*ReactionSet, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cfg, err := b.configuration()
	if err != nil {
		return nil, err
	}
	return solveReactions(b, cfg), nil
}

func solveReactions(b *Beam, cfg Configuration) *ReactionSet {
	switch cfg {
	case Cantilever:
		return solveCantilever(b)
	case PinAndSpring:
		return solvePinAndSpring(b)
	default:
		return solveTwoSupport(b)
	}
}

// loadMoment sums the moments of the applied loads about x0, counting
// downward loads right of x0 as positive
func (b *Beam) loadMoment(x0 float64) float64 {
	var m float64
	for _, p := range b.PointLoads {
		m += p.Magnitude * (p.Position - x0)
	}
	for _, d := range b.DistributedLoads {
		m += d.Total() * (d.Centroid() - x0)
	}
	return m
}

// solveTwoSupport takes moments about the left support to find the right
// reaction, then the vertical balance for the left one
func solveTwoSupport(b *Beam) *ReactionSet {
	s := b.sortedSupports()
	left, right := s[0], s[1]
	rB := b.loadMoment(left.Position) / (right.Position - left.Position)
	rA := b.TotalLoad() - rB
	return &ReactionSet{Supports: []Reaction{
		{Position: left.Position, Kind: left.Kind, Force: rA},
		{Position: right.Position, Kind: right.Kind, Force: rB},
	}}
}

// solveCantilever balances the fixed end against the whole load. The stored
// Moment is positive when the loads would rotate the free end downward.
func solveCantilever(b *Beam) *ReactionSet {
	s := b.Supports[0]
	m := b.loadMoment(s.Position)
	if s.Position > 0 {
		m = -m // fixed at the right end, arms run toward the left
	}
	return &ReactionSet{Supports: []Reaction{
		{Position: s.Position, Kind: s.Kind, Force: b.TotalLoad(), Moment: m},
	}}
}

// solvePinAndSpring takes moments about the pin, which only the spring can
// balance, then finds the pin force from the vertical balance. The pin force
// comes out negative when the spring must lift more than the applied load.
func solvePinAndSpring(b *Beam) *ReactionSet {
	pin := b.Supports[0]
	f := b.loadMoment(pin.Position) / (b.Spring.Position - pin.Position)
	r := b.TotalLoad() - f
	return &ReactionSet{
		Supports: []Reaction{{Position: pin.Position, Kind: pin.Kind, Force: r}},
		Spring:   &Reaction{Position: b.Spring.Position, Kind: springKind, Force: f},
	}
}

// CheckEquilibrium returns the residual vertical force and the residual
// moment about x0 with the solved reactions applied. Both vanish for a
// correct solution, up to rounding.
func (a *Analysis) CheckEquilibrium(x0 float64) (sumF, sumM float64) {
	sumF = -a.beam.TotalLoad()
	sumM = -a.beam.loadMoment(x0)
	for _, r := range a.reactions.Supports {
		sumF += r.Force
		sumM += r.Force * (r.Position - x0)
		if r.Kind == Fixed {
			if r.Position == 0 {
				sumM += r.Moment
			} else {
				sumM -= r.Moment
			}
		}
	}
	if s := a.reactions.Spring; s != nil {
		sumF += s.Force
		sumM += s.Force * (s.Position - x0)
	}
	return sumF, sumM
}

package plan

// Params defines the weights of the preference-aware urgency score used
// to order schedule candidates. The score is the priority rank multiplied
// by PriorityWeight, plus the applicable bonuses; it replaces the raw
// priority rank inside the canonical composite comparison.
type Params struct {
	// PriorityWeight scales the task's priority rank.
	PriorityWeight int

	// PreferredTypeBonus is added when the task's type is one of the
	// owner's preferred task types.
	PreferredTypeBonus int

	// PreferredTagBonus is added when the task carries at least one of
	// the owner's preferred tags.
	PreferredTagBonus int

	// SpecialNeedsBonus is added when the task requires special-needs
	// handling and the pet has special needs.
	SpecialNeedsBonus int
}

// ParamsConfig allows overriding the default parameters when creating a
// new Params instance. Zero-valued fields keep their defaults.
type ParamsConfig struct {
	PriorityWeight     int
	PreferredTypeBonus int
	PreferredTagBonus  int
	SpecialNeedsBonus  int
}

// NewDefaultParams creates a new Params instance with default weights.
func NewDefaultParams() *Params {
	return &Params{
		PriorityWeight:     10,
		PreferredTypeBonus: 5,
		PreferredTagBonus:  4,
		SpecialNeedsBonus:  6,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.PriorityWeight > 0 {
		params.PriorityWeight = config.PriorityWeight
	}
	if config.PreferredTypeBonus > 0 {
		params.PreferredTypeBonus = config.PreferredTypeBonus
	}
	if config.PreferredTagBonus > 0 {
		params.PreferredTagBonus = config.PreferredTagBonus
	}
	if config.SpecialNeedsBonus > 0 {
		params.SpecialNeedsBonus = config.SpecialNeedsBonus
	}

	return params
}

package pokemon

// MaxEvolutionStages caps the chain walk: base form plus two evolutions.
const MaxEvolutionStages = 3

// EvolutionStage is one step of an evolution line.
type EvolutionStage struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"imageUrl"`
	MinLevel *int    `json:"minLevel"`
}

// EvolutionSequence is an ordered evolution line following the first branch only.
type EvolutionSequence []EvolutionStage

// Evolves reports whether the sequence has more than the base stage.
func (s EvolutionSequence) Evolves() bool {
	return len(s) > 1
}

// EvolutionView is the payload handed to consumers of a resolved chain.
type EvolutionView struct {
	Stages  EvolutionSequence `json:"stages"`
	Evolves bool              `json:"evolves"`
}

// NewEvolutionView wraps a sequence for rendering.
func NewEvolutionView(seq EvolutionSequence) EvolutionView {
	if seq == nil {
		seq = EvolutionSequence{}
	}
	return EvolutionView{Stages: seq, Evolves: seq.Evolves()}
}

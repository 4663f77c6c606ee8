package domain

// Difficulty labels grade puzzles in the bank and in listings.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // naked/hidden singles
	StrategyPairs                       // naked/hidden pairs (reserved)
	StrategyAdvanced                    // pointing/claiming, triples, etc. (reserved)
)

// StepKind distinguishes solver trace events.
type StepKind int

const (
	StepPlace  StepKind = iota // candidate written into a cell
	StepRemove                 // candidate undone while backtracking
)

func (k StepKind) String() string {
	if k == StepRemove {
		return "remove"
	}
	return "place"
}

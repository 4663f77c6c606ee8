package domain

// Step is one observable event of a solver walkthrough: a value placed into
// or removed from a cell, together with a by-value snapshot of the whole
// grid after the event. Snapshots arrive in the exact order the search
// performs mutations, so replaying them reconstructs the trace.
type Step struct {
	Kind  StepKind    `json:"kind"`
	Cell  CellCoord   `json:"cell"`
	Value uint8       `json:"value"`
	Board [9][9]uint8 `json:"board"`
}

package squeeze

// Tag classifies an element for Reduce.
type Tag int

const (
	// Standalone elements are emitted on their own.
	Standalone Tag = iota
	// Filler elements occupy extent but carry nothing.
	Filler
	// Boundary elements carry content but occupy no extent.
	Boundary
)

func (t Tag) String() string {
	switch t {
	case Standalone:
		return "standalone"
	case Filler:
		return "filler"
	case Boundary:
		return "boundary"
	default:
		return "tag(?)"
	}
}

package geom

// Side identifies the low or high edge of a container along its
// orientation: Side1 is left/top, Side2 is right/bottom.
type Side uint8

const (
	Side1 Side = iota // left / top
	Side2             // right / bottom
)

func (s Side) String() string {
	if s == Side1 {
		return "Side1"
	}
	return "Side2"
}

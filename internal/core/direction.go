package core

// Direction is one of the four cardinal headings.
// Ordinals are chosen so that two directions are opposite iff they differ by 2.
type Direction int

const (
	South Direction = iota
	West
	North
	East
)

// TurnGuardDepth is how many leading segments a new heading is checked against.
// Checking the neck as well as the head stops two turns inside one move from
// folding the head back onto the body.
const TurnGuardDepth = 2

// PauseCode is the input code that toggles pause. It is not part of the direction table.
const PauseCode = " "

// inputCodes maps recognized key codes to directions: a primary and an alternate per heading.
var inputCodes = map[string]Direction{
	"s":     South,
	"down":  South,
	"a":     West,
	"left":  West,
	"w":     North,
	"up":    North,
	"d":     East,
	"right": East,
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case South:
		return "south"
	case West:
		return "west"
	case North:
		return "north"
	case East:
		return "east"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	return d >= South && d <= East
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the unit step for an advancing segment.
// Y grows southward, matching screen rows.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case South:
		return 0, 1
	case West:
		return -1, 0
	case North:
		return 0, -1
	default:
		return 1, 0
	}
}

// IsOpposite reports whether a and b point in reverse directions.
func IsOpposite(a, b Direction) bool {
	return Abs(int(a)-int(b)) == 2
}

// LookupInputCode returns the direction bound to code, if any.
func LookupInputCode(code string) (Direction, bool) {
	d, ok := inputCodes[code]
	return d, ok
}

// FromInputCode maps an input code to a direction.
// Unrecognized codes leave current unchanged.
func FromInputCode(code string, current Direction) Direction {
	if d, ok := inputCodes[code]; ok {
		return d
	}
	return current
}

// InputCodes returns the codes bound to d, primary first.
func InputCodes(d Direction) []string {
	switch d {
	case South:
		return []string{"s", "down"}
	case West:
		return []string{"a", "left"}
	case North:
		return []string{"w", "up"}
	case East:
		return []string{"d", "right"}
	default:
		return nil
	}
}

// CanTurn reports whether next may become the head direction.
// leading holds the current directions of the body, head first; only the
// first TurnGuardDepth entries are consulted.
func CanTurn(next Direction, leading ...Direction) bool {
	for i, d := range leading {
		if i >= TurnGuardDepth {
			break
		}
		if IsOpposite(next, d) {
			return false
		}
	}
	return true
}

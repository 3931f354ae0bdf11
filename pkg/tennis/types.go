package tennis

const winningPoints = 4

type PointLabel int

const (
	Love PointLabel = iota
	Fifteen
	Thirty
	Forty
)

var pointLabelNames = [...]string{
	Love:    "Love",
	Fifteen: "Fifteen",
	Thirty:  "Thirty",
	Forty:   "Forty",
}

func (l PointLabel) Valid() bool {
	return l >= Love && l <= Forty
}

func (l PointLabel) String() string {
	if !l.Valid() {
		return ""
	}
	return pointLabelNames[l]
}

type OutcomeKind int

const (
	Invalid OutcomeKind = iota
	Points
	Deuce
	Advantage
	Win
)

func (k OutcomeKind) String() string {
	switch k {
	case Points:
		return "points"
	case Deuce:
		return "deuce"
	case Advantage:
		return "advantage"
	case Win:
		return "win"
	default:
		return "invalid"
	}
}

// Outcome is the classified state of a game. Leader is set for Advantage and
// Win, A and B for Points.
type Outcome struct {
	Kind   OutcomeKind
	Leader string
	A, B   PointLabel
}

func (o Outcome) String() string {
	switch o.Kind {
	case Deuce:
		return "Deuce"
	case Advantage:
		return "Advantage for " + o.Leader
	case Win:
		return "Win for " + o.Leader
	case Points:
		if o.A == o.B {
			return o.A.String() + "-All"
		}
		return o.A.String() + "-" + o.B.String()
	default:
		return "Invalid Score"
	}
}

type GameState struct {
	PointsA, PointsB int
	NameA, NameB     string
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

package tennis

const (
	DefaultNameA = "Player 1"
	DefaultNameB = "Player 2"
)

func NewGameState(nameA, nameB string) GameState {
	return GameState{NameA: nameA, NameB: nameB}
}

func (g *GameState) IsDeuce() bool {
	return g.PointsA >= 3 && g.PointsA == g.PointsB
}

// IsAdvantage reports a one point lead once somebody has reached four points.
func (g *GameState) IsAdvantage() bool {
	return max(g.PointsA, g.PointsB) >= winningPoints &&
		abs(g.PointsA-g.PointsB) == 1
}

// IsWin also fires for any score where the leader has exactly four points,
// so it must be checked after IsAdvantage.
func (g *GameState) IsWin() bool {
	var top = max(g.PointsA, g.PointsB)
	if top == winningPoints {
		return true
	}
	return top >= winningPoints && abs(g.PointsA-g.PointsB) == 2
}

func (g *GameState) leader() string {
	if g.PointsA > g.PointsB {
		return g.NameA
	}
	return g.NameB
}

func (g *GameState) Outcome() Outcome {
	if g.PointsA < 0 || g.PointsB < 0 {
		return Outcome{Kind: Invalid}
	}
	if g.IsDeuce() {
		return Outcome{Kind: Deuce}
	}
	if g.IsAdvantage() {
		return Outcome{Kind: Advantage, Leader: g.leader()}
	}
	if g.IsWin() {
		return Outcome{Kind: Win, Leader: g.leader()}
	}
	if g.PointsA < winningPoints && g.PointsB < winningPoints {
		return Outcome{
			Kind: Points,
			A:    PointLabel(g.PointsA),
			B:    PointLabel(g.PointsB),
		}
	}
	return Outcome{Kind: Invalid}
}

func (g *GameState) Score() string {
	return g.Outcome().String()
}

func Evaluate(pointsA, pointsB int, nameA, nameB string) string {
	var g = GameState{
		PointsA: pointsA,
		PointsB: pointsB,
		NameA:   nameA,
		NameB:   nameB,
	}
	return g.Score()
}

package tennis

import (
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

var ErrMalformedScore = errors.New("score must be two integers joined by '-'")

const (
	rebaseFloor  = 10
	rebaseSpread = 1000
)

var rebaseLimit = big.NewInt(math.MaxInt32)

// ParseScore parses an "X-Y" token. Counts have no upper bound: pairs too
// large for int are rebased to small counts with the same outcome.
func ParseScore(s string) (int, int, error) {
	var parts = strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedScore, "parse %q", s)
	}
	a, err := parsePoints(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse %q", s)
	}
	b, err := parsePoints(parts[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parse %q", s)
	}
	var x, y = rebase(a, b)
	return x, y, nil
}

func parsePoints(s string) (*big.Int, error) {
	var v, ok = new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || v.Sign() < 0 {
		return nil, ErrMalformedScore
	}
	return v, nil
}

// rebase keeps only what the rules look at once a count is past the limit:
// the lower count is then either at least 5, so both can be shifted down
// together, or the gap is far above 2 and the score is invalid either way.
func rebase(a, b *big.Int) (int, int) {
	if a.Cmp(rebaseLimit) <= 0 && b.Cmp(rebaseLimit) <= 0 {
		return int(a.Int64()), int(b.Int64())
	}
	var low = a
	if b.Cmp(a) < 0 {
		low = b
	}
	return rebaseFloor + spread(a, low), rebaseFloor + spread(b, low)
}

func spread(v, low *big.Int) int {
	var d = new(big.Int).Sub(v, low)
	if d.Cmp(big.NewInt(rebaseSpread)) > 0 {
		return rebaseSpread
	}
	return int(d.Int64())
}

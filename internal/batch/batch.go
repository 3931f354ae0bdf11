package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ChizhovVadim/TennisScore/pkg/tennis"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

type Summary struct {
	RunID     string
	Lines     int
	Scored    int
	Malformed int
	Kinds     map[tennis.OutcomeKind]int
}

type Processor struct {
	NameA  string
	NameB  string
	Logger *log.Logger
}

func (p *Processor) logger() *log.Logger {
	if p.Logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return p.Logger
}

// RunFile evaluates every line of the file at path. A missing file is
// reported to w and is not an error.
func (p *Processor) RunFile(ctx context.Context, path string, w io.Writer) (Summary, error) {
	file, err := os.Open(MapPath(path))
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "File not found: %v\n", path)
			return Summary{}, nil
		}
		return Summary{}, errors.Wrapf(err, "open %v", path)
	}
	defer file.Close()
	return p.Run(ctx, file, w)
}

func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) (Summary, error) {
	var logger = p.logger()
	var summary = Summary{
		RunID: uuid.New().String(),
		Kinds: make(map[tennis.OutcomeKind]int),
	}
	logger.Println("batch started", summary.RunID)

	g, ctx := errgroup.WithContext(ctx)

	var lines = make(chan string)

	g.Go(func() error {
		defer close(lines)
		return loadLines(ctx, r, lines)
	})

	g.Go(func() error {
		return p.showResults(ctx, logger, lines, w, &summary)
	})

	var err = g.Wait()
	if err != nil {
		return summary, err
	}
	logger.Printf("batch finished %v: lines %v scored %v malformed %v %v\n",
		summary.RunID, summary.Lines, summary.Scored, summary.Malformed, kindsString(summary.Kinds))
	return summary, nil
}

func loadLines(
	ctx context.Context,
	r io.Reader,
	lines chan<- string,
) error {
	var reader = bufio.NewReader(r)
	for {
		var line, err = reader.ReadString('\n')
		if line != "" {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case lines <- strings.TrimSpace(line):
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read scores")
		}
	}
}

func (p *Processor) showResults(
	ctx context.Context,
	logger *log.Logger,
	lines <-chan string,
	w io.Writer,
	summary *Summary,
) error {
	var game = tennis.NewGameState(p.NameA, p.NameB)
	for line := range lines {
		summary.Lines++
		a, b, err := tennis.ParseScore(line)
		if err != nil {
			summary.Malformed++
			logger.Println(err)
			if _, err := fmt.Fprintf(w, "Invalid input: %v, Please provide scores in the format 'X-Y'\n", line); err != nil {
				return errors.Wrap(err, "write result")
			}
			continue
		}
		game.PointsA, game.PointsB = a, b
		var outcome = game.Outcome()
		summary.Scored++
		summary.Kinds[outcome.Kind]++
		if _, err := fmt.Fprintf(w, "%v -> %v\n", line, outcome); err != nil {
			return errors.Wrap(err, "write result")
		}
	}
	return ctx.Err()
}

func kindsString(kinds map[tennis.OutcomeKind]int) string {
	var sb strings.Builder
	for k := tennis.Invalid; k <= tennis.Win; k++ {
		if kinds[k] == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v=%v", k, kinds[k])
	}
	return sb.String()
}

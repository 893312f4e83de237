package drill

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/heartmarshall/wordflow-backend/internal/domain"
	"github.com/heartmarshall/wordflow-backend/internal/session"
)

// reviewSession is the part of session.Orchestrator the runner drives.
type reviewSession interface {
	Start(ctx context.Context) (session.State, error)
	Submit(ctx context.Context, tok session.Token, ans session.Answer) (session.State, error)
	Skip(ctx context.Context) (session.State, error)
	Retry(ctx context.Context) (session.State, error)
	Stats() session.Stats
}

// ErrQuit is returned when the user ends the session early.
var ErrQuit = errors.New("session ended by user")

// Runner reads answers from in and writes exercises to out.
type Runner struct {
	sess reviewSession
	in   *bufio.Scanner
	out  io.Writer
	now  func() time.Time
}

// NewRunner creates a Runner for sess.
func NewRunner(sess reviewSession, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		sess: sess,
		in:   bufio.NewScanner(in),
		out:  out,
		now:  time.Now,
	}
}

// Run drives the session until it finishes, the user quits or a
// non-retryable error occurs. The stats are valid in every case.
func (r *Runner) Run(ctx context.Context) (session.Stats, error) {
	st, err := r.sess.Start(ctx)
	if err != nil {
		return r.sess.Stats(), err
	}

	for {
		if err := ctx.Err(); err != nil {
			return r.sess.Stats(), err
		}

		switch st.Status {
		case session.StatusFinished:
			r.summary()
			return r.sess.Stats(), nil
		case session.StatusError:
			st, err = r.handleError(ctx, st)
		case session.StatusReady:
			st, err = r.answer(ctx, st)
		default:
			return r.sess.Stats(), fmt.Errorf("unexpected session status %s", st.Status)
		}
		if err != nil {
			return r.sess.Stats(), err
		}
	}
}

func (r *Runner) handleError(ctx context.Context, st session.State) (session.State, error) {
	fmt.Fprintf(r.out, "\nerror: %v\n", st.Err)
	if !st.Retryable {
		return st, st.Err
	}

	for {
		line, ok := r.prompt("[r]etry, [s]kip or [q]uit? ")
		if !ok {
			return st, ErrQuit
		}
		switch line {
		case "r", "retry", "":
			return r.sess.Retry(ctx)
		case "s", "skip":
			next, err := r.sess.Skip(ctx)
			if errors.Is(err, session.ErrNotReady) {
				fmt.Fprintln(r.out, "nothing to skip")
				continue
			}
			return next, err
		case "q", "quit":
			return st, ErrQuit
		}
	}
}

func (r *Runner) answer(ctx context.Context, st session.State) (session.State, error) {
	ex := st.Exercise
	fmt.Fprintf(r.out, "\n[%d left] %s\n", st.Remaining, ex.Type)

	shown := r.now()
	var ans session.Answer
	if ex.Type == domain.ExerciseMatchingPairs {
		r.renderMatching(ex)
		line, ok := r.prompt("pairs (e.g. 1b 2a), s to skip, q to quit: ")
		if !ok || line == "q" {
			return st, ErrQuit
		}
		if line == "s" {
			return r.sess.Skip(ctx)
		}
		ans = session.ScorePairs(ex, parsePairs(ex, line), r.now().Sub(shown))
		r.feedbackPairs(ex, ans)
	} else {
		r.renderChoice(ex)
		line, ok := r.prompt("answer, s to skip, q to quit: ")
		if !ok || line == "q" {
			return st, ErrQuit
		}
		if line == "s" {
			return r.sess.Skip(ctx)
		}
		correct := session.CheckChoice(ex, pickOption(ex, line))
		ans = session.Answer{Quality: session.QualityFor(correct, r.now().Sub(shown))}
		if correct {
			fmt.Fprintln(r.out, "correct")
		} else {
			fmt.Fprintf(r.out, "wrong, it was %q\n", ex.Answer)
		}
	}

	return r.sess.Submit(ctx, st.Token, ans)
}

func (r *Runner) renderChoice(ex *domain.Exercise) {
	fmt.Fprintln(r.out, ex.Prompt)
	if ex.Context != "" {
		fmt.Fprintf(r.out, "  %q\n", ex.Context)
	}
	for i, opt := range ex.Options {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, opt)
	}
}

func (r *Runner) renderMatching(ex *domain.Exercise) {
	fmt.Fprintln(r.out, ex.Prompt)
	for i, term := range ex.Terms {
		fmt.Fprintf(r.out, "  %d) %s\n", i+1, term)
	}
	for i, tr := range ex.Translations {
		fmt.Fprintf(r.out, "  %c) %s\n", 'a'+rune(i), tr)
	}
}

func (r *Runner) feedbackPairs(ex *domain.Exercise, ans session.Answer) {
	for _, p := range ex.Pairs {
		mark := "ok"
		if q := ans.PerItem[p.VocabularyID]; q < domain.QualityPassing {
			mark = "missed"
		}
		fmt.Fprintf(r.out, "  %-6s %s = %s\n", mark, p.Term, p.Translation)
	}
}

func (r *Runner) summary() {
	s := r.sess.Stats()
	fmt.Fprintf(r.out, "\nno more cards due. graded %d, skipped %d", s.Graded, s.Skipped)
	if s.Replayed > 0 {
		fmt.Fprintf(r.out, ", %d already recorded", s.Replayed)
	}
	fmt.Fprintln(r.out)
}

// prompt prints msg and reads one trimmed, lowercased line. ok is false at
// end of input.
func (r *Runner) prompt(msg string) (string, bool) {
	fmt.Fprint(r.out, msg)
	if !r.in.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(r.in.Text())), true
}

// pickOption resolves a 1-based option number to its text. Anything else is
// taken as a typed answer.
func pickOption(ex *domain.Exercise, line string) string {
	if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(ex.Options) {
		return ex.Options[n-1]
	}
	return line
}

// parsePairs reads tokens like "1b" pairing the first term with the second
// translation. Malformed tokens are ignored and leave their term unpaired.
func parsePairs(ex *domain.Exercise, line string) map[string]string {
	guesses := make(map[string]string)
	for _, tok := range strings.Fields(line) {
		letter := tok[len(tok)-1]
		n, err := strconv.Atoi(tok[:len(tok)-1])
		if err != nil || n < 1 || n > len(ex.Terms) {
			continue
		}
		i := int(letter - 'a')
		if i >= len(ex.Translations) {
			continue
		}
		guesses[ex.Terms[n-1]] = ex.Translations[i]
	}
	return guesses
}

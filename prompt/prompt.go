package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
)

// None is the answer that clears a text input which has a default.
const None = "-"

// Prompter asks questions on out and reads the answers from in. Every
// question is a single field huh form run in accessible mode, so answers are
// plain lines and any reader works, a terminal as well as a pipe.
type Prompter struct {
	in  *lineReader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  &lineReader{r: bufio.NewReader(in)},
		out: out,
	}
}

// Printf writes an informational message, not a question.
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(true).
		WithInput(p.in).
		WithOutput(p.out)
	if err := form.Run(); err != nil {
		return err
	}
	// Accessible fields fall back to their default at end of input instead
	// of failing, so the reader keeps track of it.
	if err := p.in.Err(); err != nil {
		return fmt.Errorf("unable to read answer: %w", err)
	}
	return nil
}

// Confirm asks a yes/no question. An empty answer picks def.
func (p *Prompter) Confirm(question string, def bool) (bool, error) {
	v := def
	if err := p.run(huh.NewConfirm().Title(question).Value(&v)); err != nil {
		return false, err
	}
	return v, nil
}

// Input asks for free text. An empty answer picks def, None clears it.
func (p *Prompter) Input(question, def string) (string, error) {
	title := question
	if def != "" {
		title = fmt.Sprintf("%s (%s, %q for none)", question, def, None)
	}
	v := def
	if err := p.run(huh.NewInput().Title(title).Value(&v)); err != nil {
		return "", err
	}
	v = strings.TrimSpace(v)
	if v == None {
		return "", nil
	}
	return v, nil
}

// Number asks until the answer is accepted by validate. Answers that do not
// parse as a number are passed to validate as NaN. The validation error is
// shown before asking again.
func (p *Prompter) Number(question string, validate func(float64) error) (float64, error) {
	if validate == nil {
		validate = isNumber
	}
	var raw string
	field := huh.NewInput().
		Title(question).
		Value(&raw).
		Validate(func(s string) error {
			return validate(parseNumber(s))
		})
	if err := p.run(field); err != nil {
		return 0, err
	}
	return parseNumber(raw), nil
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func isNumber(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("please enter a number")
	}
	return nil
}

// Select shows a numbered list and returns the index of the chosen entry.
// The answer is the list number, an empty answer picks def.
func (p *Prompter) Select(question string, labels []string, def int) (int, error) {
	if len(labels) == 0 {
		return 0, errors.New("no choices to select from")
	}
	if def < 0 || def >= len(labels) {
		def = 0
	}

	opts := make([]huh.Option[int], len(labels))
	for i, l := range labels {
		if i == def {
			l += " (default)"
		}
		opts[i] = huh.NewOption(l, i)
	}
	v := def
	if err := p.run(huh.NewSelect[int]().Title(question).Options(opts...).Value(&v)); err != nil {
		return 0, err
	}
	return v, nil
}

// lineReader hands out at most one line per Read. huh starts a new scanner
// for every question, so reading ahead would swallow later answers.
//
// At end of input a single empty line is handed out before the error, which
// settles a pending field on its default instead of the last rejected answer.
// The error is kept for Err.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	err     error
}

func (l *lineReader) Read(b []byte) (int, error) {
	if len(l.pending) == 0 {
		if l.err != nil {
			return 0, l.err
		}
		line, err := l.r.ReadBytes('\n')
		switch {
		case err == nil:
		case len(line) == 0:
			l.err = err
			line = []byte{'\n'}
		default:
			// Terminate a last unterminated line so it is answered right away.
			line = append(line, '\n')
		}
		l.pending = line
	}
	n := copy(b, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}

// Err returns the error that ended the input, e.g. io.EOF.
func (l *lineReader) Err() error {
	return l.err
}

package dimension

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Midpoint picks the rounded centre of every range without asking anyone.
type Midpoint struct{}

// Choose implements Provider.
func (Midpoint) Choose(_ context.Context, req Request) (int, error) {
	return roundMM(req.Range.Midpoint()), nil
}

// Fixed returns preset values by key. Keys without a value fall back to the
// midpoint when Fallback is set.
type Fixed struct {
	Values   map[string]int
	Fallback bool
}

// Choose implements Provider.
func (f Fixed) Choose(ctx context.Context, req Request) (int, error) {
	if v, ok := f.Values[req.Key]; ok {
		return v, nil
	}
	if f.Fallback {
		return Midpoint{}.Choose(ctx, req)
	}
	return 0, fmt.Errorf("no value supplied for %s", req.Key)
}

// Prompt asks for each value on Out and reads the answer from In.
type Prompt struct {
	In  io.Reader
	Out io.Writer

	// AllowOutOfRange accepts entries outside the suggested range.
	AllowOutOfRange bool

	scanner *bufio.Scanner
}

// NewPrompt creates an interactive provider.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out}
}

// Choose implements Provider. An empty answer accepts the midpoint.
func (p *Prompt) Choose(ctx context.Context, req Request) (int, error) {
	if p.scanner == nil {
		p.scanner = bufio.NewScanner(p.In)
	}
	mid := roundMM(req.Range.Midpoint())
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(p.Out, "  %s (%s) range %s mm, suggested %d: ", req.Label, req.Key, req.Range, mid)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("input closed before %s was entered: %w", req.Key, io.ErrUnexpectedEOF)
		}
		line := strings.TrimSpace(p.scanner.Text())
		if line == "" {
			return mid, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintf(p.Out, "  not a number: %q\n", line)
			continue
		}
		if !p.AllowOutOfRange && !req.Range.Contains(v) {
			fmt.Fprintf(p.Out, "  %g is outside %s\n", v, req.Range)
			continue
		}
		if v <= 0 {
			fmt.Fprintln(p.Out, "  value must be positive")
			continue
		}
		return roundMM(v), nil
	}
}

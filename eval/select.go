package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	align "github.com/signadot/tony-format/go-align"
)

// Predicate is a compiled boolean expression over a [PairEnv].
type Predicate struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Predicate, error) {
	opts := append(exprOpts(), expr.Env(PairEnv{}), expr.AsBool())
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

func (p *Predicate) String() string { return p.src }

func (p *Predicate) Eval(env PairEnv) (bool, error) {
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: pair %d: %w", ErrEval, env.Index, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T, not bool", ErrEval, p.src, res)
	}
	return b, nil
}

// Match is a pair selected from an alignment, with its position.
type Match[L, R comparable] struct {
	Index int
	Pair  align.Pair[L, R]
	Span  align.PairSpan
}

func (m Match[L, R]) String() string {
	return fmt.Sprintf("%d %s/%s %s", m.Index, m.Span.Left, m.Span.Right, m.Pair)
}

// Select returns the pairs of a for which p holds, in order.
func Select[L, R comparable](a align.Alignment[L, R], p *Predicate) ([]Match[L, R], error) {
	pairs := a.Pairs()
	spans := a.Spans()
	var res []Match[L, R]
	for i, pair := range pairs {
		ok, err := p.Eval(NewPairEnv(i, pair, spans[i]))
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, Match[L, R]{Index: i, Pair: pair, Span: spans[i]})
		}
	}
	return res, nil
}

// Filter keeps the pairs of a for which p holds. The result is squeezed
// again, so it covers only the selected parts of each side.
func Filter[L, R comparable](a align.Alignment[L, R], p *Predicate) (align.Alignment[L, R], error) {
	ms, err := Select(a, p)
	if err != nil {
		return align.Alignment[L, R]{}, err
	}
	pairs := make([]align.Pair[L, R], len(ms))
	for i, m := range ms {
		pairs[i] = m.Pair
	}
	return align.New(pairs), nil
}

// Package qmc implements exact two-level Boolean minimization by the
// Quine–McCluskey algorithm. Problem is the driver (spec's C7): it holds
// the construction parameters, orchestrates prime-implicant generation
// (package implicant), minimal-cover search (package cover, built on
// packages incidence and reduce), and expression rendering (package
// render), and exposes the intermediate stages as public hooks for
// step-wise use.
//
// Grounded on dkmccandless-cover/cover.go's New/Add/Minimize as the shape
// of a minimal public entry point, and on pborges-cupl/internal/cupl's
// validate-then-pipeline Compile for the construction/solve split.
package qmc

import (
	"github.com/pkg/errors"

	"github.com/dkmccandless/qmc/cover"
	"github.com/dkmccandless/qmc/implicant"
	"github.com/dkmccandless/qmc/incidence"
	"github.com/dkmccandless/qmc/reduce"
	"github.com/dkmccandless/qmc/render"
	"github.com/dkmccandless/qmc/term"
)

// Term is a single input assignment, supplied either as an integer
// (interpreted as a width-bit binary number, MSB first) or as a
// width-character string over {'0', '1'}. Mirrors the teacher's own
// Element/Subset: an unconstrained interface{} resolved by type switch at
// construction, since the caller's literal notation (42 vs "101010") is
// the only thing that varies.
type Term interface{}

// Sentinel construction errors, per spec §6's "Error conditions".
var (
	ErrWidth         = errors.New("qmc: width must be a positive integer")
	ErrMixedTerms    = errors.New("qmc: minterms and maxterms are mutually exclusive")
	ErrNoTerms       = errors.New("qmc: exactly one of minterms or maxterms must be supplied")
	ErrTermRange     = errors.New("qmc: integer term does not fit in width bits")
	ErrMalformedTerm = errors.New("qmc: string term is not width characters over {0,1}")
	ErrDashCollision = errors.New("qmc: dash symbol collides with a binary digit")

	// ErrImpossibleCover signals the programmer-error case of spec §7
	// item 2: a well-formed problem always has a cover (at worst, the
	// full required-term list as single-term implicants), so Solve
	// reaching this path indicates an internal bug, not a user error.
	ErrImpossibleCover = errors.New("qmc: internal error: search produced no cover for a well-formed problem")
)

// Option configures a Problem at construction time.
type Option func(*Problem)

// WithMinterms adds required-true assignments. Mutually exclusive with
// WithMaxterms.
func WithMinterms(ts ...Term) Option {
	return func(p *Problem) { p.rawMinterms = append(p.rawMinterms, ts...) }
}

// WithMaxterms adds required-false assignments. Mutually exclusive with
// WithMinterms.
func WithMaxterms(ts ...Term) Option {
	return func(p *Problem) { p.rawMaxterms = append(p.rawMaxterms, ts...) }
}

// WithDontcares adds assignments the function's value does not constrain.
func WithDontcares(ts ...Term) Option {
	return func(p *Problem) { p.rawDontcares = append(p.rawDontcares, ts...) }
}

// WithDash sets the dash symbol used in rendered implicants. Default '−'
// (U+2212).
func WithDash(d rune) Option {
	return func(p *Problem) { p.dash = d }
}

// WithVars sets the positional variable alphabet. Default is A..Z,
// extended AA, AB, ... for width > 26.
func WithVars(vars []string) Option {
	return func(p *Problem) { p.vars = vars }
}

// MinOnly controls whether Solve returns only minimum-cost covers.
// Default true.
func MinOnly(b bool) Option {
	return func(p *Problem) { p.minOnly = b }
}

// SortTerms controls whether each returned cover's implicants are sorted
// in descending order. Default true.
func SortTerms(b bool) Option {
	return func(p *Problem) { p.sortTerms = b }
}

// Problem holds one minimization request: its width, dash symbol,
// variable alphabet, preferences, input term sets, and — once computed —
// its prime implicants, incidence table, covers, and rendered
// expressions.
type Problem struct {
	width     int
	dash      rune
	vars      []string
	minOnly   bool
	sortTerms bool

	rawMinterms, rawMaxterms, rawDontcares []Term
	minterms, maxterms, dontcares          []string

	primes []string
	table  *incidence.Table // canonical; never mutated after FindPrimes
	work   *incidence.Table // lazily copied working table for step-wise hooks

	covers   [][]string
	rendered []string
}

// New constructs a Problem from width and the given options, validating
// per spec §6: width must be positive, exactly one of minterms/maxterms
// must be supplied, and every term must fit the declared width.
func New(width int, opts ...Option) (*Problem, error) {
	p := &Problem{
		width:     width,
		dash:      term.DefaultDash,
		minOnly:   true,
		sortTerms: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.vars == nil {
		p.vars = render.DefaultVars(p.width)
	}
	return p, nil
}

func (p *Problem) validate() error {
	if p.width <= 0 {
		return errors.Wrapf(ErrWidth, "got %d", p.width)
	}
	hasMin, hasMax := len(p.rawMinterms) > 0, len(p.rawMaxterms) > 0
	switch {
	case hasMin && hasMax:
		return ErrMixedTerms
	case !hasMin && !hasMax:
		return ErrNoTerms
	}
	if p.dash == 0 {
		p.dash = term.DefaultDash
	}
	if p.dash == '0' || p.dash == '1' {
		return errors.Wrapf(ErrDashCollision, "%q", p.dash)
	}
	if p.vars != nil && len(p.vars) < p.width {
		return errors.Errorf("qmc: vars has %d names, need at least %d for width %d", len(p.vars), p.width, p.width)
	}

	var err error
	if p.minterms, err = normalizeAll(p.rawMinterms, p.width); err != nil {
		return err
	}
	if p.maxterms, err = normalizeAll(p.rawMaxterms, p.width); err != nil {
		return err
	}
	if p.dontcares, err = normalizeAll(p.rawDontcares, p.width); err != nil {
		return err
	}
	return nil
}

func normalizeAll(ts []Term, w int) ([]string, error) {
	if len(ts) == 0 {
		return nil, nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		s, err := normalizeTerm(t, w)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

func normalizeTerm(t Term, w int) (string, error) {
	switch v := t.(type) {
	case int:
		if v < 0 {
			return "", errors.Wrapf(ErrTermRange, "%d", v)
		}
		s, err := term.ToBits(uint64(v), w)
		if err != nil {
			return "", errors.Wrapf(ErrTermRange, "%d", v)
		}
		return s, nil
	case uint64:
		s, err := term.ToBits(v, w)
		if err != nil {
			return "", errors.Wrapf(ErrTermRange, "%d", v)
		}
		return s, nil
	case string:
		if !term.ValidTerm(v, w) {
			return "", errors.Wrapf(ErrMalformedTerm, "%q", v)
		}
		return v, nil
	default:
		return "", errors.Errorf("qmc: unsupported term type %T", t)
	}
}

// Width returns the problem's variable count.
func (p *Problem) Width() int { return p.width }

// IsPOS reports whether the problem is maxterm-based (product-of-sums
// output) rather than minterm-based (sum-of-products).
func (p *Problem) IsPOS() bool { return len(p.maxterms) > 0 }

// FindPrimes runs the implicant generator (C2) if it has not already run,
// and builds the canonical incidence table (C3) mapping each prime
// implicant to the required terms (minterms ∪ maxterms) it covers. It is
// idempotent and safe to call before Solve purely for introspection.
func (p *Problem) FindPrimes() ([]string, error) {
	if p.table != nil {
		return p.primes, nil
	}
	required := append(append([]string{}, p.minterms...), p.maxterms...)
	all := append(append([]string{}, required...), p.dontcares...)

	primes := implicant.Generate(all, p.width, p.dash)
	table := incidence.New()
	for _, prime := range primes {
		for _, t := range term.MaskMatches(prime, required, p.dash) {
			table.Add(prime, t)
		}
	}
	p.primes = primes
	p.table = table
	return primes, nil
}

// workTable returns the lazily-copied working table the step-wise
// reduction hooks operate on, running FindPrimes first if needed.
func (p *Problem) workTable() (*incidence.Table, error) {
	if p.table == nil {
		if _, err := p.FindPrimes(); err != nil {
			return nil, err
		}
	}
	if p.work == nil {
		p.work = incidence.Copy(p.table)
	}
	return p.work, nil
}

// ResetWork discards the working table built up by FindEssentials/RowDom/
// ColDom, so the next call to one of them starts again from the canonical
// prime map.
func (p *Problem) ResetWork() { p.work = nil }

// FindEssentials returns the essential primes (C4) in the current working
// table, without removing them.
func (p *Problem) FindEssentials() (map[string]struct{}, error) {
	t, err := p.workTable()
	if err != nil {
		return nil, err
	}
	return reduce.FindEssentials(t), nil
}

// RowDom applies row dominance (C4) to the current working table and
// reports whether it removed anything.
func (p *Problem) RowDom() (bool, error) {
	t, err := p.workTable()
	if err != nil {
		return false, err
	}
	return reduce.RowDom(t), nil
}

// ColDom applies column dominance (C4) to the current working table and
// reports whether it removed anything.
func (p *Problem) ColDom() (bool, error) {
	t, err := p.workTable()
	if err != nil {
		return false, err
	}
	return reduce.ColDom(t), nil
}

// ToBoolean renders covers as Boolean expression strings per spec §4.6,
// without running the search: a pure hook over already-computed covers
// (or any covers a caller constructs directly).
func (p *Problem) ToBoolean(covers [][]string) []string {
	return render.RenderAll(covers, p.dash, render.Config{Vars: p.vars, IsPOS: p.IsPOS()})
}

// Solve runs the full pipeline — FindPrimes if needed, the minimal-cover
// search (C5), and ToBoolean (C6) — and returns the rendered expressions,
// one per cover found (only minimum-cost covers unless MinOnly(false)).
func (p *Problem) Solve() ([]string, error) {
	if p.table == nil {
		if _, err := p.FindPrimes(); err != nil {
			return nil, err
		}
	}
	search := incidence.Copy(p.table)
	covers := cover.Search(search, p.dash, p.minOnly, p.sortTerms)
	if len(covers) == 0 {
		return nil, errors.Wrap(ErrImpossibleCover, "solve")
	}
	p.covers = covers
	p.rendered = p.ToBoolean(covers)
	return p.rendered, nil
}

// Covers returns the covers found by the most recent Solve call, or nil
// if Solve has not run.
func (p *Problem) Covers() [][]string { return p.covers }

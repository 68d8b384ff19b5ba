package problemgen

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/logging"
	"github.com/abhisek/harjutus/internal/rng"
)

// Generator builds batches of unique problems.
//
// A Generator holds no per-batch state; every Generate call gets its own
// dedup set. It is safe for concurrent use when its source is (the default
// source is).
type Generator struct {
	cfg    Config
	src    rng.Source
	logger *log.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource sets the random source. Use a seeded source for reproducible
// batches.
func WithSource(src rng.Source) Option {
	return func(g *Generator) { g.src = src }
}

// WithLogger sets the logger used for batch diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator. Non-positive budgets in cfg take the defaults.
func New(cfg Config, opts ...Option) *Generator {
	if cfg.AttemptBudget <= 0 {
		cfg.AttemptBudget = defaultAttemptBudget
	}
	if cfg.ComparisonOnlyAttemptBudget <= 0 {
		cfg.ComparisonOnlyAttemptBudget = defaultComparisonOnlyAttemptBudget
	}
	g := &Generator{cfg: cfg, src: rng.Default()}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = logging.WithComponent("problemgen")
	}
	return g
}

// Batch is the outcome of one Generate call. A batch shorter than
// requested is a normal result once the attempt budget runs out.
type Batch struct {
	// ID correlates the batch with log lines.
	ID uuid.UUID

	Problems []Problem

	Requested int
	Attempts  int
	Budget    int

	// Rejections counts failed attempts by reason.
	Rejections map[RejectReason]int
}

// Short reports whether fewer problems than requested were produced.
func (b *Batch) Short() bool {
	return len(b.Problems) < b.Requested
}

// Texts returns the rendered text of every problem, in order.
func (b *Batch) Texts() []string {
	texts := make([]string, len(b.Problems))
	for i, p := range b.Problems {
		texts[i] = p.Text
	}
	return texts
}

// EnabledOperators lists the operators a config allows, in a fixed order.
// When nothing is enabled it falls back to + and -.
func EnabledOperators(cfg config.Config) []Operator {
	var ops []Operator
	if cfg.AdditionAllowed {
		ops = append(ops, OpAdd)
	}
	if cfg.SubtractionAllowed {
		ops = append(ops, OpSub)
	}
	if cfg.MultiplicationAllowed {
		ops = append(ops, OpMul)
	}
	if cfg.DivisionAllowed {
		ops = append(ops, OpDiv)
	}
	if cfg.ComparisonAllowed {
		ops = append(ops, ComparisonOperators()...)
	}
	if len(ops) == 0 {
		ops = []Operator{OpAdd, OpSub}
	}
	return ops
}

// Budget returns the attempt budget that applies to cfg.
func (g *Generator) Budget(cfg config.Config) int {
	if cfg.ComparisonOnly() {
		return g.cfg.ComparisonOnlyAttemptBudget
	}
	return g.cfg.AttemptBudget
}

// Generate synthesizes up to count problems for cfg. A non-positive count
// means cfg.MathProblemCount. Each attempt draws an operator uniformly
// from the enabled set; the loop ends when the batch is full or the
// attempt budget is spent.
func (g *Generator) Generate(cfg config.Config, count int) *Batch {
	if count <= 0 {
		count = cfg.MathProblemCount
	}

	b := &Batch{
		ID:         uuid.New(),
		Problems:   make([]Problem, 0, count),
		Requested:  count,
		Budget:     g.Budget(cfg),
		Rejections: make(map[RejectReason]int),
	}
	ops := EnabledOperators(cfg)
	seen := make(map[string]bool, count)

	for len(b.Problems) < count && b.Attempts < b.Budget {
		b.Attempts++
		op := rng.Choice(g.src, ops)

		p, err := Synthesize(g.src, op, cfg, seen)
		if err != nil {
			if r, ok := err.(*Rejection); ok {
				b.Rejections[r.Reason]++
				continue
			}
			// Only reachable with an operator outside the enabled set.
			g.logger.Error("synthesis failed", "batch_id", b.ID, "op", op, "error", err)
			b.Rejections[ReasonInvalid]++
			continue
		}

		if verr := Validate(&p, cfg, g.cfg.Validators...); verr != nil {
			g.logger.Debug("candidate rejected", "batch_id", b.ID, "text", p.Text, "error", verr)
			b.Rejections[ReasonInvalid]++
			continue
		}

		seen[p.Text] = true
		b.Problems = append(b.Problems, p)
	}

	g.logger.Debug("batch generated",
		"batch_id", b.ID,
		"produced", len(b.Problems),
		"requested", b.Requested,
		"attempts", b.Attempts,
		"budget", b.Budget,
		"unsatisfiable", b.Rejections[ReasonUnsatisfiable],
		"duplicate", b.Rejections[ReasonDuplicate],
		"invalid", b.Rejections[ReasonInvalid],
	)
	return b
}

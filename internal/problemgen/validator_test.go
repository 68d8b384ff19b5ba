package problemgen

import (
	"testing"

	"github.com/abhisek/harjutus/internal/config"
)

func validProblem() *Problem {
	return &Problem{
		Kind:    KindArithmetic,
		Op:      OpAdd,
		Left:    Expr{X: 4, Op: OpAdd, Y: 3},
		Value:   7,
		Unknown: RoleZ,
		Text:    "4 + 3 = _",
		Answer:  "7",
	}
}

func validComplex() *Problem {
	return &Problem{
		Kind:    KindComplexComparison,
		Op:      OpLt,
		Left:    Expr{X: 9, Op: OpSub, Y: 3},
		Right:   &Expr{X: 2, Op: OpAdd, Y: 5},
		Unknown: RoleOperator,
		Text:    "9 - 3 _ 2 + 5",
		Answer:  "<",
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	want := []string{"structural", "bounds", "math-check"}
	if len(cfg.Validators) != len(want) {
		t.Fatalf("got %d validators, want %d", len(cfg.Validators), len(want))
	}
	for i, v := range cfg.Validators {
		if v.Name() != want[i] {
			t.Errorf("validator %d: got %q, want %q", i, v.Name(), want[i])
		}
	}
	if cfg.AttemptBudget != 1000 {
		t.Errorf("got attempt budget %d, want 1000", cfg.AttemptBudget)
	}
	if cfg.ComparisonOnlyAttemptBudget != 10000 {
		t.Errorf("got comparison-only budget %d, want 10000", cfg.ComparisonOnlyAttemptBudget)
	}
}

func TestValidators_AcceptValid(t *testing.T) {
	for _, p := range []*Problem{validProblem(), validComplex()} {
		if err := Validate(p, config.Default(), DefaultConfig().Validators...); err != nil {
			t.Errorf("%q: expected nil, got %v", p.Text, err)
		}
	}
}

func TestStructural(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Problem)
	}{
		{"unknown kind", func(p *Problem) { p.Kind = "puzzle" }},
		{"relation on arithmetic", func(p *Problem) { p.Op = OpEq }},
		{"operator mismatch", func(p *Problem) { p.Op = OpSub }},
		{"right side on arithmetic", func(p *Problem) { p.Right = &Expr{X: 1, Op: OpAdd, Y: 1} }},
		{"role of another kind", func(p *Problem) { p.Unknown = RoleLeftX }},
		{"empty text", func(p *Problem) { p.Text = "" }},
		{"no placeholder", func(p *Problem) { p.Text = "4 + 3 = 7" }},
		{"two placeholders", func(p *Problem) { p.Text = "_ + 3 = _" }},
		{"empty answer", func(p *Problem) { p.Answer = "" }},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem()
			tt.mutate(p)
			err := v.Validate(p, config.Default())
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Validator != "structural" {
				t.Errorf("got validator %q, want %q", err.Validator, "structural")
			}
		})
	}
}

func TestStructural_ComplexNeedsRight(t *testing.T) {
	p := validComplex()
	p.Right = nil
	if err := (&StructuralValidator{}).Validate(p, config.Default()); err == nil {
		t.Fatal("expected error for missing right-hand expression")
	}
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Problem)
	}{
		{"operand above max", func(p *Problem) { p.Left.X = 11; p.Value = 14 }},
		{"operand below min", func(p *Problem) { p.Left.Y = 0; p.Value = 4 }},
		{"sum above maximum", func(p *Problem) { p.Left = Expr{X: 9, Op: OpAdd, Y: 8}; p.Value = 17 }},
		{"wrong value", func(p *Problem) { p.Value = 8 }},
		{"difference below minimum", func(p *Problem) {
			p.Op, p.Left, p.Value = OpSub, Expr{X: 3, Op: OpSub, Y: 3}, 0
		}},
		{"product above maximum", func(p *Problem) {
			p.Op, p.Left, p.Value = OpMul, Expr{X: 10, Op: OpMul, Y: 10}, 100
		}},
		{"inexact division", func(p *Problem) {
			p.Op, p.Left, p.Value = OpDiv, Expr{X: 7, Op: OpDiv, Y: 2}, 3
		}},
	}

	cfg := config.Validate(map[string]any{"maximum_product": 99})
	v := &BoundsValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProblem()
			tt.mutate(p)
			err := v.Validate(p, cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Validator != "bounds" {
				t.Errorf("got validator %q, want %q", err.Validator, "bounds")
			}
		})
	}
}

func TestBounds_ComplexRelation(t *testing.T) {
	p := validComplex()
	p.Op = OpGt
	if err := (&BoundsValidator{}).Validate(p, config.Default()); err == nil {
		t.Fatal("expected error for a relation that does not hold")
	}
}

func TestMathCheck(t *testing.T) {
	tests := []struct {
		text   string
		answer string
		ok     bool
	}{
		{"4 + 3 = _", "7", true},
		{"4 + 3 = _", "8", false},
		{"_ - 3 = 6", "9", true},
		{"2 * _ = 10", "5", true},
		{"_ / 3 = 2", "6", true},
		{"_ / 4 = 2", "9", false},
		{"4 + 3 _ 5", ">", true},
		{"4 + 3 _ 5", "<", false},
		{"9 - 3 _ 2 + 5", "<", true},
		{"9 - 3 < _ + 5", "2", true},
		{"9 - 3 < _ + 5", "1", false},
		{"4 + 3 = 7", "7", false},
		{"what is _", "7", false},
	}

	v := &MathCheckValidator{}
	for _, tt := range tests {
		p := &Problem{Text: tt.text, Answer: tt.answer}
		err := v.Validate(p, config.Default())
		if tt.ok && err != nil {
			t.Errorf("%q with %q: expected nil, got %v", tt.text, tt.answer, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%q with %q: expected error", tt.text, tt.answer)
		}
	}
}

type failingValidator struct{ name string }

func (f failingValidator) Name() string { return f.name }

func (f failingValidator) Validate(*Problem, config.Config) *ValidationError {
	return &ValidationError{Validator: f.name, Message: "always fails"}
}

func TestValidate_FirstFailureWins(t *testing.T) {
	err := Validate(validProblem(), config.Default(),
		&StructuralValidator{},
		failingValidator{"first"},
		failingValidator{"second"},
	)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Validator != "first" {
		t.Errorf("got validator %q, want %q", err.Validator, "first")
	}
	if want := `validator "first": always fails`; err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}

package problemgen

import (
	"testing"

	"github.com/abhisek/harjutus/internal/config"
	"github.com/abhisek/harjutus/internal/rng"
	"github.com/abhisek/harjutus/internal/rng/rngtest"
)

// equalSidesScript draws a complex comparison of 4 + 3 against 2 + 5 and
// masks the relation.
func equalSidesScript() *rngtest.Scripted {
	return rngtest.New(
		0, 0, // both sides use +
		2, 3, // left: y = 3, x = 4
		4, 1, // right: y = 5, x = 2
		4, // mask the relation
	).WithFloats(0.1)
}

func TestComplexComparison_InfersEquality(t *testing.T) {
	for _, requested := range ComparisonOperators() {
		t.Run(string(requested), func(t *testing.T) {
			p, err := Synthesize(equalSidesScript(), requested, config.Default(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Kind != KindComplexComparison {
				t.Fatalf("got kind %q, want %q", p.Kind, KindComplexComparison)
			}
			if p.Op != OpEq {
				t.Errorf("got relation %q, want %q", p.Op, OpEq)
			}
			if p.Text != "4 + 3 _ 2 + 5" {
				t.Errorf("got text %q, want %q", p.Text, "4 + 3 _ 2 + 5")
			}
			if p.Answer != "=" {
				t.Errorf("got answer %q, want %q", p.Answer, "=")
			}
			if p.Unknown != RoleOperator {
				t.Errorf("got role %q, want %q", p.Unknown, RoleOperator)
			}
		})
	}
}

func TestComplexComparison_MasksOperand(t *testing.T) {
	src := rngtest.New(1, 0, 2, 5, 4, 1, 2).WithFloats(0.2)

	p, err := Synthesize(src, OpLt, config.Default(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// left: y = 3, x in [4, 10] -> 9, so 9 - 3 = 6; right: 2 + 5 = 7.
	if p.Text != "9 - 3 < _ + 5" {
		t.Errorf("got text %q, want %q", p.Text, "9 - 3 < _ + 5")
	}
	if p.Answer != "2" {
		t.Errorf("got answer %q, want %q", p.Answer, "2")
	}
	if p.Unknown != RoleRightA {
		t.Errorf("got role %q, want %q", p.Unknown, RoleRightA)
	}
}

func TestSimpleComparison_Scripted(t *testing.T) {
	tests := []struct {
		name     string
		rel      Operator
		ints     []int
		wantText string
		wantAns  string
	}{
		// 4 + 3 = 7, constant equals the result, mask x
		{"equal", OpEq, []int{0, 2, 3, 0}, "_ + 3 = 7", "4"},
		// 4 + 3 = 7, constant in [1, 6] -> 5, mask relation
		{"greater", OpGt, []int{0, 2, 3, 4, 2}, "4 + 3 _ 5", ">"},
		// 9 - 3 = 6, constant in [7, 15] -> 9, mask y
		{"less", OpLt, []int{1, 2, 5, 2, 1}, "9 - _ < 9", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := rngtest.New(tt.ints...).WithFloats(0.9)
			p, err := Synthesize(src, tt.rel, config.Default(), nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Kind != KindSimpleComparison || p.Op != tt.rel {
				t.Fatalf("got %s %q, want simple %q", p.Kind, p.Op, tt.rel)
			}
			if p.Text != tt.wantText {
				t.Errorf("got text %q, want %q", p.Text, tt.wantText)
			}
			if p.Answer != tt.wantAns {
				t.Errorf("got answer %q, want %q", p.Answer, tt.wantAns)
			}
		})
	}
}

func TestSimpleComparison_NoConstantBelowMinimum(t *testing.T) {
	cfg := config.Validate(map[string]any{"min_integer": 2, "max_integer": 3, "maximum_sum": 10})

	// side "-": y = 2, x = 3, and the result 1 leaves no constant in [2, 0].
	src := rngtest.New(1, 0, 0).WithFloats(0.9)
	_, err := Synthesize(src, OpGt, cfg, nil)
	r, ok := err.(*Rejection)
	if !ok {
		t.Fatalf("expected *Rejection, got %v", err)
	}
	if r.Reason != ReasonUnsatisfiable || r.Op != OpGt {
		t.Errorf("got %s/%s, want %s/%s", r.Op, r.Reason, OpGt, ReasonUnsatisfiable)
	}
}

func TestSubtrahendMaskable(t *testing.T) {
	tests := []struct {
		rel    Operator
		x, c   int
		lo, hi int
		want   bool
	}{
		{OpGt, 9, 5, 1, 10, true},
		{OpGt, 6, 5, 1, 10, false},
		{OpGt, 5, 5, 1, 10, false},
		{OpLt, 9, 5, 1, 10, true},
		{OpLt, 15, 5, 1, 10, false},
		{OpEq, 1, 9, 1, 10, true},
	}

	for _, tt := range tests {
		got := subtrahendMaskable(tt.rel, tt.x, tt.c, tt.lo, tt.hi)
		if got != tt.want {
			t.Errorf("subtrahendMaskable(%s, x=%d, c=%d, [%d, %d]) = %v, want %v",
				tt.rel, tt.x, tt.c, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRelate(t *testing.T) {
	tests := []struct {
		a, b int
		want Operator
	}{
		{7, 7, OpEq},
		{8, 7, OpGt},
		{6, 7, OpLt},
	}

	for _, tt := range tests {
		if got := relate(tt.a, tt.b); got != tt.want {
			t.Errorf("relate(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestComparison_AlwaysValid(t *testing.T) {
	cfg := config.Validate(map[string]any{
		"addition_allowed":    false,
		"subtraction_allowed": false,
		"comparison_allowed":  true,
	})
	validators := DefaultConfig().Validators
	src := rng.NewSeeded(2024)
	kinds := map[Kind]int{}

	for i := 0; i < 3000; i++ {
		op := rng.Choice(src, ComparisonOperators())
		p, err := Synthesize(src, op, cfg, nil)
		if err != nil {
			if !IsRejection(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			continue
		}
		kinds[p.Kind]++
		if verr := Validate(&p, cfg, validators...); verr != nil {
			t.Fatalf("%q: %v", p.Text, verr)
		}
		if p.Kind == KindSimpleComparison && p.Op != op {
			t.Fatalf("%q: simple comparison changed relation %q to %q", p.Text, op, p.Op)
		}
		if p.Kind == KindComplexComparison {
			if want := relate(p.Left.Value(), p.Right.Value()); p.Op != want {
				t.Fatalf("%q: shows %q, sides relate by %q", p.Text, p.Op, want)
			}
		}
	}

	if kinds[KindSimpleComparison] == 0 || kinds[KindComplexComparison] == 0 {
		t.Errorf("expected both comparison kinds, got %v", kinds)
	}
}

package gilsat_test

import (
	"testing"

	"github.com/gilsat/gilsat"
)

func TestExprString(t *testing.T) {
	x := &gilsat.LVar{Name: "x"}

	for _, tt := range []struct {
		expr gilsat.Expr
		want string
	}{
		{gilsat.NewLitExpr(gilsat.NewInt(42)), "42"},
		{gilsat.NewLitExpr(&gilsat.Str{Value: "hi"}), `"hi"`},
		{gilsat.NewLitExpr(&gilsat.LList{Values: []gilsat.Literal{gilsat.NewInt(1), &gilsat.Bool{Value: true}}}), "{{1, true}}"},
		{gilsat.NewLitExpr(gilsat.NewBitVec(5, 8)), "5#8"},
		{gilsat.NewUnaryExpr(gilsat.LSTLEN, x), "(l-len x)"},
		{gilsat.NewBinaryExpr(gilsat.LSTREPEAT, x, gilsat.NewLitExpr(gilsat.NewInt(3))), "(l-repeat x 3)"},
		{gilsat.NewNAryExpr(gilsat.ESET, x, gilsat.NewLitExpr(gilsat.NewInt(1))), "(s x 1)"},
		{gilsat.NewBvExpr(gilsat.BVADD, 32, x, x), "(bvadd:32 x x)"},
		{gilsat.NewBvExpr(gilsat.BVULT, 8, x, x), "(bvult:8 x x)"},
	} {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Fatalf("String()=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestTypeEqual(t *testing.T) {
	if !gilsat.TBitvector(8).Equal(gilsat.TBitvector(8)) {
		t.Fatal("equal-width bitvector types compare unequal")
	}
	if gilsat.TBitvector(8).Equal(gilsat.TBitvector(16)) {
		t.Fatal("different-width bitvector types compare equal")
	}
	if gilsat.TInt.Equal(gilsat.TNumber) {
		t.Fatal("Int compares equal to Num")
	}
}

func TestBvOpIsCompare(t *testing.T) {
	if gilsat.BVADD.IsCompare() {
		t.Fatal("bvadd reported as comparison")
	}
	if !gilsat.BVSLT.IsCompare() {
		t.Fatal("bvslt not reported as comparison")
	}
}

package main

import (
	"bytes"
	"errors"
	"testing"

	num "github.com/shabbyrobe/go-bignum"
	"github.com/shabbyrobe/golib/assert"
)

func TestCalcEval(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"1 2 + p", "3\n"},
		{"1/2 1/3 + p", "5/6\n"},
		{"1/2 1/3 - p", "1/6\n"},
		{"2/3 9/4 * p", "3/2\n"},
		{"1 3 / p", "1/3\n"},
		{"1 3 / f", "0.33333\n"},
		{"-22 7 / f", "-3.14285\n"},
		{"-7 2 % p", "1\n"},
		{"7 -2 % p", "-1\n"},
		{"3/4 n p", "-3/4\n"},
		{"3/4 r p", "4/3\n"},
		{"2 d * p", "4\n"},
		{"1 2 s - p", "1\n"},
		{"1 2 c 5 p", "5\n"},
		{"p", ""},
	} {
		t.Run(tc.in, func(t *testing.T) {
			tt := assert.WrapTB(t)
			var buf bytes.Buffer
			c := newCalc(&buf, 5)
			err := c.evalLine(tc.in)
			if tc.out == "" {
				tt.MustAssert(errors.Is(err, errStackEmpty))
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, buf.String())
		})
	}
}

func TestCalcErrors(t *testing.T) {
	tt := assert.WrapTB(t)

	c := newCalc(&bytes.Buffer{}, 5)
	tt.MustAssert(errors.Is(c.evalLine("1 0 /"), num.ErrDivideByZero))
	tt.MustAssert(errors.Is(c.evalLine("c 0 r"), num.ErrDivideByZero))
	tt.MustAssert(errors.Is(c.evalLine("c 1/2 1 %"), num.ErrInvalidArgument))
	tt.MustAssert(errors.Is(c.evalLine("c 4 0 %"), num.ErrDivideByZero))
	tt.MustAssert(errors.Is(c.evalLine("c banana"), num.ErrInvalidArgument))
	tt.MustAssert(errors.Is(c.evalLine("c 1 +"), errStackEmpty))
	tt.MustAssert(errors.Is(c.evalLine("c 1 s"), errStackEmpty))

	// Operands stay put when an operator fails.
	c.evalLine("c 1 0 /")
	tt.MustEqual(2, len(c.stack))
}

func TestCalcApproximate(t *testing.T) {
	tt := assert.WrapTB(t)

	var buf bytes.Buffer
	c := newCalc(&buf, 5)
	tt.MustOK(c.evalLine("554597137599850363154807652357 237684487542793012780631851009 / a p"))
	tt.MustEqual("7/3\n", buf.String())
}

func TestEvalReader(t *testing.T) {
	tt := assert.WrapTB(t)

	var buf bytes.Buffer
	c := newCalc(&buf, 3)
	failed := evalReader(c, bytes.NewBufferString("1 2 +\n3 *\np\nx\n0 r\nf\n"))
	tt.MustEqual(2, failed)
	tt.MustEqual("9\n0.000\n", buf.String())
}

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	num "github.com/shabbyrobe/go-bignum"
)

// calc is a postfix calculator over exact rationals. Literals are pushed,
// operators pop their operands and push the result.
type calc struct {
	stack  []num.Rat
	digits int
	out    io.Writer
}

func newCalc(out io.Writer, digits int) *calc {
	return &calc{out: out, digits: digits}
}

// evalLine evaluates each whitespace-separated token in line. Evaluation
// stops at the first failing token; the stack keeps whatever was pushed
// before it.
func (c *calc) evalLine(line string) error {
	for _, tok := range strings.Fields(line) {
		if err := c.eval(tok); err != nil {
			return fmt.Errorf("numcalc: token %q: %w", tok, err)
		}
	}
	return nil
}

func (c *calc) eval(tok string) error {
	switch tok {
	case "+", "-", "*", "/", "%":
		return c.binary(tok)

	case "n":
		return c.unary(func(r num.Rat) (num.Rat, error) { return r.Neg(), nil })
	case "r":
		return c.unary(num.Rat.Reciprocal)
	case "a":
		return c.unary(func(r num.Rat) (num.Rat, error) { return r.Approximate(0), nil })

	case "p":
		top, err := c.peek()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, top)
	case "f":
		top, err := c.peek()
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, top.Decimal(c.digits))

	case "c":
		c.stack = c.stack[:0]
	case "d":
		top, err := c.peek()
		if err != nil {
			return err
		}
		c.push(top)
	case "s":
		if len(c.stack) < 2 {
			return errStackEmpty
		}
		n := len(c.stack)
		c.stack[n-1], c.stack[n-2] = c.stack[n-2], c.stack[n-1]

	default:
		r, err := num.RatFromString(tok)
		if err != nil {
			return err
		}
		c.push(r)
	}
	return nil
}

var errStackEmpty = errors.New("stack empty")

func (c *calc) push(r num.Rat) { c.stack = append(c.stack, r) }

func (c *calc) peek() (num.Rat, error) {
	if len(c.stack) == 0 {
		return num.Rat{}, errStackEmpty
	}
	return c.stack[len(c.stack)-1], nil
}

func (c *calc) pop() (num.Rat, error) {
	top, err := c.peek()
	if err != nil {
		return top, err
	}
	c.stack = c.stack[:len(c.stack)-1]
	return top, nil
}

func (c *calc) unary(fn func(num.Rat) (num.Rat, error)) error {
	top, err := c.peek()
	if err != nil {
		return err
	}
	out, err := fn(top)
	if err != nil {
		return err
	}
	c.stack[len(c.stack)-1] = out
	return nil
}

func (c *calc) binary(op string) error {
	if len(c.stack) < 2 {
		return errStackEmpty
	}
	n := len(c.stack)
	x, y := c.stack[n-2], c.stack[n-1]

	var out num.Rat
	var err error
	switch op {
	case "+":
		out = x.Add(y)
	case "-":
		out = x.Sub(y)
	case "*":
		out = x.Mul(y)
	case "/":
		out, err = x.Quo(y)
	case "%":
		out, err = ratMod(x, y)
	}
	if err != nil {
		return err
	}

	c.stack = append(c.stack[:n-2], out)
	return nil
}

// ratMod is the floored modulus of two integers; the result takes the sign of
// y.
func ratMod(x, y num.Rat) (num.Rat, error) {
	if !x.IsInt() || !y.IsInt() {
		return num.Rat{}, fmt.Errorf("%s %% %s: operands must be integers: %w", x, y, num.ErrInvalidArgument)
	}
	xi := num.IBigFromUBig(x.Num(), x.IsNeg())
	yi := num.IBigFromUBig(y.Num(), y.IsNeg())
	r, err := xi.Rem(yi)
	if err != nil {
		return num.Rat{}, err
	}
	return num.RatFromIBig(r), nil
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sjmudd/stopwatch"
	"github.com/spf13/pflag"
)

const usage = `Exact rational RPN calculator

Usage: numcalc [options] [file...]

Reads expressions from each -e flag, then each file, or stdin if neither is
given. Tokens:

  12 -3 1/3     push a literal
  + - * /       arithmetic on the top two values
  %             floored modulus of the top two integers
  n r a         negate, reciprocal, approximate the top value
  p f           print the top value as a fraction or as a decimal
  c d s         clear the stack, duplicate or swap the top values

Options:
`

var (
	digits = pflag.IntP("digits", "D", 20, "Digits after the decimal point for 'f'")
	exprs  = pflag.StringArrayP("expr", "e", nil, "Expression to evaluate, may be repeated")
	dump   = pflag.Bool("dump", false, "Dump the internal representation of the stack when done")
	timing = pflag.Bool("timing", false, "Report time spent evaluating and printing")
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	log.SetFlags(0)
	pflag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		pflag.PrintDefaults()
	}
	pflag.Parse()

	latency := stopwatch.NewNamedStopwatch()
	if err := latency.AddMany([]string{"eval", "dump"}); err != nil {
		return err
	}

	c := newCalc(os.Stdout, *digits)

	latency.Start("eval")
	failed := 0
	for _, expr := range *exprs {
		if err := c.evalLine(expr); err != nil {
			log.Println(err)
			failed++
		}
	}

	files := pflag.Args()
	if len(files) == 0 && len(*exprs) == 0 {
		failed += evalReader(c, os.Stdin)
	}
	for _, name := range files {
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		failed += evalReader(c, f)
		f.Close()
	}
	latency.Stop("eval")

	if *dump {
		latency.Start("dump")
		spew.Fdump(os.Stdout, c.stack)
		latency.Stop("dump")
	}

	if *timing {
		log.Printf("eval: %s", latency.Elapsed("eval"))
		if *dump {
			log.Printf("dump: %s", latency.Elapsed("dump"))
		}
	}

	if failed > 0 {
		return fmt.Errorf("numcalc: %d expression(s) failed", failed)
	}
	return nil
}

// evalReader evaluates rd line by line, logging failures and carrying on with
// the next line. It returns the number of lines that failed.
func evalReader(c *calc, rd io.Reader) (failed int) {
	scn := bufio.NewScanner(rd)
	for scn.Scan() {
		if err := c.evalLine(scn.Text()); err != nil {
			log.Println(err)
			failed++
		}
	}
	if err := scn.Err(); err != nil {
		log.Println(err)
		failed++
	}
	return failed
}

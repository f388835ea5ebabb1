// Command vecinspect builds a source vector, wraps it in a chain of lazy
// views and prints the inspection tree before and after forcing.
//
// Usage:
//
//	vecinspect [flags]
//
// Examples:
//
//	vecinspect -n 8 -chain abs,sqrt
//	vecinspect -borrow -chain scale=2,clamp=-1:1 -force
//	vecinspect -v -force -chain square
//	vecinspect -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-altvec/transform"
	"github.com/cwbudde/algo-altvec/vector"
	"go.uber.org/zap"
)

func main() {
	n := flag.Int("n", 8, "source length")
	seed := flag.Int64("seed", 1, "seed for the source values")
	chain := flag.String("chain", "abs", "comma-separated transforms, innermost first")
	force := flag.Bool("force", false, "materialize the outermost view")
	borrow := flag.Bool("borrow", false, "borrow the source slice instead of owning a copy")
	show := flag.Int("show", 8, "number of values to print")
	verbose := flag.Bool("v", false, "debug logging")
	list := flag.Bool("list", false, "list available transforms")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: vecinspect [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Builds lazy vector views and prints their state.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *list {
		printTransforms(os.Stdout)
		return
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "vecinspect: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		vector.SetLogger(logger)
	}

	fns, err := parseChain(*chain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vecinspect: %v\n", err)
		os.Exit(2)
	}
	if *n < 0 {
		fmt.Fprintf(os.Stderr, "vecinspect: negative length %d\n", *n)
		os.Exit(2)
	}

	cfg := config{
		values: sourceValues(*seed, *n),
		chain:  fns,
		force:  *force,
		borrow: *borrow,
		show:   *show,
	}
	if err := run(os.Stdout, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "vecinspect: %v\n", err)
		os.Exit(1)
	}
}

type config struct {
	values []float64
	chain  []transform.Transform
	force  bool
	borrow bool
	show   int
}

func run(w io.Writer, cfg config) error {
	var src *vector.Handle
	if cfg.borrow {
		src = vector.Borrow(cfg.values)
	} else {
		src = vector.OwnedFrom(cfg.values).Handle
	}

	top := src
	for _, fn := range cfg.chain {
		top = vector.NewLazy(top, fn).Handle
	}

	fmt.Fprintf(w, "kernels: %s\n\n", transform.KernelName())
	if err := vector.Inspect(w, top); err != nil {
		return err
	}

	if cfg.force {
		top.Data()
		fmt.Fprintln(w)
		if err := vector.Inspect(w, top); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "i\tsource\tresult")
	for i := range min(cfg.show, top.Len()) {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\n", i, src.At(i), top.At(i))
	}
	return tw.Flush()
}

func sourceValues(seed int64, n int) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*4 - 2
	}
	return out
}

func printTransforms(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "name\tblock kernel")
	for _, e := range fixedTransforms {
		fmt.Fprintf(tw, "%s\t%t\n", e.name, e.fn.Block != nil)
	}
	for _, p := range paramTransforms {
		fmt.Fprintf(tw, "%s\t%t\n", p.usage, true)
	}
	_ = tw.Flush()
}

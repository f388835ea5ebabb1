package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-altvec/transform"
)

type fixedEntry struct {
	name string
	fn   transform.Transform
}

var fixedTransforms = []fixedEntry{
	{"identity", transform.Identity},
	{"abs", transform.Abs},
	{"negate", transform.Negate},
	{"square", transform.Square},
	{"sqrt", transform.Sqrt},
	{"exp", transform.Exp},
	{"log", transform.Log},
	{"fastexp", transform.FastExp},
	{"fastlog", transform.FastLog},
	{"fastsqrt", transform.FastSqrt},
}

type paramEntry struct {
	name  string
	usage string
	parse func(arg string) (transform.Transform, error)
}

var paramTransforms = []paramEntry{
	{"scale", "scale=K", func(arg string) (transform.Transform, error) {
		k, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return transform.Transform{}, err
		}
		return transform.Scale(k), nil
	}},
	{"offset", "offset=C", func(arg string) (transform.Transform, error) {
		c, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return transform.Transform{}, err
		}
		return transform.Offset(c), nil
	}},
	{"clamp", "clamp=LO:HI", func(arg string) (transform.Transform, error) {
		loStr, hiStr, ok := strings.Cut(arg, ":")
		if !ok {
			return transform.Transform{}, fmt.Errorf("want LO:HI, got %q", arg)
		}
		lo, err := strconv.ParseFloat(loStr, 64)
		if err != nil {
			return transform.Transform{}, err
		}
		hi, err := strconv.ParseFloat(hiStr, 64)
		if err != nil {
			return transform.Transform{}, err
		}
		if lo > hi {
			return transform.Transform{}, fmt.Errorf("clamp bounds inverted: %g > %g", lo, hi)
		}
		return transform.Clamp(lo, hi), nil
	}},
}

// parseChain parses a comma-separated list such as "abs,scale=2".
// An empty string yields an empty chain.
func parseChain(s string) ([]transform.Transform, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []transform.Transform
	for _, part := range strings.Split(s, ",") {
		fn, err := parseTransform(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, fn)
	}
	return out, nil
}

func parseTransform(s string) (transform.Transform, error) {
	name, arg, hasArg := strings.Cut(strings.ToLower(s), "=")

	if !hasArg {
		for _, e := range fixedTransforms {
			if e.name == name {
				return e.fn, nil
			}
		}
	}
	for _, p := range paramTransforms {
		if p.name != name {
			continue
		}
		if !hasArg {
			return transform.Transform{}, fmt.Errorf("transform %q needs an argument (%s)", name, p.usage)
		}
		fn, err := p.parse(arg)
		if err != nil {
			return transform.Transform{}, fmt.Errorf("transform %q: %w", name, err)
		}
		return fn, nil
	}
	return transform.Transform{}, fmt.Errorf("unknown transform %q", s)
}

package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"rebar/codegen"
	"rebar/direct"
	"rebar/dry"
	"rebar/prog"
	"rebar/types"
)

// Result is the outcome of one case
type Result struct {
	Case   Case
	Passed bool
	Err    error
}

// RunSuite runs every case of a suite
func RunSuite(s *Suite) []Result {
	results := make([]Result, 0, len(s.Tests))
	for _, c := range s.Tests {
		err := RunCase(c)
		results = append(results, Result{Case: c, Passed: err == nil, Err: err})
	}
	return results
}

// RunCase checks one case against all three interpreters.
// Programs are rebuilt per pass: placeholders are per-run state.
func RunCase(c Case) error {
	build, ok := Examples[c.Program]
	if !ok {
		return fmt.Errorf("unknown example program %q", c.Program)
	}

	// Dry run twice with fresh namers: the sequences must agree
	// with each other, and with the expectation when given.
	first, err := dry.New(prog.NewNamer()).Run(build())
	if err != nil {
		return fmt.Errorf("dry run: %w", err)
	}
	second, err := dry.New(prog.NewNamer()).Run(build())
	if err != nil {
		return fmt.Errorf("dry run: %w", err)
	}
	if !equalNames(first, second) {
		return fmt.Errorf("dry run is not deterministic: %v vs %v", first, second)
	}
	if len(c.Expect.Names) > 0 && !equalNames(first, c.Expect.Names) {
		return fmt.Errorf("dry run names: got %v, want %v", first, c.Expect.Names)
	}

	// Direct execution against captured stdio
	var out bytes.Buffer
	runErr := direct.NewWithStdio(strings.NewReader(c.Stdin), &out).Run(build())
	if c.Expect.Error != "" {
		var re *types.RunError
		if runErr == nil {
			return fmt.Errorf("direct run: expected %s, got success", c.Expect.Error)
		}
		if !errors.As(runErr, &re) || re.Code.String() != c.Expect.Error {
			return fmt.Errorf("direct run: expected %s, got %v", c.Expect.Error, runErr)
		}
	} else {
		if runErr != nil {
			return fmt.Errorf("direct run: %w", runErr)
		}
		if out.String() != c.Expect.Output {
			return fmt.Errorf("direct run output: got %q, want %q", out.String(), c.Expect.Output)
		}
	}

	// Code generation
	unit := codegen.NewUnit("main", prog.NewNamer())
	if err := codegen.New(unit).Run(build()); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}
	source := unit.Source()
	for _, want := range c.Expect.SourceContains {
		if !strings.Contains(source, want) {
			return fmt.Errorf("generated source is missing %q:\n%s", want, source)
		}
	}
	return nil
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"rebar/codegen"
	"rebar/conformance"
	"rebar/direct"
	"rebar/dry"
	"rebar/prog"
	"rebar/trace"
)

// Options configures code generation, loadable from a YAML file
type Options struct {
	Function string   `yaml:"function,omitempty"` // generated function name (default main)
	Includes []string `yaml:"includes,omitempty"` // headers registered up front
}

func loadOptions(path string) (*Options, error) {
	opts := &Options{Function: "main"}
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if opts.Function == "" {
		opts.Function = "main"
	}
	return opts, nil
}

func main() {
	list := flag.Bool("list", false, "List registered example programs")
	example := flag.String("example", "", "Example program to interpret")
	mode := flag.String("mode", "run", "Interpretation mode: names, run, or gen")
	optsPath := flag.String("opts", "", "YAML file with code generation options")
	output := flag.String("o", "", "Write generated source to a file instead of stdout")

	traceEnabled := flag.Bool("trace", false, "Enable execution tracing")
	traceFilter := flag.String("trace-filter", "", "Trace filter patterns, comma separated (e.g. 'F*,SetRef')")

	flag.Parse()

	if *list {
		for _, name := range conformance.Names() {
			fmt.Println(name)
		}
		return
	}

	if *example == "" {
		flag.Usage()
		os.Exit(2)
	}
	build, ok := conformance.Examples[*example]
	if !ok {
		log.Fatalf("unknown example %q (use -list)", *example)
	}
	program := build()

	switch *mode {
	case "names":
		names, err := dry.New(prog.NewNamer()).Run(program)
		if err != nil {
			log.Fatalf("dry run failed: %v", err)
		}
		for _, name := range names {
			fmt.Println(name)
		}

	case "run":
		interp := direct.New()
		if *traceEnabled {
			var filters []string
			if *traceFilter != "" {
				filters = strings.Split(*traceFilter, ",")
			}
			interp.SetTracer(trace.New(true, filters, nil))
		}
		if err := interp.Run(program); err != nil {
			log.Fatalf("run failed: %v", err)
		}

	case "gen":
		opts, err := loadOptions(*optsPath)
		if err != nil {
			log.Fatalf("loading options: %v", err)
		}
		unit := codegen.NewUnit(opts.Function, prog.NewNamer())
		for _, inc := range opts.Includes {
			unit.Include(inc)
		}
		if err := codegen.New(unit).Run(program); err != nil {
			log.Fatalf("code generation failed: %v", err)
		}
		source := unit.Source()
		if *output == "" {
			fmt.Print(source)
			return
		}
		if err := os.WriteFile(*output, []byte(source), 0o644); err != nil {
			log.Fatalf("writing %s: %v", *output, err)
		}

	default:
		log.Fatalf("unknown mode %q (want names, run, or gen)", *mode)
	}
}

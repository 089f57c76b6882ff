package conformance

// Suite represents a complete YAML test file
type Suite struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Tests       []Case `yaml:"tests"`
}

// Case runs one registered example program against expectations
type Case struct {
	Name    string      `yaml:"name"`
	Program string      `yaml:"program"`
	Stdin   string      `yaml:"stdin,omitempty"`
	Expect  Expectation `yaml:"expect"`
}

// Expectation defines what each interpreter should produce.
// Empty fields are not checked, except Output, which is compared
// whenever Error is empty.
type Expectation struct {
	Names          []string `yaml:"names,omitempty"`           // dry-run name sequence
	Output         string   `yaml:"output,omitempty"`          // direct-run stdout
	Error          string   `yaml:"error,omitempty"`           // direct-run error code (E_UNSUPPORTED, ...)
	SourceContains []string `yaml:"source_contains,omitempty"` // substrings of the generated C
}

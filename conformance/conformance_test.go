package conformance

import "testing"

func TestSuites(t *testing.T) {
	suites, err := LoadDir("testdata")
	if err != nil {
		t.Fatalf("loading suites: %v", err)
	}
	if len(suites) == 0 {
		t.Fatal("no suites found under testdata")
	}

	for _, suite := range suites {
		for _, result := range RunSuite(suite) {
			t.Run(suite.Name+"/"+result.Case.Name, func(t *testing.T) {
				if !result.Passed {
					t.Error(result.Err)
				}
			})
		}
	}
}

func TestUnknownProgram(t *testing.T) {
	err := RunCase(Case{Name: "bogus", Program: "no-such-program"})
	if err == nil {
		t.Fatal("expected an error for an unregistered program")
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(Examples) {
		t.Fatalf("expected %d names, got %d", len(Examples), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names out of order: %q before %q", names[i-1], names[i])
		}
	}
}

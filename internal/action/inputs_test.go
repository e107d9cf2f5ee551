package action

import (
	"errors"
	"testing"
)

func fakeEnv(values map[string]string) EnvInputs {
	return EnvInputs{lookupEnv: func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}}
}

func TestEnvInputsLookup(t *testing.T) {
	t.Parallel()

	in := fakeEnv(map[string]string{
		"INPUT_JOB-TYPE":           "refactor",
		"INPUT_TARGET_ENVIRONMENT": "production",
		"INPUT_MY_INPUT":           "spaced",
	})

	if v, ok := in.Lookup("job-type"); !ok || v != "refactor" {
		t.Fatalf("expected hyphenated key, got %q (%v)", v, ok)
	}
	if v, ok := in.Lookup("target-environment"); !ok || v != "production" {
		t.Fatalf("expected underscore fallback, got %q (%v)", v, ok)
	}
	if v, ok := in.Lookup("my input"); !ok || v != "spaced" {
		t.Fatalf("expected spaces to map to underscores, got %q (%v)", v, ok)
	}
	if _, ok := in.Lookup("has-interesting-changes"); ok {
		t.Fatalf("expected missing input")
	}
}

func TestEnvInputsReadsProcessEnvironment(t *testing.T) {
	t.Setenv("INPUT_JOB_TYPE", "docs")

	if v, ok := NewEnvInputs().Lookup("job-type"); !ok || v != "docs" {
		t.Fatalf("expected docs, got %q (%v)", v, ok)
	}
}

func TestGetInput(t *testing.T) {
	t.Parallel()

	in := MapInputs{"job-type": "  refactor \n", "empty": "   "}

	got, err := GetInput(in, "job-type", true)
	if err != nil || got != "refactor" {
		t.Fatalf("expected trimmed value, got %q, %v", got, err)
	}

	got, err = GetInput(in, "empty", true)
	if err != nil || got != "" {
		t.Fatalf("supplied empty input must not fail, got %q, %v", got, err)
	}

	if _, err := GetInput(in, "missing", true); !errors.Is(err, ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}

	got, err = GetInput(in, "missing", false)
	if err != nil || got != "" {
		t.Fatalf("optional missing input should be empty, got %q, %v", got, err)
	}
}

func TestGetInputOr(t *testing.T) {
	t.Parallel()

	in := MapInputs{"target-environment": " ", "has-interesting-changes": "true"}

	if got := GetInputOr(in, "target-environment", "unknown"); got != "unknown" {
		t.Fatalf("expected fallback for blank input, got %q", got)
	}
	if got := GetInputOr(in, "missing", "unknown"); got != "unknown" {
		t.Fatalf("expected fallback for missing input, got %q", got)
	}
	if got := GetInputOr(in, "has-interesting-changes", "unknown"); got != "true" {
		t.Fatalf("expected supplied value, got %q", got)
	}
}

func TestChainFirstHitWins(t *testing.T) {
	t.Parallel()

	chain := Chain{nil, MapInputs{"job-type": "flag"}, MapInputs{"job-type": "env", "other": "x"}}

	if v, _ := chain.Lookup("job-type"); v != "flag" {
		t.Fatalf("expected first source to win, got %q", v)
	}
	if v, ok := chain.Lookup("other"); !ok || v != "x" {
		t.Fatalf("expected later source to be consulted, got %q (%v)", v, ok)
	}
	if _, ok := chain.Lookup("absent"); ok {
		t.Fatalf("expected miss")
	}
}

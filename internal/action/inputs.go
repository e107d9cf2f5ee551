package action

import (
	"fmt"
	"os"
	"strings"

	"github.com/sethvargo/go-githubactions"
)

// Inputs exposes step inputs by name.
type Inputs interface {
	Lookup(name string) (string, bool)
}

// EnvInputs reads inputs the way the runner passes them (INPUT_ followed by
// the upper-cased name). Hyphenated names are also looked up with underscores
// so shells can set them.
type EnvInputs struct {
	lookupEnv func(string) (string, bool)
}

// NewEnvInputs reads from the process environment.
func NewEnvInputs() EnvInputs {
	return EnvInputs{lookupEnv: os.LookupEnv}
}

// Lookup implements Inputs. The value is read through githubactions; the
// wrapped getenv only records whether the variable was set at all.
func (e EnvInputs) Lookup(name string) (string, bool) {
	lookup := e.lookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	var found bool
	gha := githubactions.New(githubactions.WithGetenv(func(key string) string {
		v, ok := lookup(key)
		if ok {
			found = true
		}
		return v
	}))

	if v := gha.GetInput(name); found {
		return v, true
	}
	if alt := strings.ReplaceAll(name, "-", "_"); alt != name {
		if v := gha.GetInput(alt); found {
			return v, true
		}
	}
	return "", false
}

// MapInputs serves inputs from a fixed map.
type MapInputs map[string]string

// Lookup implements Inputs.
func (m MapInputs) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// Chain consults each source in order and returns the first hit.
type Chain []Inputs

// Lookup implements Inputs.
func (c Chain) Lookup(name string) (string, bool) {
	for _, in := range c {
		if in == nil {
			continue
		}
		if v, ok := in.Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// GetInput returns the trimmed value of name. A required input that was not
// supplied at all yields ErrMissingInput; a supplied empty value is returned
// as "".
func GetInput(in Inputs, name string, required bool) (string, error) {
	v, ok := in.Lookup(name)
	if !ok && required {
		return "", fmt.Errorf("%w: %s", ErrMissingInput, name)
	}
	return strings.TrimSpace(v), nil
}

// GetInputOr returns the trimmed value of name, or fallback when it is empty.
func GetInputOr(in Inputs, name, fallback string) string {
	v, _ := GetInput(in, name, false)
	if v == "" {
		return fallback
	}
	return v
}

package agency

// Fields holds the values that describe a job. Any subset may be set in a
// job-type override; unset fields fall back to the defaults.
type Fields struct {
	TitleBase        string `json:"titleBase,omitempty"`
	SkillLevel       string `json:"skillLevel,omitempty"`
	DurationEstimate string `json:"durationEstimate,omitempty"`
	ShortDescription string `json:"shortDescription,omitempty"`
}

// Configuration is the parsed agency-config.json document.
type Configuration struct {
	Defaults Fields            `json:"defaults"`
	JobTypes map[string]Fields `json:"jobTypes"`
}

// Source identifies where a Configuration was loaded from.
type Source string

const (
	SourceWorkspace Source = "workspace"
	SourceBundled   Source = "bundled"
	SourceBuiltin   Source = "builtin"
)

// ConfigFileName is the file looked up in the workspace root.
const ConfigFileName = "agency-config.json"

var builtinDefaults = Fields{
	TitleBase:        "AI Agent",
	SkillLevel:       "Intermediate",
	DurationEstimate: "5-15 minutes",
	ShortDescription: "Automated task executed by an AI agent",
}

// BuiltinDefaults returns the hardcoded defaults used when no file is found.
func BuiltinDefaults() Fields {
	return builtinDefaults
}

// Builtin returns the minimal configuration with empty job types.
func Builtin() Configuration {
	return Configuration{
		Defaults: builtinDefaults,
		JobTypes: map[string]Fields{},
	}
}

// Lookup returns the override for jobType, if any.
func (c Configuration) Lookup(jobType string) (Fields, bool) {
	f, ok := c.JobTypes[jobType]
	return f, ok
}

// Or returns f with every empty field replaced by the matching field of fallback.
func (f Fields) Or(fallback Fields) Fields {
	out := f
	if out.TitleBase == "" {
		out.TitleBase = fallback.TitleBase
	}
	if out.SkillLevel == "" {
		out.SkillLevel = fallback.SkillLevel
	}
	if out.DurationEstimate == "" {
		out.DurationEstimate = fallback.DurationEstimate
	}
	if out.ShortDescription == "" {
		out.ShortDescription = fallback.ShortDescription
	}
	return out
}

// normalize completes the defaults from the built-in record and makes sure
// JobTypes is never nil.
func (c Configuration) normalize() Configuration {
	c.Defaults = c.Defaults.Or(builtinDefaults)
	if c.JobTypes == nil {
		c.JobTypes = map[string]Fields{}
	}
	return c
}

package title

const (
	// Unknown is the value of an optional input that was not provided.
	Unknown = "unknown"

	changeDrivenModifier = "Change-Driven"
	stableModifier       = "Stable"
)

// Request carries the pipeline inputs that shape a title.
type Request struct {
	JobType               string
	TargetEnvironment     string
	HasInterestingChanges string
}

// Metadata is the fully resolved result handed to the output sink.
type Metadata struct {
	Title            string
	SkillLevel       string
	DurationEstimate string
	ShortDescription string
}

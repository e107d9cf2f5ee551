package title

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eugenenazirov/agency-title/internal/agency"
)

// Builder resolves titles and metadata against an agency configuration.
type Builder struct {
	logger *zap.Logger
}

// NewBuilder creates a Builder that logs each resolved field.
func NewBuilder(logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{logger: logger}
}

// Build resolves every field of req with override-then-default fallback and
// formats the final title.
func (b *Builder) Build(req Request, cfg agency.Configuration) Metadata {
	override, ok := cfg.Lookup(req.JobType)
	if !ok && req.JobType != "" {
		b.logger.Warn(fmt.Sprintf("Job type %q not found in config. Using defaults.", req.JobType),
			zap.String("job_type", req.JobType),
		)
	}
	fields := override.Or(cfg.Defaults)

	targetEnvironment := orUnknown(req.TargetEnvironment)
	hasInterestingChanges := orUnknown(req.HasInterestingChanges)

	meta := Metadata{
		Title:            FormatTitle(fields.TitleBase, targetEnvironment, hasInterestingChanges),
		SkillLevel:       fields.SkillLevel,
		DurationEstimate: fields.DurationEstimate,
		ShortDescription: fields.ShortDescription,
	}

	b.logger.Info("resolved job metadata",
		zap.String("job_type", req.JobType),
		zap.String("title_base", fields.TitleBase),
		zap.String("target_environment", targetEnvironment),
		zap.String("has_interesting_changes", hasInterestingChanges),
		zap.String("skill_level", meta.SkillLevel),
		zap.String("duration_estimate", meta.DurationEstimate),
		zap.String("short_description", meta.ShortDescription),
	)
	b.logger.Info("Generated job title: " + meta.Title)

	return meta
}

func orUnknown(value string) string {
	if value == "" {
		return Unknown
	}
	return value
}

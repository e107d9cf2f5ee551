package logging

import (
	"go.uber.org/zap/zapcore"

	"github.com/eugenenazirov/agency-title/internal/action"
)

// AnnotationCore is a zapcore.Core that renders entries as workflow commands:
// debug as ::debug::, info as a plain line, warn as ::warning:: and anything
// above as ::error::. Only the message is rendered; structured fields stay in
// the JSON log.
type AnnotationCore struct {
	zapcore.LevelEnabler
	commands *action.Commands
}

// NewAnnotationCore creates an AnnotationCore writing through commands.
func NewAnnotationCore(commands *action.Commands, enab zapcore.LevelEnabler) *AnnotationCore {
	return &AnnotationCore{LevelEnabler: enab, commands: commands}
}

// With implements zapcore.Core.
func (c *AnnotationCore) With([]zapcore.Field) zapcore.Core {
	return c
}

// Check implements zapcore.Core.
func (c *AnnotationCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write implements zapcore.Core.
func (c *AnnotationCore) Write(ent zapcore.Entry, _ []zapcore.Field) error {
	switch {
	case ent.Level < zapcore.InfoLevel:
		c.commands.Debug(ent.Message)
	case ent.Level == zapcore.InfoLevel:
		c.commands.Info(ent.Message)
	case ent.Level == zapcore.WarnLevel:
		c.commands.Warning(ent.Message)
	default:
		c.commands.Error(ent.Message)
	}
	return nil
}

// Sync implements zapcore.Core.
func (c *AnnotationCore) Sync() error {
	return nil
}

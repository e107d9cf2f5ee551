package action

import (
	"io"

	"github.com/sethvargo/go-githubactions"
)

// Commands writes workflow commands to the runner's stdout.
type Commands struct {
	gha *githubactions.Action
}

// NewCommands creates a Commands writer on w.
func NewCommands(w io.Writer) *Commands {
	return &Commands{gha: githubactions.New(githubactions.WithWriter(w))}
}

// Info writes a plain log line.
func (c *Commands) Info(message string) {
	c.gha.Infof("%s", message)
}

// Debug writes a ::debug:: command.
func (c *Commands) Debug(message string) {
	c.gha.Debugf("%s", message)
}

// Notice writes a ::notice:: annotation.
func (c *Commands) Notice(message string) {
	c.gha.Noticef("%s", message)
}

// Warning writes a ::warning:: annotation.
func (c *Commands) Warning(message string) {
	c.gha.Warningf("%s", message)
}

// Error writes an ::error:: annotation.
func (c *Commands) Error(message string) {
	c.gha.Errorf("%s", message)
}

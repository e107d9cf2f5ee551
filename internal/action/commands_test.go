package action

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandsAnnotations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	cmds := NewCommands(&buf)

	cmds.Warning("Job type \"deploy\" not found")
	cmds.Error("Action failed: boom\r\nsecond line")
	cmds.Notice("done")
	cmds.Debug("details")
	cmds.Info("Generated job title: AI Agent")

	for _, want := range []string{
		"::warning::Job type \"deploy\" not found\n",
		"::error::Action failed: boom%0D%0Asecond line\n",
		"::notice::done\n",
		"::debug::details\n",
		"Generated job title: AI Agent\n",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("expected %q in output:\n%s", want, buf.String())
		}
	}
}

func TestCommandsDoNotInterpretFormatVerbs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewCommands(&buf).Warning("100% sure %s")

	if !strings.Contains(buf.String(), "::warning::100%25 sure %25s\n") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

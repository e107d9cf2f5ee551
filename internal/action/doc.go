// Package action speaks the runner protocol of a pipeline step: it reads
// step inputs from INPUT_* environment variables, writes step outputs to the
// $GITHUB_OUTPUT file (or legacy set-output commands), and issues workflow
// commands such as ::warning:: and ::error::.
package action

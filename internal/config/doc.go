// Package config loads the runner settings of the step from multiple sources
// (YAML settings file, environment variables, CLI flags) with precedence:
// CLI flags > YAML config > Environment variables > Defaults. The agency
// configuration that drives titles lives in package agency.
package config

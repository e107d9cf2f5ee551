package agency

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Resolver walks the configuration fallback chain.
type Resolver struct {
	logger   *zap.Logger
	readFile func(string) ([]byte, error)
}

// ResolverOption configures Resolver behaviour.
type ResolverOption func(*Resolver)

// WithReadFile overrides the file reader, primarily for tests.
func WithReadFile(read func(string) ([]byte, error)) ResolverOption {
	return func(r *Resolver) {
		r.readFile = read
	}
}

// NewResolver constructs a Resolver that reports through logger.
func NewResolver(logger *zap.Logger, opts ...ResolverOption) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		logger:   logger,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first configuration that loads, in order: the workspace
// file, the bundled file, the built-in defaults. An empty bundledPath skips
// the bundled step.
func (r *Resolver) Resolve(workspaceDir, bundledPath string) (Configuration, Source) {
	workspacePath := filepath.Join(workspaceDir, ConfigFileName)
	cfg, err := r.LoadFile(workspacePath)
	switch {
	case err == nil:
		r.logger.Info("Loaded "+ConfigFileName+" successfully", zap.String("path", workspacePath))
		return cfg, SourceWorkspace
	case errors.Is(err, ErrConfigNotFound):
		r.logger.Info(ConfigFileName+" not found in repo root", zap.String("path", workspacePath))
	default:
		r.logger.Warn(fmt.Sprintf("Failed to parse %s: %v. Using defaults.", ConfigFileName, err), zap.String("path", workspacePath))
	}

	if bundledPath != "" {
		cfg, err = r.LoadFile(bundledPath)
		switch {
		case err == nil:
			r.logger.Info("Loaded bundled configuration", zap.String("path", bundledPath))
			return cfg, SourceBundled
		case errors.Is(err, ErrConfigNotFound):
			r.logger.Info("bundled configuration not found", zap.String("path", bundledPath))
		default:
			r.logger.Warn(fmt.Sprintf("Failed to parse bundled configuration: %v", err), zap.String("path", bundledPath))
		}
	}

	r.logger.Info("Using hardcoded defaults")
	return Builtin(), SourceBuiltin
}

// LoadFile reads and parses a single configuration file.
func (r *Resolver) LoadFile(path string) (Configuration, error) {
	data, err := r.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Configuration{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Configuration{}, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a configuration document and fills in missing defaults.
func Parse(data []byte) (Configuration, error) {
	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	return cfg.normalize(), nil
}

// DefaultBundledPath returns the location of the configuration shipped with
// the binary: config/agency-config.json next to the executable.
func DefaultBundledPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "config", ConfigFileName)
}

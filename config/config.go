package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// Configuration keys.
const (
	// KeyPadDir is the directory searched for pad files named after transcript ids.
	KeyPadDir = "pad_dir"

	// KeyPadExt is the file extension appended to a transcript id in pad_dir.
	KeyPadExt = "pad_ext"

	// KeyManifest is the path of a pad manifest YAML file.
	KeyManifest = "manifest"

	// KeyLogLevel is the slog level name: debug, info, warn or error.
	KeyLogLevel = "log_level"
)

// Defaults for the resolver.
const (
	DefaultEnvPrefix       = "BLACKOTP_"
	DefaultGlobalConfigDir = "blackotp"
	DefaultLocalConfigName = ".blackotp.yaml"
)

// Keys lists every key the resolver reads from files and the environment.
var Keys = []string{KeyPadDir, KeyPadExt, KeyManifest, KeyLogLevel}

// DefaultValues returns the built-in value of every key.
func DefaultValues() map[string]string {
	return map[string]string{
		KeyPadDir:   "",
		KeyPadExt:   ".pad",
		KeyManifest: "",
		KeyLogLevel: "info",
	}
}

// ResolverConfig configures the hierarchical config resolver.
// Zero fields fall back to the package defaults.
type ResolverConfig struct {
	// EnvPrefix is prepended to upper-cased keys for environment lookup,
	// so "pad_dir" is read from BLACKOTP_PAD_DIR by default.
	EnvPrefix string

	// GlobalPath overrides ~/.config/blackotp/config.yaml.
	GlobalPath string

	// LocalConfigName is the file looked up in the git root of Dir.
	LocalConfigName string

	// Dir is where git root detection starts. Defaults to ".".
	Dir string

	// Defaults replaces DefaultValues when non-nil.
	Defaults map[string]string

	// GitRootFinder finds the git root above a directory.
	// If nil, the resolver walks up looking for a .git directory.
	GitRootFinder func(startDir string) (string, error)

	// Logger receives warnings about unreadable config files.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// Resolver handles hierarchical configuration resolution.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string
	gitRoot    string
	logger     *slog.Logger

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a resolver, locating the global and local config files.
func NewResolver(cfg ResolverConfig) *Resolver {
	if cfg.EnvPrefix == "" {
		cfg.EnvPrefix = DefaultEnvPrefix
	}
	if cfg.LocalConfigName == "" {
		cfg.LocalConfigName = DefaultLocalConfigName
	}
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.Defaults == nil {
		cfg.Defaults = DefaultValues()
	}

	r := &Resolver{
		config:     cfg,
		globalPath: cfg.GlobalPath,
		logger:     cfg.Logger,
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}

	finder := cfg.GitRootFinder
	if finder == nil {
		finder = func(dir string) (string, error) { return findGitRoot(dir), nil }
	}
	if root, err := finder(cfg.Dir); err == nil && root != "" {
		r.gitRoot = root
		r.localPath = filepath.Join(root, cfg.LocalConfigName)
	}

	if r.globalPath == "" {
		if home, err := homedir.Dir(); err == nil {
			r.globalPath = filepath.Join(home, ".config", DefaultGlobalConfigDir, "config.yaml")
		}
	}

	return r
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	r.logger.Warn("config: " + msg)
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Source returns where a key's value came from.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// All returns a copy of all key-value pairs.
func (c *Resolved) All() map[string]string {
	result := make(map[string]string, len(c.values))
	for k, v := range c.values {
		result[k] = v
	}
	return result
}

// Resolve builds the final config by merging all sources.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	for key, value := range r.config.Defaults {
		cfg.set(key, value, SourceDefault)
	}
	r.applyFile(cfg, r.globalPath, SourceGlobal)
	r.applyFile(cfg, r.localPath, SourceLocal)
	r.applyEnv(cfg)

	return cfg
}

// ResolveWithOverrides resolves config and then applies caller overrides,
// which win over every other source. Empty override values are ignored.
func (r *Resolver) ResolveWithOverrides(overrides map[string]string) *Resolved {
	cfg := r.Resolve()
	for key, value := range overrides {
		if value != "" {
			cfg.set(key, value, SourceOverride)
		}
	}
	return cfg
}

func (c *Resolved) set(key, value string, src Source) {
	c.values[key] = value
	c.sources[key] = src
}

func (r *Resolver) applyFile(cfg *Resolved, path string, src Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	for key, value := range parsed {
		if !slices.Contains(Keys, key) {
			r.warn(fmt.Sprintf("unknown key %q in %s", key, path))
			continue
		}
		if strVal := toString(value); strVal != "" {
			cfg.set(key, resolvePath(key, strVal, filepath.Dir(path)), src)
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	for _, key := range Keys {
		envKey := r.config.EnvPrefix + strings.ToUpper(key)
		if value := os.Getenv(envKey); value != "" {
			cfg.set(key, value, SourceEnv)
		}
	}
}

// GitRoot returns the detected git root directory.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// resolvePath makes relative pad paths in a config file relative to the
// file's own directory. "~" is left for the caller to expand.
func resolvePath(key, value, dir string) string {
	if key != KeyPadDir && key != KeyManifest {
		return value
	}
	if filepath.IsAbs(value) || strings.HasPrefix(value, "~") {
		return value
	}
	return filepath.Join(dir, value)
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}

// findGitRoot finds the git root by looking for .git directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}

// Package config resolves blackotp settings from layered sources.
//
// Precedence, highest first:
//  1. Overrides passed to ResolveWithOverrides
//  2. Environment variables (BLACKOTP_PAD_DIR, BLACKOTP_LOG_LEVEL, ...)
//  3. Local config: .blackotp.yaml in the git root
//  4. Global config: ~/.config/blackotp/config.yaml
//  5. Built-in defaults
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.ResolverConfig{})
//	cfg := resolver.Resolve()
//	fmt.Println(cfg.Get(config.KeyPadExt))    // ".pad"
//	fmt.Println(cfg.Source(config.KeyPadExt)) // "default"
//
// # Config Files
//
// Both files are flat YAML maps over the keys in Keys:
//
//	pad_dir: pads
//	manifest: pads/manifest.yaml
//	log_level: debug
//
// Relative pad_dir and manifest values are resolved against the directory
// of the file that sets them. Unknown keys are skipped with a warning.
package config

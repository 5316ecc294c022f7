// Package blackotp decodes black OTP messages.
//
// A black OTP message is a transcript of decimal byte values that were
// XORed against a one-time pad. The package is organized into subpackages:
//
//   - transcript: parse and render transcript text
//   - pad: XOR decoding against in-memory, stream and file pads, and pad manifests
//   - config: layered settings (defaults, config files, environment)
//
// The two core packages do not depend on each other. Decoder ties them
// together, finding the pad for a transcript by its id.
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/blackotp"
//	    "github.com/randalmurphal/blackotp/config"
//	)
//
//	resolved := config.NewResolver(config.ResolverConfig{}).Resolve()
//	cfg, _ := blackotp.LoadConfig(resolved)
//
//	dec, _ := blackotp.New(cfg, blackotp.WithLogger(blackotp.NewLogger(cfg, os.Stderr)))
//	msg, err := dec.DecodeText("black otp 1 file start 31 10 30 0 11 offset 0")
//
// See individual package documentation for detailed usage.
package blackotp

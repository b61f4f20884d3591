// Package config loads the settings that control how text buffers are
// built.
//
// Settings come from three layers, later layers overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. A TOML file (Load, LoadFS, LoadReader)
//  3. Environment variables with the TXED_ prefix (ApplyEnv)
//
// A missing file is not an error; the defaults are used instead.
//
// # File Format
//
//	[segments]
//	coalesce = true     # merge adjacent segments of the same leaf
//	validate = false    # check segment map invariants after every edit
//
//	[text]
//	normalization = "NFC"   # none, NFC, NFD, NFKC or NFKD
//
//	[log]
//	level = "info"          # debug, info, warn or error
//
// # Environment Variables
//
//	TXED_COALESCE        segments.coalesce
//	TXED_VALIDATE        segments.validate
//	TXED_NORMALIZATION   text.normalization
//	TXED_LOG_LEVEL       log.level
//
// # Usage
//
//	cfg, err := config.LoadWithEnv("txed.toml")
//	if err != nil {
//	    return err
//	}
//	logger, _ := cfg.Logger(os.Stderr)
//	opts, _ := cfg.Options(logger)
//	buf := text.NewLeaf(content, opts...)
package config

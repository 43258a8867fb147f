package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// ExampleMappingsYAML contains a commented mapping overlay written by
// "cmdx config init-mappings".
//
//go:embed defaults/mappings.yaml
var ExampleMappingsYAML []byte

// DefaultGuardrailYAML contains the built-in risk rules for translated commands.
//
//go:embed defaults/guardrail.yaml
var DefaultGuardrailYAML []byte

// ZshHook is installed by "cmdx hook install --shell zsh".
//
//go:embed shell/zsh.sh
var ZshHook string

// BashHook is installed by "cmdx hook install --shell bash".
//
//go:embed shell/bash.sh
var BashHook string

package translate

import (
	"path/filepath"
	"strings"

	"github.com/doeshing/cmdx/internal/domain"
)

const (
	posixShebang   = "#!/bin/bash"
	windowsEchoOff = "@echo off"
)

// TranslateScriptExtension swaps a script or executable extension for the
// target platform. Names with no rule are returned unchanged.
func (e *Engine) TranslateScriptExtension(filename string, from, to domain.OS) string {
	if from == to || filename == "" {
		return filename
	}
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	lower := strings.ToLower(ext)

	if to.UsesWindowsConventions() {
		if from.UsesWindowsConventions() {
			return filename
		}
		switch lower {
		case ".sh", ".bash", ".zsh":
			return base + ".bat"
		case "":
			if strings.HasSuffix(filename, "/") || strings.HasSuffix(filename, `\`) {
				return filename
			}
			return filename + ".exe"
		}
		return filename
	}

	if !from.UsesWindowsConventions() {
		return filename
	}
	switch lower {
	case ".bat", ".cmd", ".ps1":
		return base + ".sh"
	case ".exe":
		return base
	}
	return filename
}

// ShebangInfo describes the interpreter line of a script.
type ShebangInfo struct {
	Interpreter string   `json:"interpreter"`
	Args        []string `json:"args,omitempty"`
	Found       bool     `json:"found"`
}

// ParseShebang reads the interpreter from the first line of content.
func ParseShebang(content string) ShebangInfo {
	firstLine, _, _ := strings.Cut(content, "\n")
	firstLine = strings.TrimSpace(strings.TrimSuffix(firstLine, "\r"))
	if !strings.HasPrefix(firstLine, "#!") {
		return ShebangInfo{}
	}
	parts := strings.Fields(strings.TrimPrefix(firstLine, "#!"))
	if len(parts) == 0 {
		return ShebangInfo{}
	}
	interpreter, args := parts[0], parts[1:]
	if interpreter == "/usr/bin/env" || interpreter == "/bin/env" {
		for len(args) > 0 && strings.HasPrefix(args[0], "-") {
			args = args[1:]
		}
		if len(args) == 0 {
			return ShebangInfo{}
		}
		interpreter, args = args[0], args[1:]
	}
	return ShebangInfo{Interpreter: interpreter, Args: args, Found: true}
}

func isEchoOff(line string) bool {
	fields := strings.Fields(strings.ToLower(line))
	return len(fields) == 2 && fields[0] == "@echo" && fields[1] == "off"
}

// TranslateShebang rewrites the first line of a script for the target
// platform. Lines that are neither a shebang nor "@echo off" are returned
// unchanged.
func (e *Engine) TranslateShebang(line string, from, to domain.OS) string {
	if from == to {
		return line
	}
	if to.UsesWindowsConventions() {
		if ParseShebang(line).Found {
			return windowsEchoOff
		}
		return line
	}
	if isEchoOff(line) {
		return posixShebang
	}
	return line
}

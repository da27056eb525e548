// Package fileutil resolves filesystem paths into the classic absolute form
// the shell's parsing APIs accept.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	extendedPrefix    = `\\?\`
	extendedUNCPrefix = `\\?\UNC\`
)

// Canonical resolves path to an absolute, cleaned, classic-form path and
// verifies the entry exists. Extended-length prefixes are rewritten because
// SHCreateItemFromParsingName rejects them.
func Canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	abs = filepath.Clean(abs)
	// Stat follows symlinks, so dangling links fail here and get dropped by
	// callers instead of reaching the shell's path resolver.
	if _, err := os.Stat(abs); err != nil {
		return "", err
	}
	return StripExtendedPrefix(abs), nil
}

// StripExtendedPrefix rewrites \\?\-prefixed paths to their classic
// equivalents: \\?\C:\x becomes C:\x and \\?\UNC\host\share becomes
// \\host\share. Other paths pass through unchanged.
func StripExtendedPrefix(path string) string {
	if strings.HasPrefix(path, extendedUNCPrefix) {
		return `\\` + path[len(extendedUNCPrefix):]
	}
	if strings.HasPrefix(path, extendedPrefix) {
		return path[len(extendedPrefix):]
	}
	return path
}

package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateMeshName validates a mesh name for safety and correctness.
// Names appear in manifests, cache key prefixes, and output filenames,
// so the rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateMeshName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "mesh name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "mesh name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "mesh name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidInput, "mesh name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidatePath validates a file path supplied to the HTTP surface.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// transformNameRegex matches valid transform identifiers.
var transformNameRegex = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)

// ValidateTransformName validates a transform identifier as used on the
// CLI and the HTTP surface. It checks the identifier shape only; whether
// the transform exists is decided by the pipeline.
func ValidateTransformName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTransform, "transform name cannot be empty")
	}

	if !transformNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTransform, "invalid transform name: %q", name)
	}

	return nil
}

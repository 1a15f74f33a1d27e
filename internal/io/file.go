// Package ioutils provides file system utilities for the download
// pipeline: filename sanitization, directory creation and small file
// helpers shared by the audio and download packages.
package ioutils

import (
	"context"
	"io"
	"os"
	"regexp"
	"strings"
)

var (
	// Invalid path/file characters: < > : " / \ | ? * and control
	// characters (0x00-0x1f). Windows has the most restrictive rules, so
	// sanitization targets it.
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

	trailingDots = regexp.MustCompile(`\.+$`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// SanitizeFileName removes or replaces characters that are invalid in
// file and folder names, so track titles like "Darkside (Original Mix) /
// Part 1" become safe path components on every platform.
//
// Transformations applied:
//   - Invalid characters → underscore
//   - Trailing dots → removed
//   - Runs of whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Track: Part 1/2")  // "Track_ Part 1_2"
//	SanitizeFileName("Track...")         // "Track"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multiSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't
// exist. Directories are created with mode 0755.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}

// WriteFile writes data to a file with mode 0644, truncating any existing
// content. The context is reserved for cancellation.
func WriteFile(ctx context.Context, path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

// CopyFile copies a file from source to destination, creating or
// truncating the destination.
func CopyFile(ctx context.Context, src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	_, err = io.Copy(destFile, sourceFile)
	return err
}

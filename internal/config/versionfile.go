package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoVersionFile is returned when no version file exists in a directory or its parents.
var ErrNoVersionFile = errors.New("no version file found")

// versionFiles are checked in order in every directory.
var versionFiles = []string{".nvmrc", ".node-version"}

// FindSpecifier walks from dir up to the filesystem root and returns the specifier
// stored in the first .nvmrc or .node-version file found, along with its path.
func FindSpecifier(dir string) (spec string, path string, err error) {
	dir, err = filepath.Abs(dir)
	if err != nil {
		return "", "", err
	}

	for {
		for _, name := range versionFiles {
			p := filepath.Join(dir, name)
			info, statErr := os.Stat(p)
			if statErr != nil || info.IsDir() {
				continue
			}
			spec, err := readSpecifier(p)
			if err != nil {
				return "", "", err
			}
			return spec, p, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", ErrNoVersionFile
		}
		dir = parent
	}
}

// readSpecifier returns the first line that is neither blank nor a # comment.
func readSpecifier(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line, nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return "", fmt.Errorf("%s is empty", path)
}

package golden

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseCase parses a case from YAML bytes.
func ParseCase(data []byte) (*Case, error) {
	var c Case
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if c.ID == "" {
		return nil, &LoadError{Message: "case ID is required"}
	}
	if !slices.Contains(Endpoints, c.Endpoint) {
		return nil, &LoadError{Message: "unknown endpoint " + c.Endpoint}
	}
	if c.Error != "" && !slices.Contains(Errors, c.Error) {
		return nil, &LoadError{Message: "unknown error " + c.Error}
	}
	if c.Error != "" && len(c.Expect) > 0 {
		return nil, &LoadError{Message: "a failing case cannot expect records"}
	}

	return &c, nil
}

// LoadCase loads a case from a file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	c, err := ParseCase(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{File: path, Message: err.Error()}
	}

	return c, nil
}

// LoadDirectory loads all cases from a directory, sorted by ID.
// Only files with .yaml or .yml extensions are loaded. Duplicate IDs are an
// error.
func LoadDirectory(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	var cases []*Case
	seen := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(dir, name)
		c, err := LoadCase(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[c.ID]; ok {
			return nil, &LoadError{File: path, Message: "duplicate case ID " + c.ID + " (also in " + prev + ")"}
		}
		seen[c.ID] = path
		cases = append(cases, c)
	}

	sort.Slice(cases, func(i, j int) bool { return cases[i].ID < cases[j].ID })
	return cases, nil
}

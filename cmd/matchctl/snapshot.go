package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

// snapshotFile is a roster saved to disk. JSON files use the data service field
// names (as exported by GET /api/v1/roster); YAML files use snake_case.
type snapshotFile struct {
	Employees []matching.Employee `json:"employees" yaml:"employees"`
	Skills    []matching.Skill    `json:"skills" yaml:"skills"`
}

func loadSnapshot(path string) (*assign.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var f snapshotFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, &f)
	default:
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parse snapshot %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	fetched := time.Now()
	if err == nil {
		fetched = fi.ModTime()
	}
	return assign.NewSnapshot(f.Employees, f.Skills, fetched.UTC()), nil
}

// Package weekfile reads and writes the YAML week file accepted by the
// non-interactive commands.
package weekfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WeekFile is the top-level YAML structure of a week file.
type WeekFile struct {
	Employee EmployeeFile `yaml:"employee"`
	Days     []DayFile    `yaml:"days,omitempty"`
}

// EmployeeFile holds the required top-level fields.
type EmployeeFile struct {
	Name         string `yaml:"name"`
	CalendarWeek string `yaml:"calendar_week"`
	CostCenter   string `yaml:"cost_center"`
}

// DayFile holds one weekday. A nil Break takes the configured default.
type DayFile struct {
	Day   string `yaml:"day"`
	Start string `yaml:"start,omitempty"`
	End   string `yaml:"end,omitempty"`
	Break *int   `yaml:"break,omitempty"`
}

// Load reads and parses a week file.
func Load(path string) (*WeekFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes week file YAML. Unknown keys are rejected.
func Parse(data []byte) (*WeekFile, error) {
	var wf WeekFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil {
		if errors.Is(err, io.EOF) {
			return &wf, nil
		}
		return nil, fmt.Errorf("parsing week file: %w", err)
	}
	return &wf, nil
}

// Marshal encodes wf as YAML.
func Marshal(wf *WeekFile) ([]byte, error) {
	return yaml.Marshal(wf)
}

// Save writes wf to path.
func Save(path string, wf *WeekFile) error {
	data, err := Marshal(wf)
	if err != nil {
		return fmt.Errorf("encoding week file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

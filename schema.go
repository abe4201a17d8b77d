package hospitalrank

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Column locates one field of interest in the dataset. The header name
// is matched case-insensitively against the CSV header row; Position is
// the 1-based fallback used when the header is not found (some dataset
// exports truncate or localize header text but keep column order).
type Column struct {
	Header   string `yaml:"header" validate:"required"`
	Position int    `yaml:"position" validate:"required,min=1"`
}

// Schema describes the column layout of an outcome-of-care CSV file.
// The zero value is not usable; start from DefaultSchema or LoadSchema.
type Schema struct {
	Hospital     Column `yaml:"hospital" validate:"required"`
	State        Column `yaml:"state" validate:"required"`
	HeartAttack  Column `yaml:"heart_attack" validate:"required"`
	HeartFailure Column `yaml:"heart_failure" validate:"required"`
	Pneumonia    Column `yaml:"pneumonia" validate:"required"`
}

// DefaultSchema returns the layout of the CMS outcome-of-care-measures
// file: hospital name in column 2, state in column 7, and the three
// 30-day mortality rate columns at 11, 17, and 23.
func DefaultSchema() Schema {
	return Schema{
		Hospital: Column{Header: "Hospital Name", Position: 2},
		State:    Column{Header: "State", Position: 7},
		HeartAttack: Column{
			Header:   "Hospital 30-Day Death (Mortality) Rates from Heart Attack",
			Position: 11,
		},
		HeartFailure: Column{
			Header:   "Hospital 30-Day Death (Mortality) Rates from Heart Failure",
			Position: 17,
		},
		Pneumonia: Column{
			Header:   "Hospital 30-Day Death (Mortality) Rates from Pneumonia",
			Position: 23,
		},
	}
}

// LoadSchema reads a YAML schema file and validates it. Partial files
// are rejected: all five columns must be specified.
func LoadSchema(path string) (Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Schema{}, fmt.Errorf("read schema %s: %w", path, err)
	}
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Schema{}, fmt.Errorf("parse schema %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Schema{}, fmt.Errorf("schema %s: %w", path, err)
	}
	return s, nil
}

// Validate checks the schema's structural constraints.
func (s Schema) Validate() error {
	return validator.New().Struct(s)
}

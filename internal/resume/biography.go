// Package resume holds the static biography and prints the resume to the console.
package resume

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed biography.yaml
var defaultBiography []byte

// Biography is the static part of the resume.
type Biography struct {
	Name         string     `yaml:"name"`
	Age          int        `yaml:"age"`
	Origin       string     `yaml:"origin"`
	Phone        string     `yaml:"phone"`
	Emails       []string   `yaml:"emails"`
	Education    Education  `yaml:"education"`
	Competitions []string   `yaml:"competitions"`
	Skills       []SkillSet `yaml:"skills"`
	Strengths    []string   `yaml:"strengths"`
}

// Education lists the schools attended.
type Education struct {
	HighSchool string `yaml:"high_school"`
	University string `yaml:"university"`
}

// SkillSet is a named group of skills. A list keeps the categories in file order.
type SkillSet struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// LoadBiography reads a biography from path, or the embedded default when path is empty.
func LoadBiography(path string) (*Biography, error) {
	data := defaultBiography
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read biography: %w", err)
		}
	}
	return ParseBiography(data)
}

// ParseBiography decodes and validates a YAML biography.
func ParseBiography(data []byte) (*Biography, error) {
	var bio Biography
	if err := yaml.Unmarshal(data, &bio); err != nil {
		return nil, fmt.Errorf("parse biography: %w", err)
	}
	if err := bio.Validate(); err != nil {
		return nil, err
	}
	return &bio, nil
}

// Validate checks the fields the resume cannot do without.
func (b *Biography) Validate() error {
	var errs []error
	if b.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if b.Education.HighSchool == "" {
		errs = append(errs, errors.New("education.high_school is required"))
	}
	if b.Education.University == "" {
		errs = append(errs, errors.New("education.university is required"))
	}
	if len(b.Competitions) == 0 {
		errs = append(errs, errors.New("at least one competition is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid biography: %w", err)
	}
	return nil
}

// Package catalog loads the practice problem catalog and serves it read-only.
package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
)

//go:embed problems.yaml
var embeddedCatalog []byte

var _ ports.ProblemProvider = (*Store)(nil)

// Store holds the catalog in load order. It is never mutated after Load.
type Store struct {
	problems []model.Problem
	source   string
}

type document struct {
	Problems []model.Problem `yaml:"problems"`
}

// Load reads the catalog from path, or the embedded dataset when path is empty.
func Load(path string) (*Store, error) {
	if path == "" {
		return Parse(bytes.NewReader(embeddedCatalog), "embedded")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse decodes and validates a YAML catalog. An empty list is a valid catalog.
func Parse(r io.Reader, source string) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog %s: %w", source, err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation("celltext", cellText); err != nil {
		return nil, err
	}
	problems := make([]model.Problem, 0, len(doc.Problems))
	for i, p := range doc.Problems {
		p = normalize(p)
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog %s entry %d (%q): %w", source, i+1, p.Title, err)
		}
		problems = append(problems, p)
	}

	return &Store{problems: problems, source: source}, nil
}

// NewStore builds a Store from records that are already validated. The slice is copied.
func NewStore(problems []model.Problem) *Store {
	cp := make([]model.Problem, len(problems))
	copy(cp, problems)
	return &Store{problems: cp, source: "memory"}
}

// ListProblems returns a copy of the catalog in its original order.
func (s *Store) ListProblems(_ context.Context) ([]model.Problem, error) {
	cp := make([]model.Problem, len(s.problems))
	copy(cp, s.problems)
	return cp, nil
}

// Len reports the number of problems.
func (s *Store) Len() int {
	return len(s.problems)
}

// Source describes where the catalog was loaded from.
func (s *Store) Source() string {
	return s.source
}

// Stats summarizes the catalog for display.
func (s *Store) Stats() model.CatalogStats {
	return model.ComputeStats(s.problems)
}

// Preview returns the first limit problems and the count left out.
func (s *Store) Preview(limit int) model.Preview {
	return model.BuildPreview(s.problems, limit)
}

// cellText accepts only values a spreadsheet cell can hold unchanged.
func cellText(fl validator.FieldLevel) bool {
	return model.CheckText(fl.Field().String()) == nil
}

func normalize(p model.Problem) model.Problem {
	p.Pattern = strings.TrimSpace(p.Pattern)
	p.Title = strings.TrimSpace(p.Title)
	p.Platform = strings.TrimSpace(p.Platform)
	p.Link = strings.TrimSpace(p.Link)
	if d, err := model.ParseDifficulty(string(p.Difficulty)); err == nil {
		p.Difficulty = d
	}
	return p
}

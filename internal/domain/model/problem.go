package model

import (
	"fmt"
	"strings"
)

// Difficulty is the difficulty tier of a practice problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Difficulties lists every tier in ascending order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}

// ParseDifficulty resolves a difficulty name case-insensitively.
func ParseDifficulty(val string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(strings.TrimSpace(val), string(d)) {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", val)
}

// Problem represents one entry of the practice catalog.
type Problem struct {
	Pattern    string     `yaml:"pattern" json:"pattern" validate:"required,celltext"`
	Title      string     `yaml:"title" json:"title" validate:"required,celltext"`
	Platform   string     `yaml:"platform" json:"platform" validate:"required,celltext"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Link       string     `yaml:"link" json:"link" validate:"required,url,celltext"`
}

// ProblemHeader is the fixed column order used for every exported sheet.
var ProblemHeader = []string{"pattern", "title", "platform", "difficulty", "link"}

// Row returns the problem's values in ProblemHeader order.
func (p Problem) Row() []string {
	return []string{p.Pattern, p.Title, p.Platform, string(p.Difficulty), p.Link}
}

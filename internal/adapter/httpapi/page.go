package httpapi

import (
	"fmt"
	"html/template"
	"strconv"
	"time"

	"blind75-generator/internal/domain/model"
)

type stat struct {
	Number string
	Label  string
}

type page struct {
	Title         string
	Tagline       string
	Stats         []stat
	Preview       []model.Problem
	Remaining     int
	SampleSize    int
	ExportURL     string
	ToastMillis   int64
	Year          int
	AuthorHandle  string
	AuthorProfile string
}

func newPage(catalog CatalogView, cfg PageConfig) page {
	stats := catalog.Stats()
	preview := catalog.Preview(previewRows)

	return page{
		Title:   fmt.Sprintf("DSA Blind %d Generator", cfg.SampleSize),
		Tagline: fmt.Sprintf("Generate a randomized set of %d DSA problems to practice with. Download the spreadsheet in a click and sharpen your skills!", cfg.SampleSize),
		Stats: []stat{
			{Number: strconv.Itoa(stats.Patterns), Label: "DSA Patterns"},
			{Number: strconv.Itoa(stats.Problems), Label: "Problems"},
			{Number: strconv.Itoa(stats.Difficulties), Label: "Difficulty Levels"},
		},
		Preview:       preview.Problems,
		Remaining:     preview.Remaining,
		SampleSize:    cfg.SampleSize,
		ExportURL:     "/api/export",
		ToastMillis:   cfg.ToastDuration.Milliseconds(),
		Year:          time.Now().Year(),
		AuthorHandle:  "@arindal",
		AuthorProfile: "https://github.com/arindal1",
	}
}

var templateFuncs = template.FuncMap{
	"difficultyClass": func(d model.Difficulty) string {
		switch d {
		case model.DifficultyEasy:
			return "badge-easy"
		case model.DifficultyMedium:
			return "badge-medium"
		case model.DifficultyHard:
			return "badge-hard"
		default:
			return "badge"
		}
	},
}

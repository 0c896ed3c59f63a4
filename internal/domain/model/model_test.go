package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blind75-generator/internal/domain/model"
)

func TestParseDifficulty(t *testing.T) {
	got, err := model.ParseDifficulty(" medium ")
	require.NoError(t, err)
	assert.Equal(t, model.DifficultyMedium, got)

	_, err = model.ParseDifficulty("Insane")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want model.Format
	}{
		{"", model.FormatXLSX},
		{"xlsx", model.FormatXLSX},
		{"XLSX", model.FormatXLSX},
		{"csv", model.FormatCSV},
	}
	for _, tt := range tests {
		got, err := model.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := model.ParseFormat("ods")
	assert.ErrorIs(t, err, model.ErrUnsupportedFormat)
}

func TestProblemRowFollowsHeader(t *testing.T) {
	p := model.Problem{
		Pattern:    "Two Pointers",
		Title:      "Valid Palindrome",
		Platform:   "LeetCode",
		Difficulty: model.DifficultyEasy,
		Link:       "https://leetcode.com/problems/valid-palindrome/",
	}

	assert.Equal(t, []string{"pattern", "title", "platform", "difficulty", "link"}, model.ProblemHeader)
	assert.Equal(t, []string{"Two Pointers", "Valid Palindrome", "LeetCode", "Easy", "https://leetcode.com/problems/valid-palindrome/"}, p.Row())
}

func TestSerializationErrorWrapping(t *testing.T) {
	cause := errors.New("boom")
	err := model.NewSerializationError(model.FormatCSV, cause)

	var serr *model.SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, model.FormatCSV, serr.Format)
	assert.ErrorIs(t, err, cause)

	assert.Same(t, err, model.NewSerializationError(model.FormatXLSX, err))
}

func TestComputeStats(t *testing.T) {
	problems := []model.Problem{
		{Pattern: "Arrays", Difficulty: model.DifficultyEasy},
		{Pattern: "Arrays", Difficulty: model.DifficultyMedium},
		{Pattern: "Graphs", Difficulty: model.DifficultyMedium},
	}

	assert.Equal(t, model.CatalogStats{Patterns: 2, Problems: 3, Difficulties: 2}, model.ComputeStats(problems))
}

func TestBuildPreview(t *testing.T) {
	problems := []model.Problem{{Title: "a"}, {Title: "b"}, {Title: "c"}, {Title: "d"}, {Title: "e"}}

	p := model.BuildPreview(problems, 3)
	require.Len(t, p.Problems, 3)
	assert.Equal(t, "a", p.Problems[0].Title)
	assert.Equal(t, 2, p.Remaining)

	p.Problems[0].Title = "changed"
	assert.Equal(t, "a", problems[0].Title)

	short := model.BuildPreview(problems[:2], 3)
	assert.Len(t, short.Problems, 2)
	assert.Zero(t, short.Remaining)
}

func TestCheckText(t *testing.T) {
	valid := []string{"", "Two Sum", "tab\tnew\nline\r", "Ünïcödé ✓", "emoji 🚀"}
	for _, s := range valid {
		assert.NoError(t, model.CheckText(s), "%q", s)
	}

	invalid := []string{"ctrl \x01 title", "bad \xff title", "nul\x00", "\uFFFE", "\uFFFF", "esc \x1b"}
	for _, s := range invalid {
		assert.Error(t, model.CheckText(s), "%q", s)
	}
}

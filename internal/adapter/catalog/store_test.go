package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blind75-generator/internal/adapter/catalog"
	"blind75-generator/internal/domain/model"
)

func TestLoad_EmbeddedCatalog(t *testing.T) {
	store, err := catalog.Load("")
	require.NoError(t, err)

	assert.Equal(t, "embedded", store.Source())
	assert.GreaterOrEqual(t, store.Len(), 75)

	stats := store.Stats()
	assert.Equal(t, 22, stats.Patterns)
	assert.Equal(t, 3, stats.Difficulties)
	assert.Equal(t, store.Len(), stats.Problems)

	problems, err := store.ListProblems(context.Background())
	require.NoError(t, err)
	seen := make(map[string]struct{}, len(problems))
	for _, p := range problems {
		_, dup := seen[p.Link]
		assert.False(t, dup, "duplicate link %s", p.Link)
		seen[p.Link] = struct{}{}
	}
}

func TestParse_NormalizesDifficulty(t *testing.T) {
	src := `problems:
  - pattern: " Stack "
    title: Valid Parentheses
    platform: LeetCode
    difficulty: easy
    link: https://leetcode.com/problems/valid-parentheses/
`
	store, err := catalog.Parse(strings.NewReader(src), "inline")
	require.NoError(t, err)

	problems, err := store.ListProblems(context.Background())
	require.NoError(t, err)
	require.Len(t, problems, 1)
	assert.Equal(t, model.DifficultyEasy, problems[0].Difficulty)
	assert.Equal(t, "Stack", problems[0].Pattern)
}

func TestParse_RejectsInvalidRecords(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			name: "unknown difficulty",
			src: `problems:
  - {pattern: Stack, title: X, platform: LeetCode, difficulty: Insane, link: "https://example.com/x"}`,
		},
		{
			name: "missing title",
			src: `problems:
  - {pattern: Stack, platform: LeetCode, difficulty: Easy, link: "https://example.com/x"}`,
		},
		{
			name: "bad link",
			src: `problems:
  - {pattern: Stack, title: X, platform: LeetCode, difficulty: Easy, link: "not a url"}`,
		},
		{
			name: "control character in title",
			src: `problems:
  - {pattern: Stack, title: "x\x01y", platform: LeetCode, difficulty: Easy, link: "https://example.com/x"}`,
		},
		{
			name: "control character in pattern",
			src: `problems:
  - {pattern: "St\x1back", title: X, platform: LeetCode, difficulty: Easy, link: "https://example.com/x"}`,
		},
		{
			name: "unknown field",
			src: `problems:
  - {pattern: Stack, title: X, platform: LeetCode, difficulty: Easy, link: "https://example.com/x", rating: 5}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse(strings.NewReader(tt.src), "inline")
			assert.Error(t, err)
		})
	}
}

func TestParse_EmptyCatalogIsAllowed(t *testing.T) {
	for _, src := range []string{"", "problems: []\n"} {
		store, err := catalog.Parse(strings.NewReader(src), "inline")
		require.NoError(t, err)
		assert.Zero(t, store.Len())
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	src := `problems:
  - {pattern: Graphs, title: Clone Graph, platform: LeetCode, difficulty: Medium, link: "https://leetcode.com/problems/clone-graph/"}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	store, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, path, store.Source())

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestListProblems_ReturnsCopy(t *testing.T) {
	store := catalog.NewStore([]model.Problem{{Title: "a"}, {Title: "b"}})

	first, err := store.ListProblems(context.Background())
	require.NoError(t, err)
	first[0].Title = "changed"

	second, err := store.ListProblems(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", second[0].Title)
}

func TestPreview(t *testing.T) {
	store, err := catalog.Load("")
	require.NoError(t, err)

	preview := store.Preview(3)
	assert.Len(t, preview.Problems, 3)
	assert.Equal(t, store.Len()-3, preview.Remaining)
	assert.Equal(t, "Two Sum", preview.Problems[0].Title)
}

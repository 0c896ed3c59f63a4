package app_test

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blind75-generator/internal/adapter/catalog"
	"blind75-generator/internal/adapter/csvsheet"
	"blind75-generator/internal/adapter/filesystem"
	"blind75-generator/internal/app"
	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/domain/ports"
	"blind75-generator/internal/domain/sampling"
	"blind75-generator/internal/usecase"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

func makeProblems(n int) []model.Problem {
	problems := make([]model.Problem, 0, n)
	for i := 0; i < n; i++ {
		problems = append(problems, model.Problem{
			Pattern:    "Two Pointers",
			Title:      fmt.Sprintf("Problem %d", i),
			Platform:   "LeetCode",
			Difficulty: model.DifficultyEasy,
			Link:       fmt.Sprintf("https://leetcode.com/problems/p-%d/", i),
		})
	}
	return problems
}

func newArchiver(store *catalog.Store, sink ports.FileSink) *usecase.Archiver {
	gen := usecase.NewGenerator(store, sampling.New(), []ports.SheetEncoder{csvsheet.New()}, nil, nopLogger{}, usecase.ExportConfig{
		SampleSize: 75,
		Filename:   "Blind_75_Problems",
		SheetName:  "Blind 75",
		Format:     model.FormatCSV,
	})
	return usecase.NewArchiver(gen, sink, nopLogger{})
}

func newServer() *http.Server {
	return &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
}

func TestRun_StopsOnCancel(t *testing.T) {
	a := app.New(newServer(), newArchiver(catalog.NewStore(makeProblems(3)), filesystem.NewSink(t.TempDir(), true)), nopLogger{}, app.Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_ArchivesImmediatelyWhenScheduled(t *testing.T) {
	dir := t.TempDir()
	a := app.New(newServer(), newArchiver(catalog.NewStore(makeProblems(3)), filesystem.NewSink(dir, true)), nopLogger{}, app.Options{
		Schedule: "@every 1h",
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	require.Eventually(t, func() bool {
		entries, err := os.ReadDir(dir)
		return err == nil && len(entries) == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_RejectsInvalidSchedule(t *testing.T) {
	a := app.New(newServer(), newArchiver(catalog.NewStore(makeProblems(3)), filesystem.NewSink(t.TempDir(), true)), nopLogger{}, app.Options{
		Schedule: "not a cron spec",
	})

	err := a.Run(context.Background())
	assert.ErrorContains(t, err, "schedule exports")
}

func TestRun_ReportsListenError(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:-1", Handler: http.NotFoundHandler()}
	a := app.New(server, newArchiver(catalog.NewStore(makeProblems(3)), filesystem.NewSink(t.TempDir(), true)), nopLogger{}, app.Options{})

	err := a.Run(context.Background())
	assert.ErrorContains(t, err, "serve http")
}

func TestRun_ScheduledFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	a := app.New(newServer(), newArchiver(catalog.NewStore(nil), filesystem.NewSink(dir, true)), nopLogger{}, app.Options{
		Schedule: "@every 1h",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	assert.NoError(t, a.Run(ctx))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

package tui

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/agbru/seqgen/internal/errors"
	"github.com/agbru/seqgen/internal/logging"
	"github.com/agbru/seqgen/internal/orchestration"
	"github.com/agbru/seqgen/internal/sequence"
)

func newTestService() *orchestration.Service {
	return orchestration.NewService(logging.NewLogger(io.Discard, "test"))
}

func TestGenerateCmd(t *testing.T) {
	t.Parallel()
	req := sequence.Request{FirstTerm: 3, CommonDiff: 2, NumTerms: 5}
	cmd := generateCmd(context.Background(), newTestService(), req, time.Second, 7)

	msg, ok := cmd().(GenerationDoneMsg)
	if !ok {
		t.Fatalf("command produced %T, want GenerationDoneMsg", cmd())
	}
	if msg.Generation != 7 {
		t.Errorf("generation number = %d, want 7", msg.Generation)
	}
	if msg.Result.Err != nil {
		t.Fatalf("generation failed: %v", msg.Result.Err)
	}
	if len(msg.Result.Terms) != 5 || msg.Result.Terms[4] != 11 {
		t.Errorf("terms = %v, want last term 11", msg.Result.Terms)
	}
}

func TestGenerateCmdRejectsInvalidRequest(t *testing.T) {
	t.Parallel()
	req := sequence.Request{FirstTerm: 1, CommonDiff: 1, NumTerms: 0}
	cmd := generateCmd(context.Background(), newTestService(), req, 0, 1)

	msg := cmd().(GenerationDoneMsg)
	if msg.Result.Err == nil {
		t.Fatal("zero-term request was not rejected")
	}
	var validationErr apperrors.ValidationError
	if !errors.As(msg.Result.Err, &validationErr) {
		t.Fatalf("error = %T, want ValidationError", msg.Result.Err)
	}
}

func TestGenerateCmdContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg := generateCmd(ctx, newTestService(), sequence.DefaultRequest(), time.Second, 2)().(GenerationDoneMsg)
	if msg.Result.Err == nil {
		t.Fatal("generation with a cancelled context did not fail")
	}
	if !apperrors.IsContextError(msg.Result.Err) {
		t.Errorf("error = %v, want a context cancellation", msg.Result.Err)
	}
}

func TestSaveCmd(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "out.txt")
	cmd := saveCmd(sequence.Sequence{2, 4, 6}, path)

	msg, ok := cmd().(SaveDoneMsg)
	if !ok {
		t.Fatalf("command produced %T, want SaveDoneMsg", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("save failed: %v", msg.Err)
	}
	if msg.Path != path {
		t.Errorf("path = %q, want %q", msg.Path, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	want := "Term 1: 2\nTerm 2: 4\nTerm 3: 6\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestSaveCmdReportsFailure(t *testing.T) {
	t.Parallel()
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	// The parent of the target is a regular file, so it cannot become a
	// directory.
	msg := saveCmd(sequence.Sequence{1}, filepath.Join(blocker, "out.txt"))().(SaveDoneMsg)
	if msg.Err == nil {
		t.Fatal("save under a file path did not fail")
	}
}

func TestSampleMemStatsCmd(t *testing.T) {
	t.Parallel()
	msg, ok := sampleMemStatsCmd().(MemStatsMsg)
	if !ok {
		t.Fatalf("sample produced %T, want MemStatsMsg", sampleMemStatsCmd())
	}
	if msg.Alloc == 0 {
		t.Error("Alloc = 0, want a live heap")
	}
	if msg.NumGoroutine < 1 {
		t.Errorf("NumGoroutine = %d, want at least 1", msg.NumGoroutine)
	}
}

func TestSampleSysStatsCmd(t *testing.T) {
	t.Parallel()
	msg, ok := sampleSysStatsCmd().(SysStatsMsg)
	if !ok {
		t.Fatalf("sample produced %T, want SysStatsMsg", sampleSysStatsCmd())
	}
	if msg.CPUPercent < 0 || msg.CPUPercent > 100 {
		t.Errorf("CPUPercent = %v, want 0..100", msg.CPUPercent)
	}
	if msg.MemPercent < 0 || msg.MemPercent > 100 {
		t.Errorf("MemPercent = %v, want 0..100", msg.MemPercent)
	}
}

func TestWatchContextCmd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	msg, ok := watchContextCmd(ctx)().(ContextCancelledMsg)
	if !ok {
		t.Fatal("watch command did not produce ContextCancelledMsg")
	}
	if !errors.Is(msg.Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", msg.Err)
	}
}

func TestTickCmd(t *testing.T) {
	t.Parallel()
	if tickCmd() == nil {
		t.Fatal("tickCmd returned nil")
	}
}

package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/heartsync/internal/tuitest"
)

var scrubbedEnv = []string{"HEARTSYNC_", "GEMINI_", "VITE_GEMINI_"}

func TestMissingKeyNoticeInTerminal(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("builds the binary")
	}

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command:  []string{binary, "--no-alt-screen", "--lang", "en"},
		Dir:      cmdDir,
		Env:      []string{"HEARTSYNC_LOG_FILE=" + filepath.Join(t.TempDir(), "heartsync.log")},
		ScrubEnv: scrubbedEnv,
		Width:    100,
		Height:   32,
		Steps: []tuitest.Step{
			tuitest.Pause(time.Second),
			tuitest.Type("old friends catching up"),
			tuitest.Press(tuitest.KeyEnter),
			tuitest.Pause(500 * time.Millisecond),
			tuitest.Press(tuitest.KeyCtrlC),
		},
		Timeout:        8 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	for _, want := range []string{"Deep talk reimagined", "Describe the scene", "HEARTSYNC_GEMINI_API_KEY"} {
		if !rec.Contains(want) {
			frame, _ := rec.FinalFrame()
			t.Fatalf("no frame contains %q; final frame:\n%s", want, frame.Plain)
		}
	}
}

func TestQueryLanguageInTerminal(t *testing.T) {
	t.Parallel()
	if testing.Short() {
		t.Skip("builds the binary")
	}

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command:  []string{binary, "--no-alt-screen", "--query", "lang=zh"},
		Dir:      cmdDir,
		Env:      []string{"HEARTSYNC_LOG_FILE=" + filepath.Join(t.TempDir(), "heartsync.log")},
		ScrubEnv: scrubbedEnv,
		Width:    100,
		Height:   32,
		Steps: []tuitest.Step{
			tuitest.Pause(time.Second),
			tuitest.Press(tuitest.KeyCtrlL),
			tuitest.Pause(500 * time.Millisecond),
			tuitest.Press(tuitest.KeyCtrlC),
		},
		Timeout:        8 * time.Second,
		AllowInterrupt: true,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}
	if !rec.Contains("THE SCENE") {
		t.Fatal("chinese input label never rendered")
	}
	if !rec.Contains("Describe the scene") {
		t.Fatal("ctrl+l did not switch to english")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "heartsync-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}

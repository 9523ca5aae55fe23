package tuitest

import (
	"strings"
	"testing"
)

func TestParseFramesSplitsOnClear(t *testing.T) {
	raw := []byte("\x1b[2J\x1b[H\x1b[1mHeartSync\x1b[0m   \r\nDescribe the scene\n\n\x1b[2J\x1b[HCard 1\nCard 2")
	frames := parseFrames(raw)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Plain != "HeartSync\nDescribe the scene" {
		t.Fatalf("unexpected first frame: %q", frames[0].Plain)
	}
	if frames[1].Index != 1 || !strings.HasPrefix(frames[1].Plain, "Card 1") {
		t.Fatalf("unexpected second frame: %+v", frames[1])
	}
}

func TestRecordingSearch(t *testing.T) {
	rec := &Recording{Frames: parseFrames([]byte("\x1b[2Jfirst HeartSync\x1b[2Jsecond HeartSync\x1b[2Jthird"))}
	frame, ok := rec.FrameContaining("HeartSync")
	if !ok || !strings.HasPrefix(frame.Plain, "second") {
		t.Fatalf("expected the latest matching frame, got %+v", frame)
	}
	if rec.Contains("fourth") {
		t.Fatal("unexpected match")
	}
	final, ok := rec.FinalFrame()
	if !ok || final.Plain != "third" {
		t.Fatalf("final frame = %+v", final)
	}
	var empty *Recording
	if empty.Contains("x") {
		t.Fatal("nil recording should match nothing")
	}
}

func TestScrubbed(t *testing.T) {
	prefixes := []string{"HEARTSYNC_", "GEMINI_"}
	if !scrubbed("HEARTSYNC_GEMINI_API_KEY=abc", prefixes) {
		t.Fatal("prefixed variable should be scrubbed")
	}
	if !scrubbed("GEMINI_API_KEY=abc", prefixes) {
		t.Fatal("gemini key should be scrubbed")
	}
	if scrubbed("PATH=/usr/bin", prefixes) {
		t.Fatal("PATH must survive")
	}
}

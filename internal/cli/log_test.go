package cli

import (
	"bytes"
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blockcanvas/pkg/canvas"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("step") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("navigate") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("navigate") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("step") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))
	time.Sleep(5 * time.Millisecond)
	prog.done("Demo finished after 3 steps")

	out := buf.String()
	if !strings.Contains(out, "Demo finished after 3 steps") {
		t.Errorf("output missing message: %q", out)
	}
	if !regexp.MustCompile(`\(\d+(\.\d+)?m?s\)`).MatchString(out) {
		t.Errorf("output missing elapsed time: %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext() should return the attached logger")
	}
}

func TestRunDemoLogsSteps(t *testing.T) {
	cv := canvas.New()
	for _, b := range []canvas.Block{
		{ID: "left", Col: 0, Row: 0, Width: 100, Height: 100},
		{ID: "right", Col: 10, Row: 0, Width: 100, Height: 100},
	} {
		if _, err := cv.Add(b); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))
	c := New(&bytes.Buffer{}, LogInfo)
	if err := c.runDemo(ctx, cv, nil, time.Millisecond, 2); err != nil {
		t.Fatalf("runDemo() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"block=right", "block=left", "Demo finished after 2 steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

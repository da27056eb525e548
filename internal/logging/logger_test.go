package logging_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thumbwarm/internal/logging"
	"thumbwarm/internal/testsupport"
)

func TestConsoleFormatIncludesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logging.WithComponent(logger, "preload").Info("preloading file",
		logging.FieldFile, "/pics/a b.jpg",
		"index", 1,
	)

	out := buf.String()
	if !strings.Contains(out, "[preload]") {
		t.Fatalf("missing component tag: %q", out)
	}
	if !strings.Contains(out, "preloading file") {
		t.Fatalf("missing message: %q", out)
	}
	if !strings.Contains(out, `file="/pics/a b.jpg"`) {
		t.Fatalf("missing quoted file attr: %q", out)
	}
	if !strings.Contains(out, "index=1") {
		t.Fatalf("missing index attr: %q", out)
	}
}

func TestJSONFormatUsesCanonicalKeys(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Warn("teardown failed", "cause", "boom")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("unexpected level: %v", entry["level"])
	}
	if entry["msg"] != "teardown failed" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatal("missing ts key")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfigMirrorsIntoLogDir(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")
	cfg := testsupport.NewConfig(t, testsupport.WithLogDir(logDir))

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("config-driven line")

	data, err := os.ReadFile(filepath.Join(logDir, "thumbwarm.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), "config-driven line") {
		t.Fatalf("log file missing line: %q", data)
	}
}

func TestMirrorPathDuplicatesOutput(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "thumbwarm.log")
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Writer: &buf, MirrorPath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("mirrored line")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read mirror file: %v", err)
	}
	if !strings.Contains(string(data), "mirrored line") {
		t.Fatalf("mirror file missing line: %q", data)
	}
	if !strings.Contains(buf.String(), "mirrored line") {
		t.Fatalf("primary writer missing line: %q", buf.String())
	}
}

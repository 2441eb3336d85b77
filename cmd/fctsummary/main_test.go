package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nseay/ns-3-DCTCP-plus/src/logging"
	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

func writeTraces(t *testing.T, dir string) {
	t.Helper()
	for _, p := range trace.Protocols {
		if err := os.MkdirAll(filepath.Join(dir, string(p)), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(trace.Path(dir, p), []byte("1:100\n1:300\n2:400\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logging.SetOutput(&bytes.Buffer{})
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.SetLogLevel("info")
	})
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"fctsummary"}, args...))
	return out.String(), err
}

func TestSummaryShortFlags(t *testing.T) {
	dir := t.TempDir()
	writeTraces(t, dir)
	out, err := runApp(t, "-d", dir, "-t", "TcpNewReno")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "TcpNewReno") || strings.Contains(out, "TcpDctcp") {
		t.Fatalf("expected only TcpNewReno rows:\n%s", out)
	}
	if !strings.Contains(out, "200.000") {
		t.Fatalf("expected mean 200.000 for one flow:\n%s", out)
	}
}

func TestSummaryAllProtocols(t *testing.T) {
	dir := t.TempDir()
	writeTraces(t, dir)
	out, err := runApp(t, "--dir", dir, "--log-level", "debug")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, p := range trace.Protocols {
		if !strings.Contains(out, string(p)+" ") {
			t.Fatalf("missing %s:\n%s", p, out)
		}
	}
}

func TestSummaryMissingDirFlag(t *testing.T) {
	if _, err := runApp(t, "-t", "TcpDctcp"); err == nil {
		t.Fatalf("expected error without --dir")
	}
}

func TestSummaryUnsupportedProtocol(t *testing.T) {
	_, err := runApp(t, "-d", t.TempDir(), "-t", "TcpVegas")
	if !errors.Is(err, trace.ErrUnsupportedProtocol) {
		t.Fatalf("expected ErrUnsupportedProtocol got %v", err)
	}
}

func TestSummaryInvalidLogLevel(t *testing.T) {
	dir := t.TempDir()
	writeTraces(t, dir)
	out, err := runApp(t, "-d", dir, "--log-level", "loud")
	if err == nil || !strings.Contains(err.Error(), "loud") {
		t.Fatalf("expected unknown log level error got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no table on a bad log level got %q", out)
	}
}

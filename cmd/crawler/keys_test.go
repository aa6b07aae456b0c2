package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crawler/internal/config"
)

func TestPrintKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := printKeys(&buf, config.DefaultCrawlerConfig()); err != nil {
		t.Fatalf("printKeys() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"up     W, up, w",
		"right  D, d, right",
		"quit   q, esc, ctrl+c",
		"step   10",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintKeysRejectsBadTable(t *testing.T) {
	cfg := config.DefaultCrawlerConfig()
	cfg.Movement.Keys["up"] = []string{"q"}

	var buf bytes.Buffer
	if err := printKeys(&buf, cfg); err == nil {
		t.Error("expected error for reserved key binding")
	}
}

func TestPrintConfigDefaults(t *testing.T) {
	flagEffective = false
	var buf bytes.Buffer
	if err := printConfig(&buf); err != nil {
		t.Fatalf("printConfig() failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), config.DefaultYAML()) {
		t.Error("printConfig() should print the embedded defaults verbatim")
	}
}

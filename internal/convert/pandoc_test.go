package convert

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestPandoc_MissingExecutable(t *testing.T) {
	p := NewPandoc("/nonexistent/pandoc-binary")

	if err := p.Available(context.Background()); err == nil {
		t.Error("Available should fail for a missing executable")
	}

	_, err := p.Convert(context.Background(), "# Hello")
	if err == nil {
		t.Fatal("Convert should fail for a missing executable")
	}
	if !strings.Contains(err.Error(), "convert:") {
		t.Errorf("error should carry the package prefix: %v", err)
	}
}

func TestNewPandoc_DefaultPath(t *testing.T) {
	p := NewPandoc("")
	if p.path != "pandoc" {
		t.Errorf("path = %q, want pandoc", p.path)
	}
}

func TestConversionProfile(t *testing.T) {
	// The option profile is part of the contract: smart punctuation off,
	// loose lists accepted, YAML metadata recognized.
	if !strings.Contains(sourceFormat, "-smart") {
		t.Error("smart punctuation must be disabled")
	}
	if !strings.Contains(sourceFormat, "+lists_without_preceding_blankline") {
		t.Error("loose list handling must be enabled")
	}
	if !strings.Contains(sourceFormat, "+yaml_metadata_block") {
		t.Error("front matter must be recognized")
	}
	if targetFormat != "zimwiki" {
		t.Errorf("target = %q, want zimwiki", targetFormat)
	}
}

func TestWrapRunError(t *testing.T) {
	base := errors.New("exit status 64")

	var empty bytes.Buffer
	if got := wrapRunError(base, &empty); !strings.Contains(got.Error(), "exit status 64") {
		t.Errorf("error = %v", got)
	}

	diag := bytes.NewBufferString("pandoc: unknown reader\nsecond line ignored\n")
	got := wrapRunError(base, diag)
	if !strings.Contains(got.Error(), "unknown reader") {
		t.Errorf("stderr snippet missing: %v", got)
	}
	if strings.Contains(got.Error(), "second line") {
		t.Errorf("snippet should be first line only: %v", got)
	}
	if !errors.Is(got, base) {
		t.Error("wrapped error should unwrap to the cause")
	}
}

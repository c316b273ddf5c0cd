package convert

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Fixed conversion profile: smart punctuation disabled, lists without a
// preceding blank line accepted, and the YAML metadata block recognized so
// a stray header never leaks into the body.
const (
	sourceFormat = "markdown+yaml_metadata_block+lists_without_preceding_blankline-smart"
	targetFormat = "zimwiki"
)

// Pandoc invokes the pandoc executable as a subprocess, piping the note
// body to stdin and reading converted markup from stdout.
type Pandoc struct {
	path string
}

// NewPandoc returns a Pandoc converter using the given executable path,
// defaulting to "pandoc" resolved via PATH.
func NewPandoc(path string) *Pandoc {
	if path == "" {
		path = "pandoc"
	}
	return &Pandoc{path: path}
}

// Available probes the converter at startup. A failure here is a
// configuration error: the batch must not start without a working
// converter.
func (p *Pandoc) Available(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, p.path, "--version")
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("convert: %s not available: %w", p.path, err)
	}
	return nil
}

// Convert runs one conversion. Any launch failure or non-zero exit is a
// hard per-note error; captured stderr is attached for diagnostics.
func (p *Pandoc) Convert(ctx context.Context, body string) (string, error) {
	cmd := exec.CommandContext(ctx, p.path, "-f", sourceFormat, "-t", targetFormat, "--wrap=none")
	cmd.Stdin = strings.NewReader(body)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", wrapRunError(err, &stderr)
	}
	return stdout.String(), nil
}

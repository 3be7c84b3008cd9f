package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// minimalImage is the smallest well-formed 16-bit image: header with
// all lengths zero, empty option list, empty tables.
var minimalImage = []byte{
	0x01, 0x00, 'o', '6', '5', 0x00, // magic
	0x00, 0x00, // mode
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // tbase..dlen
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // bbase..zlen
	0x00, 0x00, // stack
	0x00,       // end of options
	0x00, 0x00, // undefined symbol count
	0x00,       // end of .text relocs
	0x00,       // end of .data relocs
	0x00, 0x00, // exported symbol count
}

func TestRunSingleFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "valid.o65")
	if err := os.WriteFile(name, minimalImage, 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if status := run([]string{name}, &out, &errOut); status != 0 {
		t.Errorf("run = %d, want 0 (stderr: %s)", status, errOut.String())
	}
	if strings.Contains(out.String(), name+":") {
		t.Error("single-file dump should not be prefixed with the file name")
	}
	if !strings.Contains(out.String(), "Exported Symbols: none") {
		t.Errorf("dump missing from stdout:\n%s", out.String())
	}
}

// A failing file must not stop the batch, but must fail the run; each
// named file is dumped exactly once under its own name.
func TestRunBatchWithFailure(t *testing.T) {
	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.o65")
	if err := os.WriteFile(valid, minimalImage, 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.bin")

	var out, errOut bytes.Buffer
	if status := run([]string{valid, missing}, &out, &errOut); status != 1 {
		t.Errorf("run = %d, want 1", status)
	}
	if !strings.Contains(out.String(), valid+":") {
		t.Errorf("stdout missing per-file heading for %s:\n%s", valid, out.String())
	}
	if !strings.Contains(out.String(), "Exported Symbols: none") {
		t.Errorf("valid file's dump missing from stdout:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), missing) {
		t.Errorf("stderr does not name the failing file:\n%s", errOut.String())
	}
}

func TestRunNotO65(t *testing.T) {
	name := filepath.Join(t.TempDir(), "readme.txt")
	if err := os.WriteFile(name, []byte("just some text, long enough to read a header from"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	if status := run([]string{name}, &out, &errOut); status != 1 {
		t.Errorf("run = %d, want 1", status)
	}
	if !strings.Contains(errOut.String(), "not in .o65 format") {
		t.Errorf("stderr = %q, want format mismatch report", errOut.String())
	}
}

func TestRunNoArgs(t *testing.T) {
	var out, errOut bytes.Buffer
	if status := run(nil, &out, &errOut); status != 1 {
		t.Errorf("run = %d, want 1", status)
	}
	if !strings.Contains(errOut.String(), "Usage:") {
		t.Errorf("stderr = %q, want usage message", errOut.String())
	}
}

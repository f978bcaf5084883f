package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSample(t *testing.T, dir string) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(60 * x), G: uint8(60 * y), B: 30, A: 255})
		}
	}

	path := filepath.Join(dir, "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create sample: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode sample: %v", err)
	}
	return path
}

func TestRunPromptsForName(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", input, "-dir", dir}, strings.NewReader("edges\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	if !strings.Contains(out, "Enter the name of your image") || !strings.Contains(out, "Image saved") {
		t.Fatalf("unexpected stdout: %q", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "outFile_edges.jpeg")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunNameFlagSkipsPrompt(t *testing.T) {
	dir := t.TempDir()
	input := writeSample(t, dir)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", input, "-dir", dir, "-name", "flagged", "-border", "clamp", "-preview", "-v"},
		strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	out := stdout.String()
	if strings.Contains(out, "Enter the name") {
		t.Fatalf("prompt shown despite -name: %q", out)
	}
	if !strings.Contains(out, "\x1b[48;2;") {
		t.Fatalf("preview missing from stdout")
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") {
		t.Fatalf("expected debug logging on stderr, got %q", stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "outFile_flagged.jpeg")); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestRunMissingInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-in", filepath.Join(t.TempDir(), "missing.bmp")}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "load input") {
		t.Fatalf("stderr = %q", stderr.String())
	}
}

func TestRunBadBorder(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-border", "mirror"}, strings.NewReader(""), &stdout, &stderr); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
}

func TestReadLine(t *testing.T) {
	cases := map[string]string{
		"name\n":   "name",
		"name\r\n": "name",
		"partial":  "partial",
		"":         "",
		"a\nb\n":   "a",
	}
	for in, want := range cases {
		got, err := readLine(strings.NewReader(in))
		if err != nil {
			t.Fatalf("readLine(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("readLine(%q) = %q, want %q", in, got, want)
		}
	}
}

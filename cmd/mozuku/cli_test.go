package main_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func buildMozuku(t *testing.T, dir string) string {
	t.Helper()
	bin := filepath.Join(dir, "mozuku.bin")
	build := exec.Command("go", "build", "-o", bin, "github.com/clearclown/mozuku-go/cmd/mozuku")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("failed to build CLI: %v", err)
	}
	return bin
}

func TestCLICheckFlagsRaNuki(t *testing.T) {
	tmp := t.TempDir()
	bin := buildMozuku(t, tmp)

	src := filepath.Join(tmp, "article.txt")
	if err := os.WriteFile(src, []byte("彼は魚を食べれる。"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "check", src)
	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		t.Fatalf("cli timed out, output:\n%s", out)
	}
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}

	outStr := string(out)
	if !strings.Contains(outStr, "ra-nuki") {
		t.Fatalf("expected a ra-nuki diagnostic, got:\n%s", outStr)
	}
}

func TestCLICheckNoFilesIsAnError(t *testing.T) {
	tmp := t.TempDir()
	bin := buildMozuku(t, tmp)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "check")
	if err := cmd.Run(); err == nil {
		t.Fatal("expected a non-zero exit when no files are given")
	}
}

func TestCLIHoverShowsMorphologicalDetail(t *testing.T) {
	tmp := t.TempDir()
	bin := buildMozuku(t, tmp)

	src := filepath.Join(tmp, "article.txt")
	if err := os.WriteFile(src, []byte("私は学生です"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "hover", src, "0", "0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(string(out), "品詞") {
		t.Fatalf("expected hover markup, got:\n%s", out)
	}
}

func TestCLITokensDumpsSemanticTokens(t *testing.T) {
	tmp := t.TempDir()
	bin := buildMozuku(t, tmp)

	src := filepath.Join(tmp, "article.txt")
	if err := os.WriteFile(src, []byte("私は学生です"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	cmd := exec.CommandContext(ctx, bin, "tokens", src)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("cli failed: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(string(out), "tokenType=") {
		t.Fatalf("expected semantic token output, got:\n%s", out)
	}
}

package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeScript(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestRunFileSuccess(t *testing.T) {
	path := writeScript(t, `print 1 + 2 * 3;`)

	var runErr error
	out := captureStdout(t, func() { runErr = runFile(path) })

	if runErr != nil {
		t.Fatalf("unexpected error: %v", runErr)
	}
	if out != "7\n" {
		t.Fatalf("stdout = %q, want %q", out, "7\n")
	}
}

func TestRunFileMissingFileExits74(t *testing.T) {
	err := runFile(filepath.Join(t.TempDir(), "missing.lox"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if code := ExitCodeFor(err); code != 74 {
		t.Fatalf("ExitCodeFor = %d, want 74", code)
	}
}

func TestRunFileParseErrorExits65(t *testing.T) {
	path := writeScript(t, `var = ;`)
	err := runFile(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if code := ExitCodeFor(err); code != 65 {
		t.Fatalf("ExitCodeFor = %d, want 65", code)
	}
}

func TestRunFileRuntimeErrorExits70(t *testing.T) {
	path := writeScript(t, `print "a" - 1;`)
	err := runFile(path)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if code := ExitCodeFor(err); code != 70 {
		t.Fatalf("ExitCodeFor = %d, want 70", code)
	}
}

func TestRunLoxArgsTooManyExits64(t *testing.T) {
	err := runLoxArgs([]string{"a.lox", "b.lox"})
	if err == nil {
		t.Fatal("expected a usage error")
	}
	if code := ExitCodeFor(err); code != 64 {
		t.Fatalf("ExitCodeFor = %d, want 64", code)
	}
}

func TestExitCodeForNilIsZero(t *testing.T) {
	if code := ExitCodeFor(nil); code != 0 {
		t.Fatalf("ExitCodeFor(nil) = %d, want 0", code)
	}
}

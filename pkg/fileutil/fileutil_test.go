package fileutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestAtomicWriteFile(t *testing.T) {
	t.Run("creates new file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		if err := AtomicWriteFile(path, []byte("---\nname: Ann\n---\n"), 0o644); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(data, []byte("---\nname: Ann\n---\n")) {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("replaces existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "doc.md")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := AtomicWriteFile(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}

		data, _ := os.ReadFile(path)
		if string(data) != "new" {
			t.Errorf("content = %q, want new", data)
		}
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "doc.md")
		if err := AtomicWriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".mdvars-atomic-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("missing parent directory errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "doc.md")
		if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
			t.Error("expected an error for a missing parent directory")
		}
	})
}

func TestReadFileWithLimit(t *testing.T) {
	t.Run("reads small file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "small.md")
		if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}

		data, err := ReadFileWithLimit(path)
		if err != nil {
			t.Fatalf("ReadFileWithLimit() error = %v", err)
		}
		if string(data) != "hello" {
			t.Errorf("data = %q", data)
		}
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.md")
		if err := os.WriteFile(path, bytes.Repeat([]byte("a"), MaxFileSize+1), 0o644); err != nil {
			t.Fatal(err)
		}

		_, err := ReadFileWithLimit(path)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("error = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "nope.md"))
		if err == nil {
			t.Error("expected an error for a missing file")
		}
	})
}

package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReplaceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pen.css")
	if err := emit(path, "#divpen {}", "#divpen { box-shadow: none; }"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "#divpen {}\n#divpen { box-shadow: none; }\n\n"; string(data) != want {
		t.Fatalf("file = %q, want %q", data, want)
	}

	boom := errors.New("boom")
	if err := replaceFile(path, func(io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("replaceFile error = %v", err)
	}
	data, _ = os.ReadFile(path)
	if len(data) == 0 {
		t.Fatal("a failed write must leave the previous file in place")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("temporary files left behind: %d entries", len(entries))
	}
}

package site

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
)

func TestRead(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "site.html", []byte("<html>hi</html>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src := NewSource(fs, "site.html")
	data, err := src.Read()
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if got, want := string(data), "<html>hi</html>"; got != want {
		t.Fatalf("Read got=%q want=%q", got, want)
	}
}

func TestReadSeesChanges(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "site.html", []byte("one"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src := NewSource(fs, "site.html")
	if _, err := src.Read(); err != nil {
		t.Fatalf("first Read error: %v", err)
	}
	if err := util.WriteFile(fs, "site.html", []byte("two"), 0o644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	data, err := src.Read()
	if err != nil {
		t.Fatalf("second Read error: %v", err)
	}
	if got, want := string(data), "two"; got != want {
		t.Fatalf("Read got=%q want=%q", got, want)
	}
}

func TestReadMissing(t *testing.T) {
	src := NewSource(memfs.New(), "site.html")
	if _, err := src.Read(); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read error=%v want ErrNotExist", err)
	}
}

func TestSend(t *testing.T) {
	fs := memfs.New()
	if err := util.WriteFile(fs, "site.html", []byte("<html>hi</html>"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	src := NewSource(fs, "site.html")
	var buf bytes.Buffer
	if err := src.Send(&buf); err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if got, want := buf.String(), "<html>hi</html>"; got != want {
		t.Fatalf("Send got=%q want=%q", got, want)
	}
}

package internal

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writePackage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"include/getopt.h": "int getopt(int, char *const[], const char *);\n",
		"lib/libgetopt.a":  "!<arch>\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestOutputResult_Dir(t *testing.T) {
	src := writePackage(t)
	dest := filepath.Join(t.TempDir(), "out")

	if err := outputResult(src, dest); err != nil {
		t.Fatalf("outputResult() failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dest, "include", "getopt.h"))
	if err != nil {
		t.Fatalf("header not copied: %v", err)
	}
	if len(data) == 0 {
		t.Error("copied header is empty")
	}
}

func TestOutputResult_Zip(t *testing.T) {
	src := writePackage(t)
	dest := filepath.Join(t.TempDir(), "getopt.zip")

	if err := outputResult(src, dest); err != nil {
		t.Fatalf("outputResult() failed: %v", err)
	}

	zr, err := zip.OpenReader(dest)
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	defer zr.Close()

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		got[f.Name] = string(data)
	}
	if len(got) != 2 {
		t.Fatalf("zip has %d entries, want 2: %v", len(got), got)
	}
	if got["lib/libgetopt.a"] != "!<arch>\n" {
		t.Errorf("lib/libgetopt.a = %q", got["lib/libgetopt.a"])
	}
}

func TestDirArg(t *testing.T) {
	if got := dirArg(nil); got != "." {
		t.Errorf("dirArg(nil) = %q, want .", got)
	}
	if got := dirArg([]string{"src"}); got != "src" {
		t.Errorf("dirArg(src) = %q, want src", got)
	}
}

func TestZipDir_Errors(t *testing.T) {
	src := writePackage(t)

	// Missing parent directory: the archive cannot be created.
	dest := filepath.Join(t.TempDir(), "missing", "getopt.zip")
	if err := zipDir(src, dest); err == nil {
		t.Error("zipDir() into a missing directory should fail")
	}

	// Unreadable source: the walk fails and the error is returned.
	dest = filepath.Join(t.TempDir(), "getopt.zip")
	if err := zipDir(filepath.Join(src, "nonexistent"), dest); err == nil {
		t.Error("zipDir() of a missing source should fail")
	}
}

func TestZipDir_FailingWriter(t *testing.T) {
	src := writePackage(t)
	w := zip.NewWriter(failingWriter{})
	err := addDir(w, src)
	if err == nil {
		err = w.Close()
	}
	if err == nil {
		t.Error("writing to a failing writer should report an error")
	}
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

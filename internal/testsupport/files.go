package testsupport

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// OPFBytes builds an archive holding db and, when project is non-nil, a
// project entry. db is written verbatim so fixtures can carry malformed lines.
func OPFBytes(t testing.TB, db string, project *string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	entries := []struct {
		name string
		body string
	}{{"db", db}}
	if project != nil {
		entries = append(entries, struct {
			name string
			body string
		}{"project", *project})
	}
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatalf("create %s entry: %v", entry.name, err)
		}
		if _, err := w.Write([]byte(entry.body)); err != nil {
			t.Fatalf("write %s entry: %v", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return buf.Bytes()
}

// WriteOPF writes an OPF fixture to path and returns path.
func WriteOPF(t testing.TB, path, db string, project *string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, OPFBytes(t, db, project), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Ptr returns a pointer to s, for optional fixture fields.
func Ptr(s string) *string {
	return &s
}

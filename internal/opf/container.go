package opf

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// Archive entry names.
const (
	EntryDB      = "db"
	EntryProject = "project"
)

// Container is an opened OPF archive held in memory.
type Container struct {
	reader *zip.Reader
}

// OpenContainer reads a zip archive from data.
func OpenContainer(data []byte) (*Container, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &MissingEntryError{Name: EntryDB, Err: fmt.Errorf("read archive: %w", err)}
	}
	return &Container{reader: reader}, nil
}

// ReadText returns the named entry as text. A missing project entry yields ""
// and no error; any other missing entry is a *MissingEntryError.
func (c *Container) ReadText(name string) (string, error) {
	file, err := c.reader.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if name == EntryProject {
				return "", nil
			}
			return "", &MissingEntryError{Name: name}
		}
		return "", &MissingEntryError{Name: name, Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", &MissingEntryError{Name: name, Err: fmt.Errorf("read entry: %w", err)}
	}
	return string(data), nil
}

// ReadLines returns the named entry split on "\r\n" or "\n".
func (c *Container) ReadLines(name string) ([]string, error) {
	text, err := c.ReadText(name)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// WriteContainer builds a new archive holding the db and project entries.
func WriteContainer(db, project string) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range []struct {
		name string
		body string
	}{
		{EntryDB, db},
		{EntryProject, project},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("create %s entry: %w", entry.name, err)
		}
		if _, err := io.WriteString(w, entry.body); err != nil {
			return nil, fmt.Errorf("write %s entry: %w", entry.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TableError reports a table that could not be written.
type TableError struct {
	Table string
	Path  string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to write %s table to %s: %v", e.Table, e.Path, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// WriteCSV writes t to path as comma-separated values, creating the parent
// directory when needed.
func WriteCSV(path string, t Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := csv.NewWriter(file)
	if err := w.Write(t.Header); err != nil {
		file.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := w.WriteAll(t.Rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}
	return file.Close()
}

// CSVPath returns "<dir>/<stem>_<table>.csv".
func CSVPath(dir, stem, table string) string {
	return filepath.Join(dir, stem+"_"+table+".csv")
}

// WriteAll writes each table to its own CSV file. A failing table does not
// stop the others; the paths written and the joined *TableError values are
// returned.
func WriteAll(dir, stem string, tables []Table) ([]string, error) {
	var written []string
	var errs []error
	for _, t := range tables {
		path := CSVPath(dir, stem, t.Name)
		if err := WriteCSV(path, t); err != nil {
			errs = append(errs, &TableError{Table: t.Name, Path: path, Err: err})
			continue
		}
		written = append(written, path)
	}
	return written, errors.Join(errs...)
}

// Package results appends run results to a delimited table, growing the
// header as later runs report new fields so earlier rows stay aligned.
package results

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// DefaultDelimiter matches the tab-separated tables the analysis
// tooling consumes.
const DefaultDelimiter = '\t'

// Field is a single named cell of a result row. Row order is
// significant: fields of a new row lead the merged header.
type Field struct {
	Name  string
	Value any
}

// FileSystem is the subset of pkg/filesystem the writer needs.
type FileSystem interface {
	Exists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// AppendRow appends row to the table at path, creating it if missing.
//
// The header is the union of the new row's fields (in row order)
// followed by any pre-existing fields the new row lacks; the whole file
// is rewritten so every row matches the merged header, with empty cells
// where a row has no value for a field.
func AppendRow(fileSystem FileSystem, path string, row []Field, delimiter rune) error {
	if delimiter == 0 {
		delimiter = DefaultDelimiter
	}

	var existingHeader []string
	var existingRows [][]string
	if fileSystem.Exists(path) {
		content, err := fileSystem.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read result table '%s': %w", path, err)
		}
		reader := csv.NewReader(bytes.NewReader(content))
		reader.Comma = delimiter
		reader.FieldsPerRecord = -1
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to parse result table '%s': %w", path, err)
		}
		if len(records) > 0 {
			existingHeader = records[0]
			existingRows = records[1:]
		}
	}

	header := make([]string, 0, len(row)+len(existingHeader))
	seen := make(map[string]bool, len(row)+len(existingHeader))
	for _, field := range row {
		if !seen[field.Name] {
			header = append(header, field.Name)
			seen[field.Name] = true
		}
	}
	for _, name := range existingHeader {
		if !seen[name] {
			header = append(header, name)
			seen[name] = true
		}
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)
	writer.Comma = delimiter
	if err := writer.Write(header); err != nil {
		return err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	for _, oldRow := range existingRows {
		record := make([]string, len(header))
		for i, value := range oldRow {
			if i >= len(existingHeader) {
				break
			}
			record[index[existingHeader[i]]] = value
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	record := make([]string, len(header))
	for _, field := range row {
		record[index[field.Name]] = FormatValue(field.Value)
	}
	if err := writer.Write(record); err != nil {
		return err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return fileSystem.WriteFile(path, buffer.Bytes())
}

// FormatValue renders a cell value; floats use compact 4-significant-
// digit notation.
func FormatValue(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'g', 4, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'g', 4, 32)
	}
	return fmt.Sprint(value)
}

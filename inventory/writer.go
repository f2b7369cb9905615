package inventory

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/francoispqt/gojay"
	"github.com/viant/scopology"
	"io"
)

// Writer writes registry entries as JSON lines
type Writer struct {
	w     io.Writer
	count int
}

// Write writes entry record line
func (w *Writer) Write(entry *scopology.Entry) error {
	data, err := gojay.MarshalJSONObject(NewRecord(entry))
	if err != nil {
		return fmt.Errorf("failed to encode %v entry %v: %w", entry.ScopeID, entry.Index, err)
	}
	data = append(data, '\n')
	if _, err = w.w.Write(data); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns number of written records
func (w *Writer) Count() int {
	return w.count
}

// NewWriter creates inventory writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write enumerates scope chain from start and writes one record per registry entity, returns records count
func Write(w io.Writer, start scopology.Scope, opts ...scopology.Option) (int, error) {
	writer := NewWriter(w)
	err := scopology.EnumerateEntries(start, func(entry *scopology.Entry) (bool, error) {
		return true, writer.Write(entry)
	}, opts...)
	return writer.Count(), err
}

// Read reads JSON lines records, lines are not limited in length
func Read(r io.Reader) ([]*Record, error) {
	var result []*Record
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		line, err := reader.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if data := bytes.TrimSpace(line); len(data) > 0 {
			record := &Record{}
			if decodeErr := gojay.UnmarshalJSONObject(data, record); decodeErr != nil {
				return nil, fmt.Errorf("failed to decode inventory line %d: %w", lineNo, decodeErr)
			}
			result = append(result, record)
		}
		if err == io.EOF {
			return result, nil
		}
	}
}

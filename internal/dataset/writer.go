package dataset

import (
	"bufio"
	"io"
)

// Writer writes dataset rows in the same semicolon-delimited shape as the
// input, preserving the original header.
type Writer struct {
	w      *bufio.Writer
	header string
}

// NewWriter creates a writer that will emit the given header line.
func NewWriter(w io.Writer, header string) *Writer {
	return &Writer{
		w:      bufio.NewWriter(w),
		header: header,
	}
}

// WriteHeader writes the header line.
func (dw *Writer) WriteHeader() error {
	_, err := dw.w.WriteString(dw.header + "\n")
	return err
}

// WriteRecord writes a single record as a dataset line.
func (dw *Writer) WriteRecord(r Record) error {
	_, err := dw.w.WriteString(r.Join() + "\n")
	return err
}

// WriteRaw writes an already-formatted dataset line verbatim.
func (dw *Writer) WriteRaw(line string) error {
	_, err := dw.w.WriteString(line + "\n")
	return err
}

// Flush flushes any buffered data to the underlying writer.
func (dw *Writer) Flush() error {
	return dw.w.Flush()
}

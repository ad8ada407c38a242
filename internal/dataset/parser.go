package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Parser reads dataset rows from a semicolon-delimited file.
// The first line is treated as the header and is not returned by Next.
type Parser struct {
	reader     *bufio.Reader
	file       *os.File
	lineNumber int
	headerLine string
	skipped    int
	logger     *zap.Logger
}

// NewParser creates a parser for the given file. Use "-" for stdin.
func NewParser(path string) (*Parser, error) {
	if path == "-" {
		return NewParserFromReader(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}

	p := &Parser{
		file:   file,
		reader: bufio.NewReader(file),
		logger: zap.NewNop(),
	}

	if err := p.parseHeader(); err != nil {
		p.Close()
		return nil, err
	}

	return p, nil
}

// NewParserFromReader creates a parser from an io.Reader (e.g. stdin).
func NewParserFromReader(r io.Reader) (*Parser, error) {
	p := &Parser{
		reader: bufio.NewReader(r),
		logger: zap.NewNop(),
	}

	if err := p.parseHeader(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetLogger sets the logger used for malformed-row warnings.
func (p *Parser) SetLogger(l *zap.Logger) {
	p.logger = l
}

// parseHeader reads the header line and strips a UTF-8 byte-order mark
// if present on the first field.
func (p *Parser) parseHeader() error {
	line, err := p.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return fmt.Errorf("read header: %w", err)
	}
	if line == "" {
		return &ParseError{Line: 0, Message: "no header line found"}
	}
	p.lineNumber++

	line = strings.TrimRight(line, "\r\n")
	line = strings.TrimPrefix(line, "\ufeff")
	p.headerLine = line

	return nil
}

// Next returns the next valid data row. Rows with fewer than NumFields
// fields are skipped with a warning. Returns nil, nil at end of input.
func (p *Parser) Next() (*Row, error) {
	for {
		line, err := p.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read dataset line: %w", err)
		}
		if line == "" && err == io.EOF {
			return nil, nil
		}
		p.lineNumber++

		raw := strings.TrimRight(line, "\r\n")
		if raw == "" {
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		fields := strings.Split(raw, Delimiter)
		if len(fields) < NumFields {
			p.skipped++
			p.logger.Warn("skipping row with insufficient fields",
				zap.Int("line", p.lineNumber),
				zap.Int("fields", len(fields)))
			if err == io.EOF {
				return nil, nil
			}
			continue
		}

		return &Row{
			Line:   p.lineNumber,
			Raw:    raw,
			Record: RecordFromFields(fields),
		}, nil
	}
}

// Header returns the header line with any byte-order mark removed.
func (p *Parser) Header() string {
	return p.headerLine
}

// LineNumber returns the number of the last line read.
func (p *Parser) LineNumber() int {
	return p.lineNumber
}

// Skipped returns the number of malformed rows dropped so far.
func (p *Parser) Skipped() int {
	return p.skipped
}

// Close closes the underlying file, if any.
func (p *Parser) Close() error {
	if p.file != nil {
		return p.file.Close()
	}
	return nil
}

// ParseError represents a dataset parsing error with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset parse error at line %d: %s", e.Line, e.Message)
}

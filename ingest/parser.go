package ingest

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/safedep/dry/log"
)

const maxLineSize = 10 * 1024 * 1024

// ParseResult contains the decoded records and the count of lines that
// could not be decoded.
type ParseResult struct {
	Records []Record
	Invalid int
}

// Parse decodes an export. A document starting with '[' is read as a JSON
// array, anything else as JSON lines. Invalid lines are skipped and counted.
func Parse(r io.Reader) (*ParseResult, error) {
	br := bufio.NewReader(r)

	first, err := peekNonSpace(br)
	if err != nil {
		if err == io.EOF {
			return &ParseResult{}, nil
		}
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	if first == '[' {
		return parseArray(br)
	}
	return parseLines(br)
}

func parseArray(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	var records []Record
	if err := sonic.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode export array: %w", err)
	}

	return &ParseResult{Records: records}, nil
}

func parseLines(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineCount := 0
	for scanner.Scan() {
		lineCount++

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var rec Record
		if err := sonic.Unmarshal(line, &rec); err != nil {
			log.Debugf("Skip invalid JSON line %d: %v", lineCount, err)
			result.Invalid++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan export: %w", err)
	}

	return result, nil
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return b, nil
	}
}

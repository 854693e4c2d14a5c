package asm

import (
	"bufio"
	"io"
)

// ReadLines reads r into an ordered sequence of raw lines, accepting both
// LF and CRLF termination. It performs no trimming or classification —
// that is Normalize's job.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

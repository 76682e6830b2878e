package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// clearValue typed at a field prompt empties an optional field.
const clearValue = "-"

type lineResult struct {
	line string
	err  error
}

// LineReader reads input lines in a background goroutine so a blocked
// read can be abandoned when ctx is done. The goroutine reads at most one
// line ahead and stops after the first read error.
type LineReader struct {
	once  sync.Once
	r     *bufio.Reader
	lines chan lineResult
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r), lines: make(chan lineResult)}
}

func (l *LineReader) start() {
	go func() {
		defer close(l.lines)
		for {
			line, err := readLine(l.r)
			l.lines <- lineResult{line: line, err: err}
			if err != nil {
				return
			}
		}
	}()
}

// ReadLine returns the next trimmed line. It returns ctx.Err() as soon as
// ctx is done, even while the underlying reader is blocked; the pending
// line, if any, is delivered to the next call.
func (l *LineReader) ReadLine(ctx context.Context) (string, error) {
	l.once.Do(l.start)
	select {
	case res, ok := <-l.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(ctx context.Context, reader *LineReader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return reader.ReadLine(ctx)
}

// GetField prompts for a form field showing its current value. An empty
// answer keeps current; clearValue returns an empty string.
func GetField(ctx context.Context, reader *LineReader, label, current string, w io.Writer) (string, error) {
	prompt := label
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]", label, current)
	}
	v, err := GetSimpleText(ctx, reader, prompt, w)
	if err != nil {
		return "", err
	}
	switch v {
	case "":
		return current, nil
	case clearValue:
		return "", nil
	default:
		return v, nil
	}
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count as
// yes; anything else, including EOF and a done ctx, is no.
func Confirm(ctx context.Context, reader *LineReader, question string, w io.Writer) bool {
	if _, err := fmt.Fprintf(w, "%s [y/N] ", question); err != nil {
		return false
	}
	v, err := reader.ReadLine(ctx)
	if err != nil {
		return false
	}
	switch strings.ToLower(v) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

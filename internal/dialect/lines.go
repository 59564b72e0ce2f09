package dialect

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// readLine returns the next line of r without its terminator, or io.EOF once
// the input is exhausted. A final line without a trailing newline is still
// returned before EOF is signalled. All shipped dialects delimit entries on
// line breaks, so they share this tokenizer.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

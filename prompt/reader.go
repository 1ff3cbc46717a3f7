package prompt

import (
	"bufio"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// LineReader supplies one line of user input per call. Exactly one of
// the two strategies is used per Run invocation, chosen by Options.
type LineReader interface {
	// ReadLine blocks for one line of input, without the trailing
	// newline.
	ReadLine() (string, error)

	// ReadMasked blocks for one line of obscured input, echoing mask
	// for each keystroke. A zero mask echoes nothing at all.
	ReadMasked(mask rune) (string, error)
}

// ConsoleReader reads from a terminal or any io.Reader. Masked reads
// require a real terminal; on pipes they silently degrade to plain
// reads so that scripted runs keep working.
type ConsoleReader struct {
	in  *bufio.Reader
	src io.Reader
	out io.Writer
}

// NewConsoleReader wraps in and out, which are usually os.Stdin and
// os.Stdout.
func NewConsoleReader(in io.Reader, out io.Writer) *ConsoleReader {
	return &ConsoleReader{in: bufio.NewReader(in), src: in, out: out}
}

// ReadLine reads up to the next newline. A final unterminated line at
// EOF is still returned.
func (r *ConsoleReader) ReadLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadMasked reads a line in raw mode. With a zero mask nothing is
// echoed; otherwise each keystroke is echoed as the mask rune.
func (r *ConsoleReader) ReadMasked(mask rune) (string, error) {
	f, ok := r.src.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return r.ReadLine()
	}
	if mask == 0 {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		io.WriteString(r.out, "\n")
		return string(b), nil
	}
	return readMasked(f, r.out, mask)
}

// ScriptReader replays canned lines and is intended for tests. Each
// read invokes OnRead first, which test code typically uses to advance
// a fake clock. Reads past the script return io.EOF.
type ScriptReader struct {
	Lines  []string
	OnRead func()

	next int
}

// ReadLine returns the next scripted line.
func (r *ScriptReader) ReadLine() (string, error) {
	if r.OnRead != nil {
		r.OnRead()
	}
	if r.next >= len(r.Lines) {
		return "", io.EOF
	}
	line := r.Lines[r.next]
	r.next++
	return line, nil
}

// ReadMasked returns the next scripted line; the mask is ignored.
func (r *ScriptReader) ReadMasked(mask rune) (string, error) {
	return r.ReadLine()
}

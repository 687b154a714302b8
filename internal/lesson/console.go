package lesson

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console is the line-oriented terminal a lesson talks to.
type Console struct {
	in   *bufio.Reader
	out  io.Writer
	echo bool
	err  error
}

// NewConsole wraps in and out. With echo set, every line read is written
// back to out so a piped session reads like an interactive one.
func NewConsole(in io.Reader, out io.Writer, echo bool) *Console {
	if in == nil {
		in = strings.NewReader("")
	}
	return &Console{in: bufio.NewReader(in), out: out, echo: echo}
}

// Println writes each line followed by a newline.
func (c *Console) Println(lines ...string) {
	for _, l := range lines {
		c.write(l + "\n")
	}
}

// Prompt writes text without a newline and reads one line of input. End of
// input reads as an empty line.
func (c *Console) Prompt(text string) string {
	c.write(text)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) && c.err == nil {
		c.err = fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimRight(line, "\r\n")
	if c.echo {
		c.write(line + "\n")
	}
	return line
}

// Err returns the first read or write failure.
func (c *Console) Err() error { return c.err }

func (c *Console) write(s string) {
	if c.err != nil {
		return
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		c.err = fmt.Errorf("writing output: %w", err)
	}
}

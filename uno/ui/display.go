package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Console is the terminal a human plays on. Every printed line is followed by
// delay so bot moves can be followed.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	delay time.Duration
}

func NewConsole(in io.Reader, out io.Writer, delay time.Duration) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		delay: delay,
	}
}

func (c *Console) Printfln(format string, args ...interface{}) {
	c.Println(fmt.Sprintf(format, args...))
}

func (c *Console) Println(args ...interface{}) {
	_, _ = fmt.Fprintln(c.out, args...)
	c.pause()
}

// Print writes text as is. Messages from msg already end with a newline.
func (c *Console) Print(text string) {
	_, _ = fmt.Fprint(c.out, text)
	c.pause()
}

func (c *Console) pause() {
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

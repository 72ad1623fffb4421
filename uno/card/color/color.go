package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Color interface {
	Name() string
	Paint(string) string
	Paintf(string, ...interface{}) string
	String() string
}

type colorStruct struct {
	name          string
	colorFunction func(string, ...interface{}) string
}

func (c *colorStruct) Name() string {
	return c.name
}

func (c *colorStruct) Paint(text string) string {
	return c.colorFunction("%s", text)
}

func (c *colorStruct) Paintf(format string, args ...interface{}) string {
	return c.colorFunction(format, args...)
}

func (c *colorStruct) String() string {
	return c.Paint(c.name)
}

var Red = &colorStruct{
	name:          "red",
	colorFunction: color.New(color.FgHiRed).SprintfFunc(),
}

var Blue = &colorStruct{
	name:          "blue",
	colorFunction: color.New(color.FgHiCyan).SprintfFunc(),
}

var Green = &colorStruct{
	name:          "green",
	colorFunction: color.New(color.FgHiGreen).SprintfFunc(),
}

var Yellow = &colorStruct{
	name:          "yellow",
	colorFunction: color.New(color.FgHiYellow).SprintfFunc(),
}

// Wild paints colorless cards. It is not a card color.
var Wild = color.New(color.FgHiMagenta).SprintfFunc()

var Stdout io.Writer = color.Output

// All lists the four card colors in deck generation order.
var All = []Color{Red, Blue, Green, Yellow}

var colors = map[string]Color{
	Red.name:    Red,
	Blue.name:   Blue,
	Green.name:  Green,
	Yellow.name: Yellow,
}

func ByName(name string) (Color, error) {
	color := colors[name]
	if color == nil {
		return nil, fmt.Errorf("invalid color '%s'", name)
	}
	return color, nil
}

// DisableOutputColors strips ANSI sequences from every painted string.
func DisableOutputColors() {
	color.NoColor = true
}

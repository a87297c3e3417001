package gcode

import (
	"fmt"
	"strings"
)

// Command is a single G-code line: a code, its named arguments and an
// optional line comment.
type Command struct {
	Code        Code
	Args        []Arg
	LineComment string
}

// Arg is one named argument of a command, e.g. X10.5.
type Arg struct {
	Name  string
	Value float64
}

// String renders the command as one G-code line. A command with an empty
// code renders as a bare comment line; comment output can be disabled
// entirely.
func (c Command) String(comments bool) string {
	var sb strings.Builder

	sb.WriteString(string(c.Code))
	for _, arg := range c.Args {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s%v", arg.Name, arg.Value)
	}

	if c.LineComment != "" && comments {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "; %s", c.LineComment)
	}

	return sb.String()
}

package print

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	isVerbose  = false
	isColoured = false
	out        = color.Output
	infoStyle  = color.New(color.FgBlack).Add(color.BgYellow)
	warnStyle  = color.New(color.FgBlack).Add(color.BgHiRed)
	erroStyle  = color.New(color.FgRed).Add(color.BgBlack)
)

// SetVerbose activates all the Verb calls
func SetVerbose() {
	isVerbose = true
}

// SetColoured activates ANSI colour codes
func SetColoured() {
	isColoured = true
}

// SetOutput redirects all messages to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// Reset restores the default quiet, uncoloured state.
func Reset() {
	isVerbose = false
	isColoured = false
	out = color.Output
}

// Verb prints a message only if Verb is set - controlled via the --verbose flag
func Verb(a ...interface{}) {
	if isVerbose {
		Info(a...)
	}
}

// Info is for general purpose messages that are always shown
func Info(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, infoStyle.Sprint("INFO:"), " ", color.WhiteString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "INFO: ", fmt.Sprintln(a...))
	}
}

// Warn is for warnings that do not prevent the command from finishing
func Warn(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, warnStyle.Sprint("WARN:"), " ", color.YellowString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "WARN: ", fmt.Sprintln(a...))
	}
}

// Erro is for errors that stop the command
func Erro(a ...interface{}) {
	if isColoured {
		fmt.Fprint(out, erroStyle.Sprint("ERROR:"), " ", color.RedString(fmt.Sprintln(a...)))
	} else {
		fmt.Fprint(out, "ERROR: ", fmt.Sprintln(a...))
	}
}

// Line prints a plain line with no level prefix.
func Line(a ...interface{}) {
	fmt.Fprintln(out, a...)
}

// Table renders rows under header as a bordered table.
func Table(header []interface{}, rows [][]interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row(header))
	for _, r := range rows {
		t.AppendRow(table.Row(r))
	}
	if isColoured {
		t.SetStyle(table.StyleColoredDark)
	} else {
		t.SetStyle(table.StyleLight)
	}
	t.Render()
}

// Package terminal decides whether ANSI colour escapes can be written to the console.
package terminal

import (
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Env is the part of the process environment that decides colour support.
type Env struct {
	// NoColor is true if the NO_COLOR variable is set (to any value).
	NoColor bool
	IsTTY   bool
	Term    string
	GOOS    string
	// VirtualTerminal is true if ANSI processing was enabled on a Windows console.
	VirtualTerminal bool
}

var ansiTerms = []string{"xterm", "ansi", "vt100", "screen"}

/*
SupportsANSI reports whether colour escapes should be emitted. The first matching rule wins:

	- NO_COLOR is set: no
	- output is not a terminal: no
	- Windows console with virtual terminal processing: yes
	- TERM mentions xterm, ansi, vt100 or screen: yes
	- otherwise only on Windows
*/
func SupportsANSI(env Env) bool {
	if env.NoColor || !env.IsTTY {
		return false
	}

	windows := env.GOOS == "windows"
	if windows && env.VirtualTerminal {
		return true
	}

	term := strings.ToLower(env.Term)
	for _, t := range ansiTerms {
		if strings.Contains(term, t) {
			return true
		}
	}

	return windows
}

/*
CurrentEnv probes f and the process environment. On Windows it also tries to switch the console into virtual terminal mode, the returned restore func undoes that and is never nil.
*/
func CurrentEnv(f *os.File) (Env, func() error) {
	_, noColor := os.LookupEnv("NO_COLOR")

	env := Env{
		NoColor: noColor,
		IsTTY:   isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()),
		Term:    os.Getenv("TERM"),
		GOOS:    runtime.GOOS,
	}

	restore := func() error { return nil }
	if env.GOOS == "windows" && env.IsTTY {
		r, err := termenv.EnableVirtualTerminalProcessing(termenv.NewOutput(f))
		if err == nil {
			env.VirtualTerminal = true
			restore = r
		}
	}

	return env, restore
}

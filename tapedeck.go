// This file is part of Tapedeck.
//
// Tapedeck is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tapedeck is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tapedeck.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/jetsetilly/tapedeck/debugger"
	"github.com/jetsetilly/tapedeck/debugger/terminal"
	"github.com/jetsetilly/tapedeck/debugger/terminal/colorterm"
	"github.com/jetsetilly/tapedeck/debugger/terminal/linerterm"
	"github.com/jetsetilly/tapedeck/debugger/terminal/plainterm"
	"github.com/jetsetilly/tapedeck/disassembly"
	"github.com/jetsetilly/tapedeck/engine"
	"github.com/jetsetilly/tapedeck/logger"
	"github.com/jetsetilly/tapedeck/modalflag"
	"github.com/jetsetilly/tapedeck/paths"
	"github.com/jetsetilly/tapedeck/performance"
	"github.com/jetsetilly/tapedeck/prefs"
	"github.com/jetsetilly/tapedeck/program"
	"github.com/jetsetilly/tapedeck/soundload"
	"github.com/jetsetilly/tapedeck/statsview"
	"github.com/jetsetilly/tapedeck/version"
	"github.com/jetsetilly/tapedeck/wavwriter"
)

const defaultProgram = "main.bf"

const defaultInitScript = "debuggerInit"

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Stdout, os.Args[1:]))
}

// launch parses the arguments and runs the selected mode. returns the value
// to be used with os.Exit().
func launch(output io.Writer, args []string) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DEBUG", "LIST", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(fmt.Sprintf("the program file defaults to %s for every mode", defaultProgram))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "DEBUG":
		err = debug(md)

	case "LIST":
		err = list(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.Version())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return exitOK
}

// programFile returns the single filename argument for the current mode or
// the default program if there is no argument.
func programFile(md *modalflag.Modes) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return defaultProgram, nil
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// setVerbose echoes the central log to stderr.
func setVerbose(verbose bool) {
	if verbose {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}
}

// applyPrefsOverrides pushes the override string onto the preferences
// command line stack and reloads the preferences. any overrides that were not
// used are reported.
func applyPrefsOverrides(output io.Writer, p *debugger.Preferences, overrides string) error {
	if overrides == "" {
		return nil
	}

	prefs.PushCommandLineStack(overrides)
	if err := p.Load(); err != nil {
		return err
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		fmt.Fprintf(output, "! unused preference overrides: %s\n", unused)
	}

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	pr, err := debugger.NewPreferences()
	if err != nil {
		return err
	}

	mem := md.AddInt("mem", pr.Cells.Get().(int), "number of cells in the tape")
	echo := md.AddBool("echo", pr.Echo.Get().(bool), "echo characters typed at the console")
	input := md.AddString("input", "", "read input from `file` (wav and mp3 files are decoded to 8-bit samples)")
	wav := md.AddString("wav", "", "record output to wav `file`")
	profile := md.AddString("profile", "NONE", performance.ProfileUsage)
	verbose := md.AddBool("v", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setVerbose(*verbose)

	filename, err := programFile(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prog, err := program.LoadFile(filename)
	if err != nil {
		return err
	}

	cfg := engine.Config{
		Cells: *mem,
		Echo:  *echo,
		Log:   logger.Central(),
	}

	if *input != "" {
		if soundload.IsSoundFile(*input) {
			data, err := soundload.Load(*input, logger.Central())
			if err != nil {
				return err
			}
			cfg.Input = bytes.NewReader(data)
		} else {
			f, err := os.Open(*input)
			if err != nil {
				return err
			}
			defer f.Close()
			cfg.Input = f
		}
	}

	if *wav != "" {
		ww, err := wavwriter.New(*wav, 0)
		if err != nil {
			return err
		}
		defer func() {
			if err := ww.Close(); err != nil {
				fmt.Fprintf(md.Output, "* %v\n", err)
			}
		}()
		cfg.Output = io.MultiWriter(os.Stdout, ww)
	}

	eng, err := engine.New(prog, cfg)
	if err != nil {
		return err
	}

	return performance.RunProfiler(prf, "run", func() error {
		// ctrl-c ends the run without it being an error
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		defer signal.Stop(intChan)

		done := make(chan error, 1)
		go func() {
			done <- eng.RunToCompletion()
		}()

		select {
		case <-intChan:
			// the engine may be blocked reading the console, which will be in
			// cbreak mode. the engine is still running so its state can't be
			// inspected
			eng.CleanUp()
			fmt.Fprint(md.Output, "\r")
			logger.Log(logger.Allow, "tapedeck", "run interrupted")
			return nil
		case err := <-done:
			return err
		}
	})
}

func debug(md *modalflag.Modes) error {
	md.NewMode()

	pr, err := debugger.NewPreferences()
	if err != nil {
		return err
	}

	defInitScript, err := paths.ResourcePath("", defaultInitScript)
	if err != nil {
		return err
	}

	mem := md.AddInt("mem", pr.Cells.Get().(int), "number of cells in the tape")
	echo := md.AddBool("echo", pr.Echo.Get().(bool), "echo characters typed at the console")
	termType := md.AddString("term", pr.Term.String(), "terminal type: COLOR, PLAIN, LINER")
	initScript := md.AddString("initscript", defInitScript, "script to run on debugger start")
	overrides := md.AddString("prefs", "", "preference overrides for this session (key::value; key::value)")
	stats := md.AddBool("statsview", false, "run stats server (if available)")
	verbose := md.AddBool("v", false, "echo log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setVerbose(*verbose)

	filename, err := programFile(md)
	if err != nil {
		return err
	}

	if err := applyPrefsOverrides(md.Output, pr, *overrides); err != nil {
		return err
	}

	// flags not set on the command line take the (possibly overridden)
	// preference value
	set := make(map[string]bool)
	md.Visit(func(flag string) {
		set[flag] = true
	})
	if !set["mem"] {
		*mem = pr.Cells.Get().(int)
	}
	if !set["echo"] {
		*echo = pr.Echo.Get().(bool)
	}
	if !set["term"] {
		*termType = pr.Term.String()
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(md.Output)
		} else {
			fmt.Fprintln(md.Output, "! stats server not available in this build")
		}
	}

	var term terminal.Terminal

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		fallthrough
	case "PLAIN":
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	case "COLOR":
		term = colorterm.NewColorTerminal(os.Stdin, os.Stdout)
	case "LINER":
		term = linerterm.NewLinerTerminal(pr.HistoryLength.Get().(int))
	}

	// the default init script is optional
	script := *initScript
	if script == defInitScript {
		if _, err := os.Stat(script); err != nil {
			script = ""
		}
	}

	cfg := engine.Config{
		Cells: *mem,
		Echo:  *echo,
		Log:   logger.Central(),
	}

	dbg, err := debugger.NewDebugger(term, filename, cfg, pr)
	if err != nil {
		return err
	}

	// ctrl-c is handled by the terminal. the default handler would leave
	// the terminal in an unusable state
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	return dbg.Start(script)
}

func list(md *modalflag.Modes) error {
	md.NewMode()

	mnemonic := md.AddBool("mnemonic", false, "include instruction mnemonic")
	depth := md.AddBool("depth", true, "include loop depth")
	partner := md.AddBool("partner", true, "include bracket partner")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programFile(md)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromFile(filename)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		Mnemonic: *mnemonic,
		Depth:    *depth,
		Partner:  *partner,
	})
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	pr, err := debugger.NewPreferences()
	if err != nil {
		return err
	}

	mem := md.AddInt("mem", pr.Cells.Get().(int), "number of cells in the tape")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "NONE", performance.ProfileUsage)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := programFile(md)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	prog, err := program.LoadFile(filename)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, prog, *mem, *duration)
}

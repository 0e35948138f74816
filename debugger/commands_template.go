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

package debugger

// debugger keywords
const (
	cmdRun    = "RUN"
	cmdStep   = "STEP"
	cmdReset  = "RESET"
	cmdReload = "RELOAD"
	cmdQuit   = "QUIT"

	cmdBreak = "BREAK"
	cmdDrop  = "DROP"
	cmdClear = "CLEAR"
	cmdList  = "LIST"

	cmdStatus  = "STATUS"
	cmdMemdump = "MEMDUMP"
	cmdDisasm  = "DISASM"

	cmdScript = "SCRIPT"
	cmdLog    = "LOG"
	cmdMemviz = "MEMVIZ"
	cmdPrefs  = "PREFS"
)

const cmdHelp = "HELP"

var commandTemplate = []string{
	cmdRun + " (IGNORE) (RESET)",
	cmdStep + " (%<count>N)",
	cmdReset,
	cmdReload,
	cmdQuit,

	cmdBreak + " %<index>N {%<index>N}",
	cmdDrop + " %<index>N {%<index>N}",
	cmdClear,
	cmdList + " (BREAKS)",

	cmdStatus,
	cmdMemdump + " (%<offset>N) (WIDTH %<width>N) (UPPER)",
	cmdDisasm + " (%<from>N) (%<count>N)",

	cmdScript + " [RECORD %<new file>F|END|%<file>F]",
	cmdLog + " (CLEAR|%<count>N)",
	cmdMemviz + " (%<file>F)",
	cmdPrefs + " (SAVE|DEFAULTS)",
}

var helps = map[string]string{
	cmdHelp: "Lists commands. With an argument, prints help for that command.",
	cmdRun: `Run the program until a breakpoint or the end of the program is reached.

IGNORE runs to the end of the program without stopping at breakpoints.
RESET resets the program before running. A program that has reached the end
must be reset before it can be run again.`,
	cmdStep:   "Execute the next instruction, or the next N instructions. Breakpoints are not checked.",
	cmdReset:  "Reset the instruction pointer and clear the tape. Breakpoints are kept.",
	cmdReload: "Reload the program from disk and reset. All breakpoints are removed.",
	cmdQuit:   "Exit the debugger.",
	cmdBreak:  "Add a breakpoint at one or more instruction indices. Indices are decimal, or hexadecimal with a 0x or $ prefix.",
	cmdDrop:   "Remove the breakpoint at one or more instruction indices.",
	cmdClear:  "Remove all breakpoints.",
	cmdList:   "List all breakpoints.",
	cmdStatus: "Show the instruction pointer, the tape pointer and the value of the current cell.",
	cmdMemdump: `Print the contents of the tape.

The dump starts at the offset (zero by default) and shows WIDTH cells (nine by
default). The width must be an odd number and must fit in the terminal. UPPER
prints the cell values in uppercase hexadecimal.`,
	cmdDisasm: "List instructions of the program. By default the listing is around the current instruction.",
	cmdScript: `Run commands from a script file.

RECORD starts recording commands to a new script file. END stops the
recording.`,
	cmdLog:    "Print the most recent log entries. CLEAR empties the log.",
	cmdMemviz: "Write a graphviz representation of the engine to a file.",
	cmdPrefs:  "Print preferences. SAVE writes preferences to disk. DEFAULTS restores the default values.",
}

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

// Package debugger implements a command line debugger for tape programs.
//
// The core of the package is the Session type, which owns the loaded program,
// the engine executing it and the set of breakpoints. The Controller type
// drives the engine until a breakpoint or the end of the program is reached.
// Both can be used without the interactive frontend.
//
// The Debugger type is the interactive frontend. It reads commands from an
// implementation of the terminal.Terminal interface. Commands are validated
// against a template before they are acted upon. The HELP command lists the
// available commands.
//
// Scripts of commands can be recorded and replayed with the SCRIPT command.
// An initialisation script can be given to the Start() function.
package debugger

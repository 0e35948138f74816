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

// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each with its own set of flags.
//
// Arguments are given once with NewArgs(). Flags for the top level are then
// added and Parse() is called. If sub-modes were added with AddSubModes() then
// the first non-flag argument is compared against them and the result is
// available from Mode(). If the argument matches no sub-mode then the first
// sub-mode is selected and the argument is left for the selected mode to
// deal with.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DEBUG", "LIST")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		term := md.AddString("term", "COLOR", "terminal type")
//		...
//	}
//
// Each call to NewMode() starts a new set of flags for the arguments that
// remain. Sub-mode comparisons are case insensitive. The selected modes are
// joined with a slash by Path().
//
// Help is printed to Output when -help or -h is given. Parse() then returns
// ParseHelp.
package modalflag

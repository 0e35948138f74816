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

// Package logger is the logging package for Tapedeck. Log entries are made
// up of a tag and a detail string. The tag names the part of the program
// that made the entry.
//
// Repeated identical entries are collapsed into one, with a repeat count:
//
//	engine: allocated 30 000 bytes (repeat x2)
//
// Packages in the core of the interpreter never log to a global logger.
// Instead they are given an Observer, which is usually an instance of Logger
// created with NewLogger(). The central logger, accessed through the package
// level functions, is for the main package and the debugger.
//
// Each logging call takes a Permission. Log entries are only made if the
// Permission allows it. The Allow value can be used when logging is always
// permitted.
package logger

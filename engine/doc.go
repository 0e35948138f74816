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

// Package engine executes a program against a tape. Execution is strictly
// sequential: the Step() function executes exactly one instruction and the
// RunToCompletion() function calls Step() until the program halts.
//
// The engine is halted when the instruction pointer is at or beyond the end
// of the program. A halted engine can be returned to the start of the program
// with Reset().
//
// Input and output are configured once, when the engine is created. If the
// Config.Input or Config.Output fields are nil, the engine will use the
// interactive console for that channel. See the console package.
package engine

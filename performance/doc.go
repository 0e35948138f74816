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

// Package performance measures how quickly the engine executes a program and
// optionally profiles that execution.
//
// The Check() function runs a program for a fixed duration and reports the
// number of instructions executed per second. Programs that halt before the
// duration has elapsed are reset and run again. Input instructions always
// read a zero byte and output is discarded.
//
// The RunProfiler() function wraps any function with CPU, memory and trace
// profiling, as selected by the Profile flags. The profiler is used by
// Check() and by the main RUN mode.
package performance

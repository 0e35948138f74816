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

// Package soundload decodes WAV and MP3 files into a stream of bytes that
// can be used as the input to a program.
//
// Every sample in the first channel of the file becomes one unsigned 8-bit
// value, with silence at 128. Files with a higher bit depth are scaled down.
// Files that are not WAV or MP3 files, as decided by the filename extension,
// are rejected.
package soundload

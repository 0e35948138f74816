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

// Package paths contains functions to prepare paths for Tapedeck resources.
//
// The base path is, in order of preference:
//
//  1. the directory named by the TAPEDECK_HOME environment variable
//  2. a directory named .tapedeck in the current working directory
//  3. a directory named tapedeck in the user's configuration directory, as
//     returned by os.UserConfigDir()
//
// The ResourcePath() function creates any missing directories in the
// requested path. The file itself is not created.
package paths

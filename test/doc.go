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

// Package test contains helper functions for the package tests in this
// module.
//
// The Expect*() functions record a failure and allow the test to continue.
// The Demand*() functions stop the test immediately on failure. Each function
// accepts optional tags which are prefixed to the failure message, useful for
// identifying which iteration of a table driven test failed.
package test

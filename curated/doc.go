// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package curated wraps the plain Go error type so that the kind of an error
// can be tested without string matching.
//
// Errors are created with Errorf(). It looks like fmt.Errorf() but the
// pattern is kept alongside the placeholder values and it is the pattern that
// identifies the error. Packages that raise errors export their patterns as
// constants:
//
//	const UnimplementedInstruction = "cpu: unimplemented instruction (%#02x) at (%#04x)"
//
//	err := curated.Errorf(UnimplementedInstruction, opcode, address)
//
//	if curated.Is(err, cpu.UnimplementedInstruction) {
//		...
//	}
//
// Is() only looks at the outermost error. Has() searches the chain of curated
// errors found in the placeholder values:
//
//	err := curated.Errorf(cpu.StackUnderflow, address)
//	wrapped := curated.Errorf("trace: %v", err)
//
//	curated.Is(wrapped, cpu.StackUnderflow)  // false
//	curated.Has(wrapped, cpu.StackUnderflow) // true
//
// IsAny() reports whether an error was created by this package at all. An
// uncurated error reaching the runner is an unexpected condition.
//
// The message chain is normalised when Error() is called. Parts are
// separated by ": " and adjacent duplicate parts are removed, so wrapping an
// error with the same prefix at every level of a call stack does not repeat
// that prefix:
//
//	cartridgeloader: cartridgeloader: file not found
//
// is reported as
//
//	cartridgeloader: file not found
package curated

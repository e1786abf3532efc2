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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas, with flag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Sub-modes are added with the AddSubModes() function. The first sub-mode in
// the list is the default sub-mode. Sub-mode comparisons are case
// insensitive.
//
//	md.AddSubModes("RUN", "TRACE")
//	md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		runMode(md)
//	case "TRACE":
//		traceMode(md)
//	}
//
// Once a mode has been decided, NewMode() prepares the Modes instance for the
// flags of that mode. Parse() is then called again to process the remaining
// arguments:
//
//	func runMode(md *modalflag.Modes) error {
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0400, "load address of program")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		...
//	}
//
// Flags in addition to those offered by the flag package are the AddAddress()
// flag, which accepts 16-bit values in hexadecimal (with 0x or $ prefix) or
// decimal notation.
package modalflag

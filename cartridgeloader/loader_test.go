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

package cartridgeloader_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/mos6502/cartridgeloader"
	"github.com/jetsetilly/mos6502/curated"
	"github.com/jetsetilly/mos6502/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o600))
	return fn
}

// ines builds an iNES image with a single PRG bank filled with fill.
func ines(trainer bool, fill uint8) []byte {
	hdr := []byte{'N', 'E', 'S', 0x1a, 0x01, 0x00, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0}
	var b bytes.Buffer
	if trainer {
		hdr[6] = 0x04
	}
	b.Write(hdr)
	if trainer {
		b.Write(bytes.Repeat([]byte{0xee}, 512))
	}
	b.Write(bytes.Repeat([]byte{fill}, 16384))

	// CHR ROM data that should not be loaded
	b.Write(bytes.Repeat([]byte{0xcc}, 64))
	return b.Bytes()
}

func TestPlainFile(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xa9, 0x01, 0x8d, 0x00, 0x02})

	cl := cartridgeloader.NewLoader(fn, 0, false)
	test.ExpectEquality(t, cl.HasLoaded(), false)
	test.ExpectEquality(t, cl.ShortName(), "prog")

	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), true)
	test.ExpectEquality(t, len(cl.Data), 5)
	test.ExpectEquality(t, cl.Data[0], uint8(0xa9))
	test.ExpectEquality(t, len(cl.Hash), 40)

	// a second load does nothing
	test.ExpectSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 5)
}

func TestSkip(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xff, 0xff, 0xa9, 0x01})

	cl := cartridgeloader.NewLoader(fn, 2, false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2)
	test.ExpectEquality(t, cl.Data[0], uint8(0xa9))

	cl = cartridgeloader.NewLoader(fn, 10, false)
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoaderError), true)

	// skipping everything leaves no program
	cl = cartridgeloader.NewLoader(fn, 4, false)
	test.ExpectFailure(t, cl.Load())
}

func TestINES(t *testing.T) {
	fn := writeFile(t, "prog.nes", ines(false, 0xea))
	cl := cartridgeloader.NewLoader(fn, 0, false)
	test.ExpectEquality(t, cl.INES, true)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 16384)
	test.ExpectEquality(t, cl.Data[0], uint8(0xea))
	test.ExpectEquality(t, cl.Data[16383], uint8(0xea))

	// trainer is removed
	fn = writeFile(t, "trainer.nes", ines(true, 0xea))
	cl = cartridgeloader.NewLoader(fn, 0, false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 16384)
	test.ExpectEquality(t, cl.Data[0], uint8(0xea))

	// header is recognised without the file extension
	fn = writeFile(t, "prog.bin", ines(false, 0x4c))
	cl = cartridgeloader.NewLoader(fn, 0, false)
	test.ExpectEquality(t, cl.INES, false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, cl.INES, true)
	test.ExpectEquality(t, len(cl.Data), 16384)
}

func TestInvalidINES(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xa9, 0x01})
	cl := cartridgeloader.NewLoader(fn, 0, true)
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoaderError), true)

	// PRG bank is shorter than the header says
	data := ines(false, 0xea)[:1024]
	fn = writeFile(t, "short.nes", data)
	cl = cartridgeloader.NewLoader(fn, 0, false)
	test.ExpectFailure(t, cl.Load())
}

func TestHash(t *testing.T) {
	fn := writeFile(t, "prog.bin", []byte{0xa9, 0x01})

	cl := cartridgeloader.NewLoader(fn, 0, false)
	test.DemandSuccess(t, cl.Load())
	hash := cl.Hash

	cl = cartridgeloader.NewLoader(fn, 0, false)
	cl.Hash = hash
	test.ExpectSuccess(t, cl.Load())

	cl = cartridgeloader.NewLoader(fn, 0, false)
	cl.Hash = "0000"
	test.ExpectFailure(t, cl.Load())
	test.ExpectEquality(t, cl.HasLoaded(), false)
}

func TestMissingFile(t *testing.T) {
	cl := cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), 0, false)
	err := cl.Load()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, curated.Is(err, cartridgeloader.LoaderError), true)
}

func TestHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/prog.bin" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte{0xa9, 0x01})
	}))
	defer srv.Close()

	cl := cartridgeloader.NewLoader(srv.URL+"/prog.bin", 0, false)
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 2)

	cl = cartridgeloader.NewLoader(srv.URL+"/missing.bin", 0, false)
	test.ExpectFailure(t, cl.Load())
}

func TestUnsupportedScheme(t *testing.T) {
	cl := cartridgeloader.NewLoader("ftp://example.com/prog.bin", 0, false)
	test.ExpectFailure(t, cl.Load())
}

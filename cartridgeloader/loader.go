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

package cartridgeloader

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/mos6502/curated"
)

// LoaderError is the pattern for all errors returned by the Loader.
const LoaderError = "cartridgeloader: %v"

// details of the iNES header.
const (
	inesHeaderLen  = 16
	inesTrainerLen = 512
	inesPRGBank    = 16384
)

var inesMagic = []byte{'N', 'E', 'S', 0x1a}

// FileExtensions is the list of file extensions recognised by the loader.
// Files with other extensions can still be loaded.
var FileExtensions = [...]string{".BIN", ".ROM", ".PRG", ".NES"}

// Loader is used to specify the program image to use and how to interpret it.
type Loader struct {
	// filename of the program image to load
	Filename string

	// number of bytes to skip at the start of the file. applied after any
	// iNES header has been removed
	Skip int

	// remove the iNES header. files with the .NES extension or that begin
	// with the iNES magic number are treated as iNES images regardless
	INES bool

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded file
	Hash string

	// the program data after the header has been removed
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, skip int, ines bool) Loader {
	cl := Loader{
		Filename: filename,
		Skip:     skip,
		INES:     ines,
	}

	if strings.ToUpper(path.Ext(filename)) == ".NES" {
		cl.INES = true
	}

	return cl
}

// ShortName returns a shortened version of the filename.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	shortName = strings.TrimSuffix(shortName, path.Ext(cl.Filename))
	return shortName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the program image. Data is only loaded once. Subsequent calls to Load()
// return immediately.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http":
		fallthrough
	case "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("http status (%s)", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fallthrough

	case "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(LoaderError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	// generate hash of the file as it was found
	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf(LoaderError, "unexpected hash value")
	}

	data, err = cl.strip(data)
	if err != nil {
		return err
	}

	if len(data) == 0 {
		return curated.Errorf(LoaderError, "no program data")
	}

	cl.Hash = hash
	cl.Data = data

	return nil
}

// remove the iNES header and any additional skipped bytes.
func (cl *Loader) strip(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, inesMagic) {
		cl.INES = true
	}

	if cl.INES {
		if len(data) < inesHeaderLen || !bytes.HasPrefix(data, inesMagic) {
			return nil, curated.Errorf(LoaderError, "invalid iNES header")
		}

		prgSize := int(data[4]) * inesPRGBank
		trainer := data[6]&0x04 == 0x04

		data = data[inesHeaderLen:]
		if trainer {
			if len(data) < inesTrainerLen {
				return nil, curated.Errorf(LoaderError, "iNES trainer truncated")
			}
			data = data[inesTrainerLen:]
		}

		// a PRG size of zero is treated as "everything after the header"
		if prgSize > 0 {
			if len(data) < prgSize {
				return nil, curated.Errorf(LoaderError, fmt.Sprintf("iNES PRG ROM truncated (%d of %d bytes)", len(data), prgSize))
			}
			data = data[:prgSize]
		}
	}

	if cl.Skip < 0 {
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("negative skip value (%d)", cl.Skip))
	}

	if cl.Skip > len(data) {
		return nil, curated.Errorf(LoaderError, fmt.Sprintf("skip value (%d) larger than file (%d)", cl.Skip, len(data)))
	}

	return data[cl.Skip:], nil
}

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

package memory

// Size of the address space.
const Size = 0x10000

// Addresses of the vectors in high memory.
const (
	// NMI is the address where the non-maskable interrupt address is stored.
	NMI = uint16(0xfffa)

	// Reset is the address where the reset address is stored.
	Reset = uint16(0xfffc)

	// IRQ is the address where the interrupt/break address is stored.
	IRQ = uint16(0xfffe)
)

// Memory is the complete address space.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for Memory. All bytes
// are zero.
func NewMemory() *Memory {
	return &Memory{}
}

// Snapshot creates a copy of Memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Clear all bytes to zero.
func (mem *Memory) Clear() {
	mem.data = [Size]uint8{}
}

// Read the byte at address.
func (mem *Memory) Read(address uint16) uint8 {
	return mem.data[address]
}

// Read16 reads the little-endian 16 bit value at address.
func (mem *Memory) Read16(address uint16) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// Write data to memory starting at address. Addresses beyond the end of the
// address space wrap around to the beginning.
func (mem *Memory) Write(address uint16, data ...uint8) {
	for _, d := range data {
		mem.data[address] = d
		address++
	}
}

// Write16 writes a 16 bit value in little-endian order.
func (mem *Memory) Write16(address uint16, val uint16) {
	mem.Write(address, uint8(val), uint8(val>>8))
}

// Deref treats the byte at address as a zero page address and returns the
// byte stored there.
func (mem *Memory) Deref(address uint16) uint8 {
	return mem.data[uint16(mem.data[address])]
}

// Deref16 reads the 16 bit value at the address stored at address.
func (mem *Memory) Deref16(address uint16) uint16 {
	return mem.Read16(mem.Read16(address))
}

// ReadZeroPage16 reads a 16 bit pointer from the zero page. The high byte of
// a pointer at address 0xff is read from address 0x00.
func (mem *Memory) ReadZeroPage16(address uint8) uint16 {
	lo := mem.data[address]
	hi := mem.data[address+1]
	return uint16(hi)<<8 | uint16(lo)
}

// CrossesPageBoundary returns true if the addresses are on different pages.
func CrossesPageBoundary(a uint16, b uint16) bool {
	return a&0xff00 != b&0xff00
}

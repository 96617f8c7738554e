// This file is part of dbg2mlb.
//
// dbg2mlb is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dbg2mlb is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dbg2mlb.  If not, see <https://www.gnu.org/licenses/>.

package memorymap

import (
	"strings"

	"github.com/jetsetilly/dbg2mlb/curated"
)

// Region of the NES address space.
type Region int

// List of valid Region values.
const (
	Undefined Region = iota
	InternalRAM
	Register
	SaveRAM
	WorkRAM
	PRGROM
)

func (r Region) String() string {
	switch r {
	case InternalRAM:
		return "Internal RAM"
	case Register:
		return "Register"
	case SaveRAM:
		return "Save RAM"
	case WorkRAM:
		return "Work RAM"
	case PRGROM:
		return "PRG-ROM"
	}

	return "undefined"
}

// Tag returns the single letter used for the region in an MLB file.
func (r Region) Tag() string {
	switch r {
	case InternalRAM:
		return "R"
	case Register:
		return "G"
	case SaveRAM:
		return "S"
	case WorkRAM:
		return "W"
	case PRGROM:
		return "P"
	}

	return "?"
}

// The origin and memtop of each region. The CPU address space is 16 bits
// wide but symbol values are not restricted to it, so anything at or above
// OriginPRGROM is PRG-ROM.
const (
	OriginInternalRAM = 0x0000
	MemtopInternalRAM = 0x1fff
	OriginRegister    = 0x2000
	MemtopRegister    = 0x5fff
	OriginExpansion   = 0x6000
	MemtopExpansion   = 0x7fff
	OriginPRGROM      = 0x8000
	MemtopPRGROM      = 0xffff
)

// Expansion specifies how the $6000 to $7fff range is treated.
type Expansion int

// List of valid Expansion values. The zero value is WorkRAMExpansion.
const (
	WorkRAMExpansion Expansion = iota
	SaveRAMExpansion
)

func (e Expansion) String() string {
	switch e {
	case WorkRAMExpansion:
		return "W"
	case SaveRAMExpansion:
		return "S"
	}
	return "?"
}

// Valid returns false if the Expansion value is not one of the listed values.
func (e Expansion) Valid() bool {
	return e == WorkRAMExpansion || e == SaveRAMExpansion
}

// Region returns the Region that the expansion range is mapped to.
func (e Expansion) Region() Region {
	if e == SaveRAMExpansion {
		return SaveRAM
	}
	return WorkRAM
}

// InvalidExpansion is returned by ParseExpansion() for an unrecognised
// expansion RAM type.
const InvalidExpansion = "invalid expansion RAM type: %q (use W or S)"

// ParseExpansion accepts W, WORK, WRAM, S, SAVE or SRAM in any letter case.
func ParseExpansion(s string) (Expansion, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "W", "WORK", "WRAM":
		return WorkRAMExpansion, nil
	case "S", "SAVE", "SRAM":
		return SaveRAMExpansion, nil
	}
	return WorkRAMExpansion, curated.Errorf(InvalidExpansion, s)
}

// Classify returns the Region for a symbol value. Negative values are
// Undefined.
func Classify(value int, exp Expansion) Region {
	// note that the order of these filters is important
	switch {
	case value < OriginInternalRAM:
		return Undefined
	case value < OriginRegister:
		return InternalRAM
	case value < OriginExpansion:
		return Register
	case value < OriginPRGROM:
		return exp.Region()
	}
	return PRGROM
}

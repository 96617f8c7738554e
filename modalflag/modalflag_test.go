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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/dbg2mlb/modalflag"
	"github.com/jetsetilly/dbg2mlb/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-lenient", "cart.dbg", "cart.mlb"})
	lenient := md.AddBool("lenient", false, "test flag")
	test.ExpectFailure(t, *lenient)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectSuccess(t, *lenient)
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"cart.dbg", "cart.mlb"})
	test.ExpectEquality(t, md.GetArg(1), "cart.mlb")
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestNoHelpAvailable(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))
}

func TestHelpFlags(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("convert", "list", "info")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  available sub-modes: CONVERT, LIST, INFO\n" +
		"    default: CONVERT\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestHelpFlagsAndModes(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddBool("test", true, "test flag")
	md.AddSubModes("CONVERT", "LIST")
	md.AdditionalHelp("see the manual")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -test\n" +
		"    	test flag (default true)\n" +
		"\n" +
		"  available sub-modes: CONVERT, LIST\n" +
		"    default: CONVERT\n" +
		"\n" +
		"see the manual\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"list", "-exp", "S", "cart.dbg"})
	md.AddSubModes("CONVERT", "LIST")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "LIST")

	md.NewMode()
	exp := md.AddString("exp", "W", "expansion RAM")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *exp, "S")
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"cart.dbg"})
	test.ExpectEquality(t, md.Path(), "LIST")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-base", "0", "cart.dbg", "cart.mlb"})
	md.AddSubModes("CONVERT", "LIST")

	// the -base flag is not known at this level so the default mode is
	// selected and the flag is left for the next call to Parse()
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CONVERT")

	md.NewMode()
	base := md.AddString("base", "0x10", "base offset")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *base, "0")
	test.ExpectEquality(t, len(md.RemainingArgs()), 2)

	// a plain argument that isn't a sub-mode also selects the default
	md = modalflag.Modes{}
	md.NewArgs([]string{"cart.dbg", "cart.mlb"})
	md.AddSubModes("CONVERT", "LIST")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "CONVERT")
	md.NewMode()
	_, _ = md.Parse()
	test.ExpectEquality(t, md.GetArg(0), "cart.dbg")
}

func TestLegacyArguments(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"cart.dbg", "cart.mlb", "-B:0x20", "-x:1"})
	md.AddLegacy("b", "base")
	base := md.AddString("base", "0x10", "global base")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *base, "0x20")

	// unregistered legacy arguments are left where they are
	test.ExpectEquivalence(t, md.RemainingArgs(), []string{"cart.dbg", "cart.mlb", "-x:1"})
}

func TestHelpLegacy(t *testing.T) {
	tw := &test.Writer{}

	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})
	md.AddLegacy("E", "exp")

	p, _ := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)

	expectedHelp := "Usage:\n" +
		"  -e:<value>\n" +
		"    \tsame as -exp\n"
	test.ExpectEquality(t, tw.String(), expectedHelp)
}

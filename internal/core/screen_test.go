package core

import (
	"strings"
	"testing"
)

func TestNewScreenBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}

	if neg := NewScreen(-3, -1); neg.Width() != 0 || neg.Height() != 0 {
		t.Errorf("NewScreen(-3, -1) size = %dx%d, expected 0x0", neg.Width(), neg.Height())
	}
}

func TestScreenCells(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetColored(1, 1, '@', ColorBrightYellow)
	if got := s.GetCell(1, 1); got != (Cell{Rune: '@', Color: ColorBrightYellow}) {
		t.Errorf("GetCell(1, 1) = %+v", got)
	}

	s.SetCell(2, 1, Cell{Rune: '#', Color: ColorMagenta})
	if got := s.GetCell(2, 1); got != (Cell{Rune: '#', Color: ColorMagenta}) {
		t.Errorf("GetCell(2, 1) = %+v after SetCell", got)
	}

	s.Set(1, 1, '*')
	if got := s.GetCell(1, 1); got.Color != ColorDefault {
		t.Errorf("Set should reset color, got %v", got.Color)
	}

	// Out-of-bounds writes are ignored, reads return blank.
	for _, p := range [][2]int{{-1, 0}, {6, 0}, {0, -1}, {0, 3}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
		s.SetCell(p[0], p[1], Cell{Rune: 'Y'})
		if got := s.GetCell(p[0], p[1]); got != blankCell {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawRect(NewRect(0, 0, 4, 2), '#')
	if s.String() != "####\n####" {
		t.Errorf("after DrawRect, String() = %q", s.String())
	}
	s.SetColored(0, 0, 'x', ColorRed)
	s.Clear()
	if s.GetCell(0, 0) != blankCell || s.String() != "    \n    " {
		t.Errorf("after Clear, String() = %q", s.String())
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawTextColor(7, 0, "Time: 3", ColorCyan)
	if s.Row(0) != "       Tim" {
		t.Errorf("Row(0) = %q, expected clipped text", s.Row(0))
	}
	if s.GetCell(8, 0).Color != ColorCyan {
		t.Errorf("DrawTextColor color = %v, expected cyan", s.GetCell(8, 0).Color)
	}

	// Multi-byte runes take one column each.
	s.DrawText(0, 1, "┼─┼")
	if s.Get(1, 1) != '─' || s.Get(2, 1) != '┼' {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(15, 2)
	s.DrawTextCentered(NewRect(0, 0, 15, 2), 0, "★ WIN ★", ColorBrightGreen)
	if s.Row(0) != "    ★ WIN ★    " {
		t.Errorf("Row(0) = %q", s.Row(0))
	}
	if s.GetCell(4, 0).Color != ColorBrightGreen {
		t.Errorf("centered color = %v, expected bright green", s.GetCell(4, 0).Color)
	}

	s.DrawTextCentered(NewRect(4, 0, 5, 2), 1, "ok", ColorDefault)
	if s.Row(1) != "     ok        " {
		t.Errorf("Row(1) = %q, expected text centered in the rect", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColor(NewRect(0, 0, 6, 4), ColorBlue)
	want := strings.Join([]string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}, "\n")
	if s.String() != want {
		t.Errorf("DrawBox =\n%s\nexpected\n%s", s.String(), want)
	}
	if s.GetCell(5, 3).Color != ColorBlue || s.GetCell(2, 2).Color != ColorDefault {
		t.Error("DrawBoxColor should only color the outline")
	}
}

func TestScreenLinesAndRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawHLine(0, 0, 5, '-', ColorGray)
	s.DrawVLine(0, 1, 3, '|', ColorBlue)
	s.DrawRect(NewRect(2, 2, 2, 2), '#')
	s.DrawHLine(0, 1, -2, '!', ColorRed)
	want := "-----\n|    \n| ## \n| ## "
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
	if s.GetCell(4, 0).Color != ColorGray || s.GetCell(0, 3).Color != ColorBlue {
		t.Error("lines should carry their color")
	}
}

func TestScreenResizeKeepsCells(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawTextColor(0, 0, "maze", ColorGreen)
	s.DrawText(0, 5, "gone")

	s.Resize(3, 2)
	if s.Row(0) != "maz" {
		t.Errorf("Row(0) after shrink = %q", s.Row(0))
	}

	s.Resize(10, 6)
	if !strings.HasPrefix(s.Row(0), "maz ") {
		t.Errorf("Row(0) after grow = %q", s.Row(0))
	}
	if s.GetCell(0, 0).Color != ColorGreen {
		t.Error("Resize should keep colors")
	}
	if strings.TrimSpace(s.Row(5)) != "" {
		t.Errorf("Row(5) = %q, expected blank", s.Row(5))
	}
	if s.Row(-1) != strings.Repeat(" ", 10) {
		t.Errorf("Row(-1) = %q, expected spaces", s.Row(-1))
	}
}

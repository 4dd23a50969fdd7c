package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)
	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 12x4", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		if row := s.Row(y); row != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetClipsOutOfBounds(t *testing.T) {
	s := NewScreen(5, 3)
	for _, p := range []Point{{-1, 0}, {5, 0}, {0, -1}, {0, 3}} {
		s.Set(p.X, p.Y, 'X')
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes should be dropped")
	}
	if c := s.GetCell(-1, -1); c != blankCell {
		t.Errorf("GetCell outside = %+v, expected blank", c)
	}

	s.SetColored(4, 2, '@', ColorBrightGreen)
	if c := s.GetCell(4, 2); c.Rune != '@' || c.Color != ColorBrightGreen {
		t.Errorf("GetCell(4, 2) = %+v", c)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want string
	}{
		{"left", func(s *Screen) { s.DrawText(0, 0, "Score") }, "Score     "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "Score") }, "       Sco"},
		{"negative start", func(s *Screen) { s.DrawText(-2, 0, "Score") }, "ore       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "Lv") }, "    Lv    "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.want {
				t.Errorf("row = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestScreenBoxAndRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawRect(NewRect(0, 0, 6, 4), '.')
	s.DrawBoxColored(NewRect(0, 0, 6, 4), ColorGray)

	want := []string{
		"┌────┐",
		"│....│",
		"│....│",
		"└────┘",
	}
	if got := s.String(); got != strings.Join(want, "\n") {
		t.Errorf("box =\n%s\nexpected\n%s", got, strings.Join(want, "\n"))
	}
	if s.GetCell(0, 0).Color != ColorGray || s.GetCell(1, 1).Color != ColorDefault {
		t.Error("only the outline should be colored")
	}
}

func TestScreenResizeBlanks(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should blank the screen")
	}
	s.Resize(-1, 2)
	if s.Width() != 0 || s.String() != "\n" {
		t.Errorf("negative width should clamp to 0, got %d %q", s.Width(), s.String())
	}
	if s.Row(5) != "" {
		t.Error("Row outside the screen should be empty")
	}
}

func TestColorANSI(t *testing.T) {
	if ColorDefault.ANSI() != "" || ColorGray.ANSI() != "245" || Color(200).ANSI() != "" {
		t.Error("unexpected ANSI codes")
	}
}

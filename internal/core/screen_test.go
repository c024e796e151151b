package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: 'X', Color: ColorGreen})
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green X", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.FillRect(NewRect(0, 0, 10, 10), 'X', ColorRed)
	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("After Clear(), got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected to start with '  Hello'", got)
	}

	// Clipped at the right edge
	s.DrawText(17, 2, "Clipped")
	if got := s.Row(2)[17:]; got != "Cli" {
		t.Errorf("clipped text = %q, expected 'Cli'", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawTextCentered(1, "abcd", ColorCyan)

	if got := s.Row(1); got != "        abcd        " {
		t.Errorf("Row(1) = %q", got)
	}
	if s.GetCell(8, 1).Color != ColorCyan {
		t.Error("centered text should carry its color")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawBox(NewRect(1, 1, 5, 3), ColorWhite)

	expected := []string{
		"          ",
		" ┌───┐    ",
		" │   │    ",
		" └───┘    ",
		"          ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestScreenDrawBoxTiny(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawBox(NewRect(0, 0, 1, 2), ColorWhite)

	if s.Get(0, 0) != '█' || s.Get(0, 1) != '█' {
		t.Errorf("tiny box should be filled, got %q", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'A')
	s.Set(4, 4, 'B')

	s.Resize(3, 3)
	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("Resize dims = %dx%d, expected 3x3", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'A' {
		t.Error("content inside the new bounds should be preserved")
	}

	s.Resize(6, 6)
	if s.Get(1, 1) != 'A' || s.Get(4, 4) != ' ' {
		t.Error("growing should keep old content and blank the rest")
	}
}

func TestScreenNegativeSize(t *testing.T) {
	s := NewScreen(-4, -2)
	if s.Width() != 0 || s.Height() != 0 {
		t.Fatalf("NewScreen(-4, -2) = %dx%d, expected 0x0", s.Width(), s.Height())
	}

	s.Resize(4, 2)
	s.Set(3, 1, 'Z')
	s.Resize(-1, 5)
	if s.Width() != 0 || s.Height() != 5 {
		t.Fatalf("Resize(-1, 5) = %dx%d, expected 0x5", s.Width(), s.Height())
	}
	if s.String() != "\n\n\n\n" {
		t.Errorf("String() = %q, expected empty rows", s.String())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	if got := s.String(); got != "a  \n  b" {
		t.Errorf("String() = %q", got)
	}
}

package termcube

import (
	"errors"
	"strings"
	"testing"
)

func TestEncodeSolved(t *testing.T) {
	got := New().Snapshot().Encode()
	want := strings.Repeat("W", 9) + strings.Repeat("G", 9) + strings.Repeat("R", 9) +
		strings.Repeat("B", 9) + strings.Repeat("O", 9) + strings.Repeat("Y", 9)
	if got != want {
		t.Errorf("Encode of solved cube = %q, want %q", got, want)
	}
}

func TestEncodeParseRoundTrip(t *testing.T) {
	c := scrambled(t)
	snap := c.Snapshot()

	decoded, err := ParseSnapshot(snap.Encode())
	if err != nil {
		t.Fatalf("ParseSnapshot returned error: %v", err)
	}
	if decoded != snap {
		t.Error("ParseSnapshot(Encode()) should reproduce the snapshot")
		t.Log(decoded.String())
	}
}

func TestParseSnapshotErrors(t *testing.T) {
	if _, err := ParseSnapshot("WGB"); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("short input should return ErrInvalidSnapshot, got %v", err)
	}
	bad := strings.Repeat("W", 53) + "Q"
	if _, err := ParseSnapshot(bad); !errors.Is(err, ErrInvalidSnapshot) {
		t.Errorf("bad letter should return ErrInvalidSnapshot, got %v", err)
	}
}

func TestParseColor(t *testing.T) {
	for _, c := range []Color{White, Yellow, Green, Blue, Red, Orange} {
		got, err := ParseColor(c.String())
		if err != nil {
			t.Errorf("ParseColor(%q) returned error: %v", c.String(), err)
			continue
		}
		if got != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if _, err := ParseColor("P"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("ParseColor(\"P\") should return ErrInvalidColor, got %v", err)
	}
	if _, err := ParseColor("w"); !errors.Is(err, ErrInvalidColor) {
		t.Errorf("lowercase letters should not parse, got %v", err)
	}
}

func TestSnapshotString(t *testing.T) {
	s := New().Snapshot().String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("String should render 9 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "W W W") {
		t.Errorf("top row should show the Up face, got %q", lines[0])
	}
	if !strings.Contains(lines[4], "O O O G G G R R R B B B") {
		t.Errorf("middle band should show L F R B, got %q", lines[4])
	}
	if !strings.Contains(lines[8], "Y Y Y") {
		t.Errorf("bottom row should show the Down face, got %q", lines[8])
	}
}

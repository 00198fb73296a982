package zoo

import (
	"bytes"
	"errors"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"

	"gridlife/src/grid"
)

func randomGrid(t *testing.T, width, height int, seed int64) *grid.Grid {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := grid.New(width, height)
	cells := g.Cells()
	for i := range cells {
		cells[i] = grid.Cell(rng.Intn(2))
	}
	return g
}

func roundTripGrids(t *testing.T) []*grid.Grid {
	t.Helper()
	return []*grid.Grid{
		grid.New(0, 0),
		grid.New(1, 1),
		randomGrid(t, 1, 1, 1),
		LightWeightSpaceship(),
		randomGrid(t, 5, 4, 2),
		randomGrid(t, 8, 8, 3),  // exactly two binary words
		randomGrid(t, 33, 1, 4), // one bit past a word boundary
		randomGrid(t, 13, 7, 5),
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	for _, g := range roundTripGrids(t) {
		var buf bytes.Buffer
		if err := WriteASCII(&buf, g); err != nil {
			t.Fatalf("%dx%d: write: %v", g.Width(), g.Height(), err)
		}
		got, err := ReadASCII(&buf)
		if err != nil {
			t.Fatalf("%dx%d: read: %v", g.Width(), g.Height(), err)
		}
		if !got.Equal(g) {
			t.Fatalf("%dx%d: round trip mismatch:\n%v\nexpected:\n%v", g.Width(), g.Height(), got, g)
		}
	}
}

func TestASCIIExactFormat(t *testing.T) {
	g := grid.New(3, 2)
	_ = g.Set(1, 0, grid.Alive)
	_ = g.Set(2, 1, grid.Alive)

	var buf bytes.Buffer
	if err := WriteASCII(&buf, g); err != nil {
		t.Fatal(err)
	}
	expected := "3 2\n # \n  #\n"
	if buf.String() != expected {
		t.Fatalf("wrote %q, expected %q", buf.String(), expected)
	}
}

func TestASCIIMissingFinalNewlineTolerated(t *testing.T) {
	g, err := ReadASCII(strings.NewReader("2 2\n##\n# "))
	if err != nil {
		t.Fatal(err)
	}
	if g.AliveCells() != 3 {
		t.Fatalf("alive = %d, expected 3", g.AliveCells())
	}
}

func TestASCIIParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  error
	}{
		{"no header", "", ErrParse},
		{"width only", "5\n", ErrParse},
		{"empty height", "5 \n", ErrParse},
		{"width not a number", "a 2\n  \n  \n", ErrParse},
		{"height not a number", "2 b\n  \n  \n", ErrParse},
		{"negative width", "-1 2\n", ErrParse},
		{"bad cell character", "2 2\n#x\n##\n", ErrParse},
		{"missing row newline", "2 2\n####\n", ErrFormat},
		{"row ends early", "2 2\n##\n#", ErrFormat},
	}
	for _, c := range cases {
		if _, err := ReadASCII(strings.NewReader(c.input)); !errors.Is(err, c.want) {
			t.Errorf("%s: err = %v, expected %v", c.name, err, c.want)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	for _, g := range roundTripGrids(t) {
		var buf bytes.Buffer
		if err := WriteBinary(&buf, g); err != nil {
			t.Fatalf("%dx%d: write: %v", g.Width(), g.Height(), err)
		}
		wantLen := 8 + 4*((g.TotalCells()+31)/32)
		if buf.Len() != wantLen {
			t.Fatalf("%dx%d: wrote %d bytes, expected %d", g.Width(), g.Height(), buf.Len(), wantLen)
		}
		got, err := ReadBinary(&buf)
		if err != nil {
			t.Fatalf("%dx%d: read: %v", g.Width(), g.Height(), err)
		}
		if !got.Equal(g) {
			t.Fatalf("%dx%d: round trip mismatch:\n%v\nexpected:\n%v", g.Width(), g.Height(), got, g)
		}
	}
}

// The word layout is a compatibility contract: little-endian uint32
// width and height, then LSB-first row-major cell bits.
func TestBinaryExactLayout(t *testing.T) {
	g := grid.New(3, 2)
	_ = g.Set(0, 0, grid.Alive) // index 0 -> bit 0
	_ = g.Set(2, 1, grid.Alive) // index 5 -> bit 5

	var buf bytes.Buffer
	if err := WriteBinary(&buf, g); err != nil {
		t.Fatal(err)
	}
	expected := []byte{
		3, 0, 0, 0,
		2, 0, 0, 0,
		0x21, 0, 0, 0,
	}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Fatalf("wrote % x, expected % x", buf.Bytes(), expected)
	}
}

func TestBinaryUnexpectedEOF(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, randomGrid(t, 8, 8, 6)); err != nil {
		t.Fatal(err)
	}
	full := buf.Bytes()
	for _, cut := range []int{0, 3, 7, 8, 11, len(full) - 1} {
		if _, err := ReadBinary(bytes.NewReader(full[:cut])); !errors.Is(err, ErrUnexpectedEOF) {
			t.Errorf("truncated at %d: err = %v, expected ErrUnexpectedEOF", cut, err)
		}
	}
}

func TestSaveLoadFiles(t *testing.T) {
	dir := t.TempDir()
	g := randomGrid(t, 7, 5, 7)

	asciiPath := filepath.Join(dir, "grid.gol")
	if err := SaveASCII(asciiPath, g); err != nil {
		t.Fatal(err)
	}
	fromASCII, err := LoadASCII(asciiPath)
	if err != nil {
		t.Fatal(err)
	}
	if !fromASCII.Equal(g) {
		t.Fatal("ascii file round trip mismatch")
	}

	binPath := filepath.Join(dir, "grid.bgol")
	if err := SaveBinary(binPath, g); err != nil {
		t.Fatal(err)
	}
	fromBinary, err := LoadBinary(binPath)
	if err != nil {
		t.Fatal(err)
	}
	if !fromBinary.Equal(g) {
		t.Fatal("binary file round trip mismatch")
	}

	if _, err := LoadASCII(filepath.Join(dir, "missing.gol")); err == nil {
		t.Fatal("loading a missing ascii file must fail")
	}
	if _, err := LoadBinary(filepath.Join(dir, "missing.bgol")); err == nil {
		t.Fatal("loading a missing binary file must fail")
	}
}

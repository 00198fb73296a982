package zoo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gridlife/src/grid"
)

var (
	// ErrParse reports an invalid header field or cell character.
	ErrParse = errors.New("zoo: cannot parse grid")
	// ErrFormat reports a missing newline between rows.
	ErrFormat = errors.New("zoo: malformed grid file")
)

// WriteASCII encodes the grid to w in the .gol format: a
// "<width> <height>\n" header, then height rows of width cells each
// ('#' alive, ' ' dead), every row newline-terminated.
func WriteASCII(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height())
	cells := g.Cells()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			bw.WriteByte(cells[y*g.Width()+x].Char())
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadASCII decodes a grid from r in the .gol format. A missing
// newline after the final row is tolerated; a missing newline after
// any other row fails with ErrFormat, an unrecognized cell character
// or a bad header field fails with ErrParse.
func ReadASCII(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)
	width, err := headerField(br, ' ')
	if err != nil {
		return nil, err
	}
	height, err := headerField(br, '\n')
	if err != nil {
		return nil, err
	}
	g := grid.New(width, height)
	cells := g.Cells()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b, err := br.ReadByte()
			if err != nil {
				return nil, fmt.Errorf("%w: row %d ends early", ErrFormat, y)
			}
			switch b {
			case '#':
				cells[y*width+x] = grid.Alive
			case ' ':
				cells[y*width+x] = grid.Dead
			default:
				return nil, fmt.Errorf("%w: unexpected cell character %q at (%d,%d)", ErrParse, b, x, y)
			}
		}
		b, err := br.ReadByte()
		if err == io.EOF && y == height-1 {
			// the trailing newline after the last row is optional
			break
		}
		if err != nil || b != '\n' {
			return nil, fmt.Errorf("%w: missing newline after row %d", ErrFormat, y)
		}
	}
	return g, nil
}

// headerField reads one decimal header field terminated by delim.
func headerField(br *bufio.Reader, delim byte) (int, error) {
	s, err := br.ReadString(delim)
	if err != nil {
		return 0, fmt.Errorf("%w: truncated header", ErrParse)
	}
	s = s[:len(s)-1]
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q is not a valid dimension", ErrParse, s)
	}
	return n, nil
}

// SaveASCII writes the grid to a .gol file at path.
func SaveASCII(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save ascii: %w", err)
	}
	if err := WriteASCII(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadASCII reads a grid from a .gol file at path.
func LoadASCII(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load ascii: %w", err)
	}
	defer f.Close()
	return ReadASCII(f)
}

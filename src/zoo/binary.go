package zoo

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"gridlife/src/grid"
)

// ErrUnexpectedEOF reports a binary file shorter than its declared
// dimensions require.
var ErrUnexpectedEOF = errors.New("zoo: unexpected end of binary grid")

// wordBits is the number of cells packed into each 32-bit word.
// Together with the little-endian byte order and LSB-first bit order
// this layout is a compatibility contract between writer and reader.
const wordBits = 32

func wordCount(cells int) int {
	return (cells + wordBits - 1) / wordBits
}

// WriteBinary encodes the grid to w in the .bgol format: little-endian
// 32-bit width and height, then ceil(width*height/32) 32-bit words.
// Bit j of word i (bit 0 least significant) holds the cell at
// row-major index i*32+j; unused bits of the final word are zero.
func WriteBinary(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint32(g.Width())); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(g.Height())); err != nil {
		return err
	}
	cells := g.Cells()
	for i := 0; i < wordCount(len(cells)); i++ {
		var word uint32
		for j := 0; j < wordBits && i*wordBits+j < len(cells); j++ {
			if cells[i*wordBits+j] == grid.Alive {
				word |= 1 << uint(j)
			}
		}
		if err := binary.Write(bw, binary.LittleEndian, word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadBinary decodes a grid from r in the .bgol format, failing with
// ErrUnexpectedEOF if r holds fewer words than the dimensions require.
func ReadBinary(r io.Reader) (*grid.Grid, error) {
	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: missing width", ErrUnexpectedEOF)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: missing height", ErrUnexpectedEOF)
	}
	g := grid.New(int(width), int(height))
	cells := g.Cells()
	words := wordCount(len(cells))
	for i := 0; i < words; i++ {
		var word uint32
		if err := binary.Read(r, binary.LittleEndian, &word); err != nil {
			return nil, fmt.Errorf("%w: got %d of %d words", ErrUnexpectedEOF, i, words)
		}
		for j := 0; j < wordBits && i*wordBits+j < len(cells); j++ {
			if word&(1<<uint(j)) != 0 {
				cells[i*wordBits+j] = grid.Alive
			}
		}
	}
	return g, nil
}

// SaveBinary writes the grid to a .bgol file at path.
func SaveBinary(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save binary: %w", err)
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadBinary reads a grid from a .bgol file at path.
func LoadBinary(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load binary: %w", err)
	}
	defer f.Close()
	return ReadBinary(f)
}

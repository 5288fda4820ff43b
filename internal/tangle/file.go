package tangle

import (
	"bytes"
	"fmt"
)

// File is one destination's block sequence, sorted by position.
type File struct {
	dest   string
	blocks Blocks
}

// NewFile builds a File from blocks already sorted by position. Sortedness
// is the caller's responsibility; violating it is a bug in the caller, not
// bad input, so NewFile panics instead of returning an error.
func NewFile(dest string, blocks Blocks) *File {
	for i := 1; i < len(blocks); i++ {
		if blocks[i].Pos.Less(blocks[i-1].Pos) {
			panic(fmt.Sprintf("tangle: blocks for %q are not sorted by position", dest))
		}
	}

	return &File{dest: dest, blocks: blocks}
}

// Dest returns the relative output path.
func (f *File) Dest() string {
	return f.dest
}

// Blocks returns the sorted block sequence.
func (f *File) Blocks() Blocks {
	return f.blocks
}

// Render assembles the final file content: block bodies, each with one
// trailing newline trimmed, joined by a blank line, with a single newline
// appended to the whole.
func (f *File) Render() []byte {
	parts := make([][]byte, len(f.blocks))
	for i, block := range f.blocks {
		parts[i] = bytes.TrimSuffix(block.Code, []byte("\n"))
	}

	return append(bytes.Join(parts, []byte("\n\n")), '\n')
}

// Package tangle extracts tangle-tagged code blocks from Markdown documents
// and assembles them into output files.
package tangle

import "github.com/littool/lit/internal/position"

// Block is a single code fragment destined for an output file.
type Block struct {
	// Dest is the relative path of the output file, as decoded from the
	// fence's tangle URL.
	Dest string

	// Pos orders the block among all blocks sharing Dest.
	Pos position.Position

	// Code is the fence body as it appears in the source, including the
	// final newline when the fence has one. Rendering trims it.
	Code []byte

	// Doc and Line identify the originating fence for error reporting.
	Doc  string
	Line int
}

// Blocks is a list of blocks in discovery order.
type Blocks []*Block

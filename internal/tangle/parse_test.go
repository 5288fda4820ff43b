package tangle_test

import (
	"testing"

	"github.com/littool/lit/internal/position"
	"github.com/littool/lit/internal/tangle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	source := []byte("# Example\n\n" +
		"```tangle:///main.rs\n" +
		"fn main() {}\n" +
		"```\n\n" +
		"Some prose.\n\n" +
		"```tangle:///sub/dir/lib.rs?at=za\n" +
		"// tail\n" +
		"```\n")

	blocks, err := tangle.Extract("example.md", source)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, "main.rs", blocks[0].Dest)
	assert.Equal(t, position.Default(), blocks[0].Pos)
	assert.Equal(t, "fn main() {}\n", string(blocks[0].Code))
	assert.Equal(t, "example.md", blocks[0].Doc)
	assert.Equal(t, 3, blocks[0].Line)

	assert.Equal(t, "sub/dir/lib.rs", blocks[1].Dest)
	assert.Equal(t, "za", blocks[1].Pos.String())
	assert.Equal(t, "// tail\n", string(blocks[1].Code))
}

func TestExtractSkipsOrdinaryFences(t *testing.T) {
	source := []byte("```rust\n" +
		"let x = 1;\n" +
		"```\n\n" +
		"```\n" +
		"no tag at all\n" +
		"```\n\n" +
		"```mailto:someone@example.com\n" +
		"other scheme\n" +
		"```\n")

	blocks, err := tangle.Extract("doc.md", source)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractIgnoresNestedFences(t *testing.T) {
	source := []byte("> ```tangle:///quoted.rs\n" +
		"> // inside a block quote\n" +
		"> ```\n\n" +
		"- item\n\n" +
		"  ```tangle:///listed.rs\n" +
		"  // inside a list item\n" +
		"  ```\n\n" +
		"```tangle:///top.rs\n" +
		"// top level\n" +
		"```\n")

	blocks, err := tangle.Extract("doc.md", source)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "top.rs", blocks[0].Dest)
}

func TestExtractHostfulURL(t *testing.T) {
	source := []byte("```tangle://main.rs\n" +
		"fn main() {}\n" +
		"```\n")

	_, err := tangle.Extract("doc.md", source)
	assert.ErrorIs(t, err, tangle.ErrNotHostless)

	source = []byte("```tangle://host/main.rs\n" +
		"fn main() {}\n" +
		"```\n")

	_, err = tangle.Extract("doc.md", source)
	assert.ErrorIs(t, err, tangle.ErrNotHostless)
}

func TestExtractOpaqueURL(t *testing.T) {
	source := []byte("```tangle:main.rs\n" +
		"fn main() {}\n" +
		"```\n")

	_, err := tangle.Extract("doc.md", source)
	assert.ErrorIs(t, err, tangle.ErrNotHostless)
}

func TestExtractMissingPath(t *testing.T) {
	for _, tag := range []string{"tangle:///", "tangle://"} {
		source := []byte("```" + tag + "\nx\n```\n")

		_, err := tangle.Extract("doc.md", source)
		assert.ErrorIs(t, err, tangle.ErrMissingPath, tag)
	}
}

func TestExtractExtraSlash(t *testing.T) {
	source := []byte("```tangle:////main.rs\n" +
		"fn main() {}\n" +
		"```\n")

	_, err := tangle.Extract("doc.md", source)
	assert.ErrorIs(t, err, tangle.ErrExtraSlash)
}

func TestExtractPositionErrors(t *testing.T) {
	cases := map[string]error{
		"tangle:///a.rs?at=":     position.ErrEmptyKey,
		"tangle:///a.rs?at=A":    position.ErrInvalidCharacters,
		"tangle:///a.rs?at=1":    position.ErrInvalidCharacters,
		"tangle:///a.rs?at=a-b":  position.ErrInvalidCharacters,
		"tangle:///a.rs?at=m.in": position.ErrInvalidCharacters,
	}

	for tag, want := range cases {
		source := []byte("```" + tag + "\nx\n```\n")

		_, err := tangle.Extract("doc.md", source)
		assert.ErrorIs(t, err, want, tag)
	}
}

func TestExtractPositionStartingWithDefaultKey(t *testing.T) {
	source := []byte("```tangle:///a.rs?at=main\nx\n```\n")

	blocks, err := tangle.Extract("doc.md", source)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "main", blocks[0].Pos.String())
}

func TestExtractErrorContext(t *testing.T) {
	source := []byte("# Title\n\nprose\n\n" +
		"```tangle://oops.rs\nx\n```\n")

	_, err := tangle.Extract("notes/doc.md", source)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes/doc.md:5")
}

func TestExtractEmptyDocument(t *testing.T) {
	blocks, err := tangle.Extract("empty.md", nil)
	require.NoError(t, err)
	assert.Empty(t, blocks)

	blocks, err = tangle.Extract("prose.md", []byte("# Just prose\n\nNothing else.\n"))
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestExtractInfoStringWithExtraFields(t *testing.T) {
	source := []byte("```tangle:///a.rs?at=b linenos\nx\n```\n")

	blocks, err := tangle.Extract("doc.md", source)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "a.rs", blocks[0].Dest)
	assert.Equal(t, "b", blocks[0].Pos.String())
}

func TestExtractEmptyFenceBody(t *testing.T) {
	source := []byte("```tangle:///a.rs\n```\n")

	blocks, err := tangle.Extract("doc.md", source)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Empty(t, blocks[0].Code)
}

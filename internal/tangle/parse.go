package tangle

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/shlex"
	"github.com/littool/lit/internal/position"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Scheme is the URL scheme marking a fence as a tangle target.
const Scheme = "tangle"

var (
	// ErrNotHostless is returned for tangle URLs carrying a host component,
	// e.g. tangle://main.rs, where the path was mistyped as a host.
	ErrNotHostless = errors.New("tangle URL must use the hostless form tangle:///<path>")

	// ErrMissingPath is returned for tangle URLs with an empty path.
	ErrMissingPath = errors.New("tangle URL has no destination path")

	// ErrExtraSlash is returned when the destination path begins with an
	// additional slash (four or more slashes after the scheme).
	ErrExtraSlash = errors.New("tangle URL path has an extra leading slash")
)

// Extract parses a Markdown document and returns its tangle blocks in source
// order. Only fences that are direct children of the document root are
// candidates; fences nested in block quotes, lists or other containers are
// illustrative and never extracted. Fences without a tangle-scheme tag are
// skipped. name identifies the document in errors and in [Block.Doc].
func Extract(name string, source []byte) (Blocks, error) {
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks Blocks

	for node := root.FirstChild(); node != nil; node = node.NextSibling() {
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}

		block, err := decodeFence(fcb, source)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, fenceLine(fcb, source), err)
		}

		if block == nil {
			continue
		}

		block.Doc = name
		block.Line = fenceLine(fcb, source)

		blocks = append(blocks, block)
	}

	return blocks, nil
}

// decodeFence turns a fenced code block into a Block. It returns (nil, nil)
// when the fence is not a tangle target, and an error when the fence carries
// the tangle scheme but violates the URL grammar.
func decodeFence(fcb *ast.FencedCodeBlock, source []byte) (*Block, error) {
	if fcb.Info == nil {
		return nil, nil
	}

	dest, pos, ok, err := decodeTag(fenceTag(fcb.Info.Text(source)))
	if err != nil {
		return nil, err
	}

	if !ok {
		return nil, nil
	}

	return &Block{Dest: dest, Pos: pos, Code: extractCode(fcb, source)}, nil
}

// fenceTag returns the first field of the info string. Authors may follow
// the tangle URL with extra attributes; those are ignored.
func fenceTag(info []byte) string {
	words, err := shlex.Split(string(info))
	if err != nil || len(words) == 0 {
		return strings.TrimSpace(string(info))
	}

	return words[0]
}

func decodeTag(tag string) (string, position.Position, bool, error) {
	u, err := url.Parse(tag)
	if err != nil || u.Scheme != Scheme {
		return "", position.Position{}, false, nil
	}

	if u.Host != "" || u.Opaque != "" {
		return "", position.Position{}, false, fmt.Errorf("%w: %q", ErrNotHostless, tag)
	}

	if u.Path == "" || u.Path == "/" {
		return "", position.Position{}, false, fmt.Errorf("%w: %q", ErrMissingPath, tag)
	}

	dest := strings.TrimPrefix(u.Path, "/")
	if strings.HasPrefix(dest, "/") {
		return "", position.Position{}, false, fmt.Errorf("%w: %q", ErrExtraSlash, tag)
	}

	pos := position.Default()

	if at, has := u.Query()["at"]; has {
		pos, err = position.Parse(at[0])
		if err != nil {
			return "", position.Position{}, false, err
		}
	}

	return dest, pos, true, nil
}

func extractCode(fcb *ast.FencedCodeBlock, source []byte) []byte {
	var buff bytes.Buffer

	lines := fcb.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)

		buff.Write(seg.Value(source))
	}

	return buff.Bytes()
}

func fenceLine(fcb *ast.FencedCodeBlock, source []byte) int {
	if fcb.Info != nil {
		return lineAt(source, fcb.Info.Segment.Start)
	}

	lines := fcb.Lines()
	if lines.Len() > 0 {
		return lineAt(source, lines.At(0).Start) - 1
	}

	return 0
}

func lineAt(source []byte, offset int) int {
	line := 1

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
		}
	}

	return line
}

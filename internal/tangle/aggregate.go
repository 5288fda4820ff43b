package tangle

import "sort"

// Aggregate extracts blocks from every document and groups them by
// destination path. Documents are processed in sorted-identifier order so
// the grouping is reproducible regardless of map iteration; within each
// destination, blocks keep their discovery order. The first extraction
// error aborts the whole aggregation.
func Aggregate(docs map[string][]byte) (map[string]Blocks, error) {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}

	sort.Strings(names)

	dests := make(map[string]Blocks)

	for _, name := range names {
		blocks, err := Extract(name, docs[name])
		if err != nil {
			return nil, err
		}

		for _, block := range blocks {
			dests[block.Dest] = append(dests[block.Dest], block)
		}
	}

	return dests, nil
}

// Tangle runs the whole pipeline over a set of documents keyed by source
// identifier and returns the rendered content for every destination path.
// It either returns the complete mapping or an error, never a partial
// result.
func Tangle(docs map[string][]byte) (map[string][]byte, error) {
	dests, err := Aggregate(docs)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]byte, len(dests))

	for dest, blocks := range dests {
		sort.SliceStable(blocks, func(i, j int) bool {
			return blocks[i].Pos.Less(blocks[j].Pos)
		})

		out[dest] = NewFile(dest, blocks).Render()
	}

	return out, nil
}

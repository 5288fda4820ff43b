package cmd

import (
	"io/fs"
	"path"

	"github.com/gobwas/glob"
)

// loadDocuments walks fsys and returns the content of every file whose base
// name matches include, keyed by its slash-separated path. The path keys
// double as the stable processing order for aggregation.
func loadDocuments(fsys fs.FS, include glob.Glob) (map[string][]byte, error) {
	docs := make(map[string][]byte)

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || !include.Match(path.Base(p)) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}

		docs[p] = data

		return nil
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

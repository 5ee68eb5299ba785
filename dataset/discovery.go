// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package dataset

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Tree holds the documents found under a dataset root. All paths are
// absolute and listed in lexical walk order.
type Tree struct {
	Root         string
	Documents    []string
	KeywordBases []string
	Translations []string
}

// Discover walks root once and classifies every file it finds according
// to layout. Language directories that do not exist simply contribute no
// files.
func Discover(root string, layout Layout) (*Tree, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("could not resolve root %q: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, fmt.Errorf("could not stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root %q is not a directory", absRoot)
	}

	programmingRoot := filepath.Join(absRoot, layout.ProgrammingLanguagesDir)
	naturalRoot := filepath.Join(absRoot, layout.NaturalLanguagesDir)
	excluded := toSet(layout.ExcludeDirs)
	skipped := toSet(layout.SkipFiles)

	tree := &Tree{Root: absRoot}
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if _, ok := excluded[d.Name()]; ok && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}

		name := d.Name()
		hasExt := strings.HasSuffix(name, layout.Extension)
		if hasExt {
			tree.Documents = append(tree.Documents, path)
		}

		if name == layout.KeywordBaseFile && isWithin(programmingRoot, path) {
			tree.KeywordBases = append(tree.KeywordBases, path)
		}

		if _, skip := skipped[name]; hasExt && !skip && isWithin(naturalRoot, path) {
			tree.Translations = append(tree.Translations, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %q: %w", absRoot, err)
	}

	return tree, nil
}

// Rel returns path relative to the tree root, using forward slashes.
func (t *Tree) Rel(path string) string {
	rel, err := filepath.Rel(t.Root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}

func isWithin(dir, path string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

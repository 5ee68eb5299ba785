// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// Document is a decoded dataset file.
type Document struct {
	// Path is the absolute location of the file.
	Path string
	// Rel is Path relative to the dataset root, used in findings.
	Rel  string
	Root *Value
}

// KeywordBase is a keyword-base document together with the programming
// language it defines, taken from the name of its parent directory.
type KeywordBase struct {
	Document
	Language string
}

// Load reads and decodes the document at path.
func (t *Tree) Load(path string) (Document, error) {
	rel := t.Rel(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("could not read %s: %w", rel, err)
	}

	root, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("could not decode %s: %w", rel, err)
	}

	return Document{Path: path, Rel: rel, Root: root}, nil
}

// LoadKeywordBases loads every keyword-base document of the tree.
func (t *Tree) LoadKeywordBases() ([]KeywordBase, error) {
	bases := make([]KeywordBase, 0, len(t.KeywordBases))
	for _, path := range t.KeywordBases {
		doc, err := t.Load(path)
		if err != nil {
			return nil, err
		}
		bases = append(bases, KeywordBase{
			Document: doc,
			Language: filepath.Base(filepath.Dir(path)),
		})
	}
	return bases, nil
}

// LoadTranslations loads every translation document of the tree.
func (t *Tree) LoadTranslations() ([]Document, error) {
	docs := make([]Document, 0, len(t.Translations))
	for _, path := range t.Translations {
		doc, err := t.Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"testing"

	"github.com/babel-tcc/translations-validator/dataset"

	"github.com/stretchr/testify/require"
)

func newDocument(t *testing.T, rel, content string) dataset.Document {
	t.Helper()
	root, err := dataset.Decode([]byte(content))
	require.NoError(t, err)
	return dataset.Document{Path: "/data/" + rel, Rel: rel, Root: root}
}

func newKeywordBase(t *testing.T, language, content string) dataset.KeywordBase {
	t.Helper()
	rel := "programming-languages/" + language + "/keywords-base.json"
	return dataset.KeywordBase{
		Document: newDocument(t, rel, content),
		Language: language,
	}
}

func messages(findings []Finding) []string {
	out := make([]string, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Message)
	}
	return out
}

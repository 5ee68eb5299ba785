// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"strings"

	"github.com/babel-tcc/translations-validator/dataset"
)

// Completeness checks that every translation covers exactly the keyword IDs
// of the programming language it declares.
func Completeness(bases []dataset.KeywordBase, translations []dataset.Document) []Finding {
	idsByLanguage := make(map[string]map[string]struct{}, len(bases))
	for _, kb := range bases {
		idsByLanguage[kb.Language] = keywordIDs(kb.Root)
	}

	var findings []Finding
	for _, tr := range translations {
		language := ""
		if v, ok := tr.Root.Get(fieldProgrammingLanguage); ok && v.IsString() {
			language = strings.ToLower(v.Text)
		}

		baseIDs, ok := idsByLanguage[language]
		if !ok {
			findings = append(findings, newFinding(tr.Rel, "linguagem de programacao '%s' sem keywords-base correspondente", language))
			continue
		}

		translatedIDs := translationIDs(tr.Root)

		if missing := difference(baseIDs, translatedIDs); len(missing) > 0 {
			findings = append(findings, newFinding(tr.Rel, "IDs em falta: %s", strings.Join(missing, ", ")))
		}

		if extra := difference(translatedIDs, baseIDs); len(extra) > 0 {
			findings = append(findings, newFinding(tr.Rel, "IDs extras (nao existem no keywords-base): %s", strings.Join(extra, ", ")))
		}
	}

	return findings
}

// keywordIDs collects the values of the keywords table, which are the IDs
// translations refer to.
func keywordIDs(root *dataset.Value) map[string]struct{} {
	ids := make(map[string]struct{})
	keywords, _ := root.Get(fieldKeywords)
	if !keywords.IsObject() {
		return ids
	}

	for _, m := range keywords.Members {
		switch m.Value.Kind {
		case dataset.Number:
			ids[numberText(m.Value.Num.String())] = struct{}{}
		case dataset.String:
			ids[m.Value.Text] = struct{}{}
		}
	}
	return ids
}

func translationIDs(root *dataset.Value) map[string]struct{} {
	ids := make(map[string]struct{})
	translations, _ := root.Get(fieldTranslations)
	for _, id := range translations.Keys() {
		ids[id] = struct{}{}
	}
	return ids
}

// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"github.com/babel-tcc/translations-validator/dataset"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Uniqueness reports translated words used by more than one ID of the same
// translation document, ignoring case. Words are compared by their full
// Unicode lowercase form, so a final sigma or a dotted capital I matches
// only its context-aware lowercase spelling. Each repeat is paired with the
// ID that introduced the word.
func Uniqueness(translations []dataset.Document) []Finding {
	var findings []Finding
	for _, tr := range translations {
		findings = append(findings, duplicateWords(tr)...)
	}
	return findings
}

func duplicateWords(doc dataset.Document) []Finding {
	translations, _ := doc.Root.Get(fieldTranslations)
	if !translations.IsObject() {
		return nil
	}

	var findings []Finding
	lower := cases.Lower(language.Und)
	firstID := make(map[string]string, len(translations.Members))
	for _, m := range translations.Members {
		// Non-string and empty values belong to the schema check.
		if !m.Value.IsString() || m.Value.Text == "" {
			continue
		}

		word := lower.String(m.Value.Text)
		if id, seen := firstID[word]; seen {
			findings = append(findings, newFinding(doc.Rel, "traducao duplicada '%s' usada nos IDs %s e %s", m.Value.Text, id, m.Key))
			continue
		}
		firstID[word] = m.Key
	}
	return findings
}

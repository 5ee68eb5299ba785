// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"fmt"
	"sort"
	"strings"

	"github.com/babel-tcc/translations-validator/dataset"

	"github.com/blang/semver"
)

const (
	fieldKeywords            = "keywords"
	fieldVersion             = "version"
	fieldLanguageCode        = "languageCode"
	fieldLanguageName        = "languageName"
	fieldProgrammingLanguage = "programmingLanguage"
	fieldTranslations        = "translations"
)

var (
	translationFields = []string{
		fieldVersion,
		fieldLanguageCode,
		fieldLanguageName,
		fieldProgrammingLanguage,
		fieldTranslations,
	}
	translationStringFields = translationFields[:4]
)

// SchemaOptions holds the optional rules of the schema check.
type SchemaOptions struct {
	// RequireSemanticVersion additionally requires a translation's version
	// to parse as a semantic version. Missing minor and patch parts are
	// accepted.
	RequireSemanticVersion bool `default:"false"`
}

// Schema validates keyword-base documents against the keyword-table schema
// and translation documents against the translation schema.
func Schema(bases []dataset.KeywordBase, translations []dataset.Document, opts SchemaOptions) []Finding {
	var findings []Finding
	for _, kb := range bases {
		findings = append(findings, KeywordTable(kb.Document)...)
	}
	for _, tr := range translations {
		findings = append(findings, Translation(tr, opts)...)
	}
	return findings
}

// KeywordTable validates a single keyword-base document.
func KeywordTable(doc dataset.Document) []Finding {
	var findings []Finding
	add := func(format string, args ...any) {
		findings = append(findings, newFinding(doc.Rel, format, args...))
	}

	root := doc.Root
	if !root.IsObject() {
		add("raiz deve ser um objeto")
		return findings
	}

	if extra := extraKeys(root, fieldKeywords); len(extra) > 0 {
		add("propriedades extra na raiz: %s", formatKeySet(extra))
	}

	keywords, ok := root.Get(fieldKeywords)
	if !ok {
		add("campo obrigatorio '%s' em falta", fieldKeywords)
		return findings
	}
	if !keywords.IsObject() {
		add("'%s' deve ser um objeto", fieldKeywords)
		return findings
	}

	for _, m := range keywords.Members {
		if !keywordPattern.MatchString(m.Key) {
			add("chave '%s' nao corresponde ao pattern %s", m.Key, keywordPattern)
		}
		if !isNonNegativeInteger(m.Value) {
			add("valor de '%s' deve ser um inteiro >= 0, encontrado: %s", m.Key, displayValue(m.Value))
		}
	}

	return findings
}

// Translation validates a single translation document.
func Translation(doc dataset.Document, opts SchemaOptions) []Finding {
	var findings []Finding
	add := func(format string, args ...any) {
		findings = append(findings, newFinding(doc.Rel, format, args...))
	}

	root := doc.Root
	if !root.IsObject() {
		add("raiz deve ser um objeto")
		return findings
	}

	for _, field := range translationFields {
		if !root.Has(field) {
			add("campo obrigatorio '%s' em falta", field)
		}
	}

	if extra := extraKeys(root, translationFields...); len(extra) > 0 {
		add("propriedades extra na raiz: %s", formatKeySet(extra))
	}

	for _, field := range translationStringFields {
		if v, ok := root.Get(field); ok && !v.IsString() {
			add("'%s' deve ser uma string", field)
		}
	}

	if opts.RequireSemanticVersion {
		if v, ok := root.Get(fieldVersion); ok && v.IsString() {
			if _, err := semver.ParseTolerant(v.Text); err != nil {
				add("'%s' nao e uma versao semantica valida: '%s'", fieldVersion, v.Text)
			}
		}
	}

	translations, ok := root.Get(fieldTranslations)
	if !ok {
		return findings
	}
	if !translations.IsObject() {
		add("'%s' deve ser um objeto", fieldTranslations)
		return findings
	}

	for _, m := range translations.Members {
		if !idPattern.MatchString(m.Key) {
			add("chave de traducao '%s' nao corresponde ao pattern %s", m.Key, idPattern)
		}
		switch {
		case !m.Value.IsString():
			add("traducao para ID '%s' deve ser uma string", m.Key)
		case m.Value.Text == "":
			add("traducao para ID '%s' esta vazia", m.Key)
		}
	}

	return findings
}

func isNonNegativeInteger(v *dataset.Value) bool {
	if !v.IsInteger() {
		return false
	}
	lit := v.Num.String()
	if !strings.HasPrefix(lit, "-") {
		return true
	}
	// -0 is still zero.
	return strings.Trim(lit[1:], "0") == ""
}

func extraKeys(obj *dataset.Value, allowed ...string) []string {
	permitted := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		permitted[k] = struct{}{}
	}

	var extra []string
	for _, k := range obj.Keys() {
		if _, ok := permitted[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	return extra
}

func formatKeySet(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = fmt.Sprintf("'%s'", k)
	}
	return "{" + strings.Join(quoted, ", ") + "}"
}

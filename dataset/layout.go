// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package dataset

// Layout describes where keyword-base and translation documents live
// inside a dataset root.
type Layout struct {
	ProgrammingLanguagesDir string   `default:"programming-languages" validate:"filename"`
	NaturalLanguagesDir     string   `default:"natural-languages" validate:"filename"`
	KeywordBaseFile         string   `default:"keywords-base.json" validate:"filename"`
	Extension               string   `default:".json" validate:"notempty"`
	SkipFiles               []string `default:"template.json" validate:"each:filename"`
	ExcludeDirs             []string `validate:"each:filename"`
}

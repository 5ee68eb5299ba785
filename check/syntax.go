// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/babel-tcc/translations-validator/dataset"
)

const unexpectedEnd = "unexpected end of JSON input"

// Syntax decodes every document of the tree and reports the ones that are
// not valid JSON. A file that cannot be read is an error, not a finding.
func Syntax(tree *dataset.Tree) ([]Finding, error) {
	var findings []Finding
	for _, path := range tree.Documents {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read %s: %w", tree.Rel(path), err)
		}

		if msg := syntaxProblem(data); msg != "" {
			findings = append(findings, Finding{Path: tree.Rel(path), Message: msg})
		}
	}
	return findings, nil
}

// syntaxProblem returns a description of what makes data an invalid JSON
// document, or an empty string when it is valid.
func syntaxProblem(data []byte) string {
	if !utf8.Valid(data) {
		return "invalid UTF-8 encoding: " + position(data, firstInvalidUTF8(data))
	}

	var raw json.RawMessage
	err := json.Unmarshal(data, &raw)
	if err == nil {
		return ""
	}

	var synErr *json.SyntaxError
	if !errors.As(err, &synErr) {
		return err.Error()
	}

	// Offset counts the bytes read up to and including the offending one.
	offset := int(synErr.Offset)
	if synErr.Error() != unexpectedEnd && offset > 0 {
		offset--
	}
	return synErr.Error() + ": " + position(data, offset)
}

// position formats a byte offset as a 1-based line and column, counting
// columns in characters.
func position(data []byte, offset int) string {
	if offset > len(data) {
		offset = len(data)
	}
	if offset < 0 {
		offset = 0
	}

	line, col := 1, 1
	for _, r := range string(data[:offset]) {
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}

	return fmt.Sprintf("linha %d coluna %d (char %d)", line, col, offset)
}

func firstInvalidUTF8(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(data)
}

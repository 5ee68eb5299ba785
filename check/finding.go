// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

// Package check implements the validation passes run over a translations
// dataset. Every pass returns its findings instead of stopping at the
// first problem.
package check

import (
	"fmt"
)

// Finding is a single validation problem located in a dataset file.
type Finding struct {
	// Path is relative to the dataset root.
	Path    string
	Message string
}

func (f Finding) String() string {
	return f.Path + ": " + f.Message
}

func newFinding(path, format string, args ...any) Finding {
	return Finding{Path: path, Message: fmt.Sprintf(format, args...)}
}

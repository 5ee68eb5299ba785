// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"regexp"
	"slices"
	"strings"
)

var (
	keywordPattern = regexp.MustCompile(`^[a-z]+$`)
	idPattern      = regexp.MustCompile(`^[0-9]+$`)
)

// SortIDs orders keyword IDs by numeric value. IDs that are not made of
// digits only sort after the numeric ones, lexically.
func SortIDs(ids []string) {
	slices.SortFunc(ids, compareIDs)
}

func compareIDs(a, b string) int {
	an, aNumeric := numericDigits(a)
	bn, bNumeric := numericDigits(b)

	switch {
	case aNumeric && bNumeric:
		if len(an) != len(bn) {
			return len(an) - len(bn)
		}
		if c := strings.Compare(an, bn); c != 0 {
			return c
		}
	case aNumeric:
		return -1
	case bNumeric:
		return 1
	}

	return strings.Compare(a, b)
}

// numericDigits strips leading zeros so that digit strings of any size
// compare by length first.
func numericDigits(s string) (string, bool) {
	if !idPattern.MatchString(s) {
		return "", false
	}
	return strings.TrimLeft(s, "0"), true
}

func difference(a, b map[string]struct{}) []string {
	var out []string
	for id := range a {
		if _, ok := b[id]; !ok {
			out = append(out, id)
		}
	}
	SortIDs(out)
	return out
}

// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See LICENSE.txt for license information.

package check

import (
	"math"
	"strconv"
	"strings"

	"github.com/babel-tcc/translations-validator/dataset"
)

// numberText renders a number the way keyword IDs and findings spell it.
// Integers are written in canonical form, so -0 and 0 are the same ID.
// Other numbers are written as floats that always carry a fractional part
// or an exponent.
func numberText(lit string) string {
	if !strings.ContainsAny(lit, ".eE") {
		digits := strings.TrimPrefix(lit, "-")
		if strings.Trim(digits, "0") == "" {
			return "0"
		}
		return lit
	}

	f, err := strconv.ParseFloat(lit, 64)
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case err != nil:
		return lit
	}

	exp := strconv.FormatFloat(f, 'e', -1, 64)
	if e, err := strconv.Atoi(exp[strings.IndexByte(exp, 'e')+1:]); err == nil && (e < -4 || e >= 16) {
		return exp
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// displayValue renders an offending value in findings. Top level strings
// are shown bare, nested ones single-quoted.
func displayValue(v *dataset.Value) string {
	if v.IsString() {
		return v.Text
	}
	var b strings.Builder
	writeDisplay(&b, v)
	return b.String()
}

func writeDisplay(b *strings.Builder, v *dataset.Value) {
	if v == nil {
		b.WriteString("None")
		return
	}

	switch v.Kind {
	case dataset.Null:
		b.WriteString("None")
	case dataset.Bool:
		if v.Boolean {
			b.WriteString("True")
		} else {
			b.WriteString("False")
		}
	case dataset.Number:
		b.WriteString(numberText(v.Num.String()))
	case dataset.String:
		b.WriteString(quoteText(v.Text))
	case dataset.Array:
		b.WriteByte('[')
		for i, item := range v.Items {
			if i > 0 {
				b.WriteString(", ")
			}
			writeDisplay(b, item)
		}
		b.WriteByte(']')
	case dataset.Object:
		b.WriteByte('{')
		for i, m := range v.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(quoteText(m.Key))
			b.WriteString(": ")
			writeDisplay(b, m.Value)
		}
		b.WriteByte('}')
	}
}

// quoteText uses single quotes unless the text holds a single quote and
// no double quote.
func quoteText(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}

	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}

// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalizes user-submitted text before it is validated
// or stored.
//
// # Transformation Pipeline
//
// 1. CRLF and lone CR become LF.
// 2. Control characters other than LF and TAB are removed.
// 3. The result is normalized to NFC, so "é" typed as e + combining acute
// and as a single code point compare and count the same.
// 4. Leading and trailing whitespace is trimmed.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func isStrippedControl(r rune) bool {
	return unicode.IsControl(r) && r != '\n' && r != '\t'
}

// Body normalizes a comment body. An all-whitespace input yields "".
func Body(s string) string {
	s = lineEndings.Replace(s)

	chain := transform.Chain(runes.Remove(runes.Predicate(isStrippedControl)), norm.NFC)
	result, _, err := transform.String(chain, s)
	if err != nil {
		// Only invalid UTF-8 can get here; keep the raw text rather than drop it
		result = s
	}

	return strings.TrimSpace(result)
}

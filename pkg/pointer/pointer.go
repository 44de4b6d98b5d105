// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer provides generic pointer helpers.
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

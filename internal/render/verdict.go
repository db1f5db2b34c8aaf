// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     render
// Description: Verdict line formatting
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package render

import (
	"github.com/fatih/color"
)

// Verdict formats the final line printed for an argument
func Verdict(valid, colour bool) string {
	word := "Invalid"
	c := color.New(color.FgRed, color.Bold)
	if valid {
		word = "Valid"
		c = color.New(color.FgGreen, color.Bold)
	}

	if colour {
		c.EnableColor()
	} else {
		c.DisableColor()
	}

	return "Validity: " + c.Sprint(word)
}

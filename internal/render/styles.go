// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     render
// Description: Colors and styles for styled truth tables
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorHeader = lipgloss.Color("#06B6D4") // Cyan
	ColorTrue   = lipgloss.Color("#10B981") // Emerald
	ColorFalse  = lipgloss.Color("#EF4444") // Red
	ColorBorder = lipgloss.Color("#6B7280") // Gray
)

// Table styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorHeader).
			Bold(true).
			Padding(0, 1)

	TrueCellStyle = lipgloss.NewStyle().
			Foreground(ColorTrue).
			Padding(0, 1).
			Align(lipgloss.Center)

	FalseCellStyle = lipgloss.NewStyle().
			Foreground(ColorFalse).
			Padding(0, 1).
			Align(lipgloss.Center)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     render
// Description: Token dump table for the tokens command
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package render

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	v8token "github.com/msto63/valid8/foundation/logic/token"
)

// Tokens writes one row per token with its position
func Tokens(w io.Writer, tokens []v8token.Token) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Type", "Literal", "Line", "Column", "Offset"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)

	for _, tok := range tokens {
		tw.Append([]string{
			tok.Type.String(),
			tok.Literal,
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Column),
			strconv.Itoa(tok.Position),
		})
	}
	tw.Render()
}

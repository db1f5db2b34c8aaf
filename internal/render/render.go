// ============================================================================
// valid8 - Logical Argument Validator
// ============================================================================
//
// Package:     render
// Description: Truth table renderers for terminal output
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/olekukonko/tablewriter"

	v8eval "github.com/msto63/valid8/foundation/logic/evaluator"
)

// Renderer names accepted by New
const (
	Styled = "styled"
	ASCII  = "ascii"
	None   = "none"
)

// TableRenderer writes a truth table. rows is row-major with len(headers)
// cells per row.
type TableRenderer interface {
	Render(w io.Writer, headers []string, rows []bool) error
}

// New returns the renderer registered under name
func New(name string) (TableRenderer, error) {
	switch name {
	case Styled, "":
		return StyledRenderer{}, nil
	case ASCII:
		return ASCIIRenderer{}, nil
	case None:
		return NopRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown table renderer %q", name)
	}
}

// Cell renders a truth value as T or F
func Cell(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

// cells splits rows into string rows of width len(headers)
func cells(headers []string, rows []bool) ([][]string, error) {
	width := len(headers)
	if width == 0 {
		if len(rows) != 0 {
			return nil, fmt.Errorf("%d cells without headers", len(rows))
		}
		return nil, nil
	}
	if len(rows)%width != 0 {
		return nil, fmt.Errorf("%d cells do not fill rows of %d columns", len(rows), width)
	}

	out := make([][]string, 0, len(rows)/width)
	for start := 0; start < len(rows); start += width {
		row := make([]string, width)
		for i, v := range rows[start : start+width] {
			row[i] = Cell(v)
		}
		out = append(out, row)
	}
	return out, nil
}

// ASCIIRenderer draws a plain bordered table with tablewriter
type ASCIIRenderer struct{}

func (ASCIIRenderer) Render(w io.Writer, headers []string, rows []bool) error {
	data, err := cells(headers, rows)
	if err != nil {
		return err
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_CENTER)
	tw.SetHeaderAlignment(tablewriter.ALIGN_CENTER)
	tw.AppendBulk(data)
	tw.Render()
	return nil
}

// StyledRenderer draws a colored table with lipgloss
type StyledRenderer struct{}

func (StyledRenderer) Render(w io.Writer, headers []string, rows []bool) error {
	data, err := cells(headers, rows)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			if row >= 0 && row < len(data) && data[row][col] == "T" {
				return TrueCellStyle
			}
			return FalseCellStyle
		})

	_, err = io.WriteString(w, t.String()+"\n")
	return err
}

// NopRenderer prints nothing
type NopRenderer struct{}

func (NopRenderer) Render(io.Writer, []string, []bool) error { return nil }

// SinkFor adapts a renderer to the evaluator's table sink
func SinkFor(r TableRenderer, w io.Writer) v8eval.TableSink {
	return v8eval.TableSinkFunc(func(headers []string, rows []bool) error {
		return r.Render(w, headers, rows)
	})
}

// Table renders a finished truth table
func Table(r TableRenderer, w io.Writer, t *v8eval.TruthTable) error {
	if t == nil {
		return nil
	}
	return r.Render(w, t.Headers, t.Rows)
}

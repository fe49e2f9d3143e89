// Package render writes an enumerated group in the CLI output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpgroup/group"
)

// MaxGridOrder is the largest order whose multiplication table is drawn as a
// grid in table and markdown output; larger groups list their elements only.
const MaxGridOrder = 48

// Group writes g to w in the named format: table, markdown, json or yaml.
func Group(w io.Writer, g *group.Group, format string) error {
	switch format {
	case "json":
		return renderJSON(w, g)
	case "yaml":
		return renderYAML(w, g)
	case "md", "markdown":
		return renderGrid(w, g, true)
	case "", "table":
		return renderGrid(w, g, false)
	default:
		return fmt.Errorf("render: unknown format %q", format)
	}
}

func renderJSON(w io.Writer, g *group.Group) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(g.Summary())
}

func renderYAML(w io.Writer, g *group.Group) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(g.Summary()); err != nil {
		return err
	}
	return enc.Close()
}

func renderGrid(w io.Writer, g *group.Group, markdown bool) error {
	_, _ = fmt.Fprintf(w, "order %d, %s\n", g.Order(), describe(g))

	if g.Order() > MaxGridOrder {
		return renderElements(w, g, markdown)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	elems := g.Elements()
	header := make(table.Row, 0, len(elems)+1)
	header = append(header, "·")
	for _, e := range elems {
		header = append(header, e)
	}
	t.AppendHeader(header)

	for i, row := range g.Rows() {
		r := make(table.Row, 0, len(row)+1)
		r = append(r, elems[i])
		for _, v := range row {
			r = append(r, v)
		}
		t.AppendRow(r)
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

// renderElements lists elements with their inverses and orders.
func renderElements(w io.Writer, g *group.Group, markdown bool) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "element", "inverse", "order"})
	for i := 0; i < g.Order(); i++ {
		t.AppendRow(table.Row{i, g.Element(i), g.Element(g.InverseIndex(i)), g.OrderIndex(i)})
	}

	if markdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	_, _ = fmt.Fprintf(w, "(multiplication table omitted above order %d; use -o json or -o yaml)\n", MaxGridOrder)
	return nil
}

func describe(g *group.Group) string {
	kind := "non-abelian"
	if g.IsAbelian() {
		kind = "abelian"
	}
	s := g.Stats()
	return fmt.Sprintf("%s (%d cosets defined, %d coincidences, peak %d live)", kind, s.Defined, s.Coincidences, s.MaxLive)
}

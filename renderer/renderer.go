// Package renderer turns projections into human readable markdown and formats
// prices, amounts and percents for display.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/limitcalc"
	"github.com/etnz/limitcalc/store"
)

//go:embed *.md
var templates embed.FS

// ProjectionReport is what ProjectionMarkdown renders.
type ProjectionReport struct {
	Snapshot     limitcalc.InitialSnapshot
	LimitPercent limitcalc.Percent
	Days         []limitcalc.DayProjection
}

// projectionView is the template data of a ProjectionReport.
type projectionView struct {
	Snapshot     limitcalc.InitialSnapshot
	LimitPercent limitcalc.Percent
	Days         int
	Up, Down     pathTable
}

// pathTable is one limit path laid out as a table.
type pathTable struct {
	Title string
	Rows  []pathRow
}

type pathRow struct {
	Label string
	Base  limitcalc.Money
	limitcalc.PathProjection
}

func newProjectionView(r *ProjectionReport) projectionView {
	v := projectionView{
		Snapshot:     r.Snapshot,
		LimitPercent: r.LimitPercent,
		Days:         len(r.Days),
		Up:           pathTable{Title: "Limit-Up Path"},
		Down:         pathTable{Title: "Limit-Down Path"},
	}
	for _, d := range r.Days {
		label := fmt.Sprint(d.Day)
		if !d.Date.IsZero() {
			label += " (" + d.Date.String() + ")"
		}
		v.Up.Rows = append(v.Up.Rows, pathRow{Label: label, Base: d.BasePriceForUp, PathProjection: d.LimitUp})
		v.Down.Rows = append(v.Down.Rows, pathRow{Label: label, Base: d.BasePriceForDown, PathProjection: d.LimitDown})
	}
	return v
}

// funcs exposes the formatter to the templates.
func (f *Formatter) funcs() template.FuncMap {
	return template.FuncMap{
		"price":   func(m limitcalc.Money) string { return f.Price(m.Decimal(), DefaultAmountDecimals) },
		"amount":  func(m limitcalc.Money) string { return f.Amount(m.Decimal(), DefaultAmountDecimals) },
		"percent": func(p limitcalc.Percent) string { return f.Percent(p.Decimal(), DefaultPercentDecimals) },
	}
}

// ProjectionMarkdown renders the snapshot and both limit paths as markdown tables.
func ProjectionMarkdown(r *ProjectionReport, f *Formatter) string {
	partials := map[string]string{
		"projection_title":    "projection_title.md",
		"projection_snapshot": "projection_snapshot.md",
		"projection_path":     "projection_path.md",
	}
	return renderTemplate("projection", "projection.md", partials, f.funcs(), newProjectionView(r))
}

// SnapshotMarkdown renders the initial snapshot alone.
func SnapshotMarkdown(s limitcalc.InitialSnapshot, f *Formatter) string {
	partials := map[string]string{
		"projection_snapshot": "projection_snapshot.md",
	}
	return renderTemplate("snapshot", "snapshot.md", partials, f.funcs(), s)
}

// ParametersMarkdown renders saved parameters.
func ParametersMarkdown(p store.Parameters, f *Formatter) string {
	return renderTemplate("parameters", "parameters.md", nil, f.funcs(), p)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, funcs template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

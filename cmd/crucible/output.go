package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crucible/grid"
	"github.com/katalvlaran/crucible/search"
)

// Outcome statuses.
const (
	statusFound       = "found"
	statusUnreachable = "unreachable"
	statusBudget      = "budget_exceeded"
)

// outcome is the printable result of one regime.
type outcome struct {
	Regime    string     `json:"regime" yaml:"regime"`
	Status    string     `json:"status" yaml:"status"`
	Cost      int64      `json:"cost" yaml:"cost"`
	Expanded  int        `json:"expanded" yaml:"expanded"`
	Pushed    int        `json:"pushed" yaml:"pushed"`
	Elapsed   string     `json:"elapsed" yaml:"elapsed"`
	Path      []stepView `json:"path,omitempty" yaml:"path,omitempty"`
	Rendering string     `json:"rendering,omitempty" yaml:"rendering,omitempty"`
}

// stepView flattens a search.Step for serialization.
type stepView struct {
	Row  int    `json:"row" yaml:"row"`
	Col  int    `json:"col" yaml:"col"`
	Dir  string `json:"dir" yaml:"dir"`
	Cost int64  `json:"cost" yaml:"cost"`
}

// newOutcome converts a search result; a nil path leaves Path and Rendering empty.
func newOutcome(g *grid.Grid, r search.Regime, res search.Result, budget bool) outcome {
	out := outcome{
		Regime:   r.Name(),
		Status:   statusFound,
		Cost:     res.Cost,
		Expanded: res.Expanded,
		Pushed:   res.Pushed,
	}
	switch {
	case budget:
		out.Status = statusBudget
	case !res.Found:
		out.Status = statusUnreachable
	}
	if len(res.Path) > 0 {
		out.Path = make([]stepView, len(res.Path))
		for i, st := range res.Path {
			out.Path[i] = stepView{Row: st.Pos.Row, Col: st.Pos.Col, Dir: st.Dir.String(), Cost: st.Cost}
		}
		out.Rendering = search.Render(g, res.Path)
	}

	return out
}

// writeOutcomes prints outs in the requested format.
func writeOutcomes(w io.Writer, format string, outs []outcome) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(outs)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(outs); err != nil {
			return err
		}

		return enc.Close()
	case formatText, "":
		return writeText(w, outs)
	default:
		return fmt.Errorf("%w: %q", errBadFormat, format)
	}
}

func writeText(w io.Writer, outs []outcome) error {
	var sb strings.Builder
	for _, o := range outs {
		switch o.Status {
		case statusFound:
			fmt.Fprintf(&sb, "%s: %d\n", o.Regime, o.Cost)
		case statusUnreachable:
			fmt.Fprintf(&sb, "%s: unreachable\n", o.Regime)
		default:
			fmt.Fprintf(&sb, "%s: no path within budget\n", o.Regime)
		}
		if o.Rendering != "" {
			sb.WriteString(o.Rendering)
		}
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

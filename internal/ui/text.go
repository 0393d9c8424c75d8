package ui

import (
	"fmt"
	"strings"

	"procgrid/internal/core"
)

// PanelLines formats a parameter snapshot for the HUD panel: a title, then
// each group name followed by indented "label: value" rows.
func PanelLines(sim core.Sim) []string {
	if sim == nil {
		return []string{"Parameters"}
	}
	lines := []string{panelTitle(sim.Name())}
	provider, ok := sim.(core.ParameterProvider)
	if !ok {
		return lines
	}
	for _, g := range provider.Parameters().Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}

func panelTitle(name string) string {
	if name == "" {
		return "Parameters"
	}
	return strings.ToUpper(name[:1]) + name[1:] + " Parameters"
}

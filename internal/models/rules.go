package models

// PlotRules defines the YAML configuration for how the viewer draws
// extracted objects. The defaults reproduce the built-in marker scheme:
// circle for planets, asterisk for mission-flagged entities, cross for
// everything else.
type PlotRules struct {
	ShowLabels  bool         `json:"showLabels" yaml:"show_labels"`
	LabelColor  string       `json:"labelColor" yaml:"label_color"`
	PlotPadding float64      `json:"plotPadding" yaml:"plot_padding"`
	Planet      MarkerStyle  `json:"planet" yaml:"planet"`
	Mission     MarkerStyle  `json:"mission" yaml:"mission"`
	Entity      MarkerStyle  `json:"entity" yaml:"entity"`
	Overrides   []MarkerRule `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// MarkerStyle describes one marker class on the scatter plot.
type MarkerStyle struct {
	Shape  string  `json:"shape" yaml:"shape"` // "circle", "asterisk", "cross"
	Color  string  `json:"color" yaml:"color"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// MarkerRule overrides the marker style for objects whose name matches a
// case-insensitive substring pattern. Higher priority rules win.
type MarkerRule struct {
	Pattern  string      `json:"pattern" yaml:"pattern"`
	Style    MarkerStyle `json:"style" yaml:"style"`
	Priority int         `json:"priority" yaml:"priority"`
}

// DefaultPlotRules returns the built-in marker scheme.
func DefaultPlotRules() *PlotRules {
	return &PlotRules{
		ShowLabels:  true,
		LabelColor:  "#c8c8c8",
		PlotPadding: 2000,
		Planet:      MarkerStyle{Shape: "circle", Color: "#4f9cf0", Radius: 10},
		Mission:     MarkerStyle{Shape: "asterisk", Color: "#f0b04f", Radius: 10},
		Entity:      MarkerStyle{Shape: "cross", Color: "#9e9e9e", Radius: 10},
	}
}

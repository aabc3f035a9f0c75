// Package view defines the renderer-independent description of a page:
// metrics, text blocks and chart specifications.
package view

// BlockKind discriminates the content of a Block.
type BlockKind string

const (
	KindMetrics BlockKind = "metrics"
	KindText    BlockKind = "text"
	KindChart   BlockKind = "chart"
	KindDivider BlockKind = "divider"
)

// TextStyle selects how a text block is presented.
type TextStyle string

const (
	StyleHeading     TextStyle = "heading"
	StyleSubheading  TextStyle = "subheading"
	StyleParagraph   TextStyle = "paragraph"
	StyleExplanation TextStyle = "explanation"
	StyleTariffInfo  TextStyle = "tariff_info"
	StyleInfo        TextStyle = "info"
	StyleSuccess     TextStyle = "success"
	StyleError       TextStyle = "error"
	StyleList        TextStyle = "list"
	StyleCaption     TextStyle = "caption"
)

// ChartType is the kind of chart to draw.
type ChartType string

const (
	ChartLine    ChartType = "line"
	ChartBar     ChartType = "bar"
	ChartHeatmap ChartType = "heatmap"
)

// Page is the complete output of one page render.
type Page struct {
	ID     string  `json:"id" yaml:"id"`
	Title  string  `json:"title" yaml:"title"`
	Intro  string  `json:"intro,omitempty" yaml:"intro,omitempty"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// Block is one element of a page, rendered top to bottom.
type Block struct {
	Kind    BlockKind `json:"kind" yaml:"kind"`
	Metrics []Metric  `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Text    *Text     `json:"text,omitempty" yaml:"text,omitempty"`
	Chart   *Chart    `json:"chart,omitempty" yaml:"chart,omitempty"`
}

// Metric is a labelled, preformatted value.
type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Text is a passage of prose. Items is used by StyleList.
// Body may contain **bold** markers.
type Text struct {
	Style TextStyle `json:"style" yaml:"style"`
	Body  string    `json:"body,omitempty" yaml:"body,omitempty"`
	Items []string  `json:"items,omitempty" yaml:"items,omitempty"`
}

// Chart describes a chart without committing to a drawing library.
// Line and bar charts use Categories and Series; heatmaps use Heatmap.
type Chart struct {
	ID         string    `json:"id" yaml:"id"`
	Type       ChartType `json:"type" yaml:"type"`
	Title      string    `json:"title" yaml:"title"`
	XLabel     string    `json:"x_label,omitempty" yaml:"x_label,omitempty"`
	YLabel     string    `json:"y_label,omitempty" yaml:"y_label,omitempty"`
	Categories []string  `json:"categories,omitempty" yaml:"categories,omitempty"`
	Series     []Series  `json:"series,omitempty" yaml:"series,omitempty"`
	Heatmap    *Heatmap  `json:"heatmap,omitempty" yaml:"heatmap,omitempty"`
	Shaded     []Region  `json:"shaded,omitempty" yaml:"shaded,omitempty"`
	Legend     bool      `json:"legend" yaml:"legend"`
}

// Series is one named sequence of values aligned with Chart.Categories.
type Series struct {
	Name   string    `json:"name" yaml:"name"`
	Values []float64 `json:"values" yaml:"values"`
	Color  string    `json:"color,omitempty" yaml:"color,omitempty"`
	Marker bool      `json:"marker,omitempty" yaml:"marker,omitempty"`
}

// Heatmap is a matrix of optional values. Cells[y][x] is nil for "no data".
type Heatmap struct {
	XLabels []string     `json:"x_labels" yaml:"x_labels"`
	YLabels []string     `json:"y_labels" yaml:"y_labels"`
	Cells   [][]*float64 `json:"cells" yaml:"cells"`
	Palette []string     `json:"palette,omitempty" yaml:"palette,omitempty"`
}

// Region shades the x range [From, To] of a chart, in category index units.
type Region struct {
	Label string  `json:"label" yaml:"label"`
	From  float64 `json:"from" yaml:"from"`
	To    float64 `json:"to" yaml:"to"`
	Color string  `json:"color,omitempty" yaml:"color,omitempty"`
	Alpha float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

package view

// Builder appends blocks to a Page in reading order.
type Builder struct {
	page Page
}

// NewBuilder starts a page.
func NewBuilder(id, title, intro string) *Builder {
	return &Builder{page: Page{ID: id, Title: title, Intro: intro, Blocks: []Block{}}}
}

// Metrics adds a row of metrics.
func (b *Builder) Metrics(m ...Metric) *Builder {
	b.page.Blocks = append(b.page.Blocks, Block{Kind: KindMetrics, Metrics: m})
	return b
}

// Text adds a styled text block.
func (b *Builder) Text(style TextStyle, body string) *Builder {
	b.page.Blocks = append(b.page.Blocks, Block{Kind: KindText, Text: &Text{Style: style, Body: body}})
	return b
}

// List adds a bullet list, optionally preceded by body text.
func (b *Builder) List(body string, items ...string) *Builder {
	b.page.Blocks = append(b.page.Blocks, Block{Kind: KindText, Text: &Text{Style: StyleList, Body: body, Items: items}})
	return b
}

// Chart adds a chart.
func (b *Builder) Chart(c Chart) *Builder {
	b.page.Blocks = append(b.page.Blocks, Block{Kind: KindChart, Chart: &c})
	return b
}

// Divider adds a horizontal rule.
func (b *Builder) Divider() *Builder {
	b.page.Blocks = append(b.page.Blocks, Block{Kind: KindDivider})
	return b
}

// Page returns the built page.
func (b *Builder) Page() Page {
	return b.page
}

// Charts returns the charts of p in page order.
func (p Page) Charts() []Chart {
	var out []Chart
	for _, b := range p.Blocks {
		if b.Kind == KindChart && b.Chart != nil {
			out = append(out, *b.Chart)
		}
	}
	return out
}

// FindChart returns the chart with the given id.
func (p Page) FindChart(id string) (Chart, bool) {
	for _, c := range p.Charts() {
		if c.ID == id {
			return c, true
		}
	}
	return Chart{}, false
}

// Metric returns the value of the first metric with label.
func (p Page) Metric(label string) (string, bool) {
	for _, b := range p.Blocks {
		for _, m := range b.Metrics {
			if m.Label == label {
				return m.Value, true
			}
		}
	}
	return "", false
}

// Texts returns every text block of p with the given style.
func (p Page) Texts(style TextStyle) []Text {
	var out []Text
	for _, b := range p.Blocks {
		if b.Kind == KindText && b.Text != nil && b.Text.Style == style {
			out = append(out, *b.Text)
		}
	}
	return out
}

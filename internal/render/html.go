package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ev-charging-dashboard/internal/view"
)

const chartHeight = "360px"

var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// markdown escapes s and turns **x** into <b>x</b>.
func markdown(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(boldRe.ReplaceAllString(escaped, "<b>$1</b>"))
}

func chartDOMID(id string) string {
	return "chart_" + id
}

var layoutTmpl = template.Must(template.New("layout").Funcs(template.FuncMap{
	"md":      markdown,
	"domID":   chartDOMID,
	"inputOf": func(d Document, param string) int { return d.Inputs.Get(param) },
}).Parse(`
<aside class="sidebar">
  <h2>{{md .Shell.NavTitle}}</h2>
  <p class="nav-label">{{.Shell.NavLabel}}</p>
  <ul class="nav">
  {{- range .Shell.Items}}
    <li{{if .Active}} class="active"{{end}}><a href="/pages/{{.ID}}">{{.Label}}</a></li>
  {{- end}}
  </ul>
  <hr>
  <p class="caption">{{.Shell.Caption}}</p>
</aside>
<main class="block-container">
  <h1>{{.Page.Title}}</h1>
  {{- if .Page.Intro}}
  <p>{{md .Page.Intro}}</p>
  {{- end}}
  {{- if .Widgets}}
  <form class="widgets" method="get">
  {{- $doc := .}}
  {{- range .Widgets}}
    <label>{{.Label}} <input type="number" name="{{.Param}}" min="{{.Min}}" max="{{.Max}}" value="{{inputOf $doc .Param}}"></label>
  {{- end}}
    <button type="submit">Apply</button>
  </form>
  {{- end}}
  {{- range .Page.Blocks}}
  {{- if eq .Kind "divider"}}
  <hr>
  {{- else if eq .Kind "metrics"}}
  <div class="metrics">
    {{- range .Metrics}}
    <div class="stMetric"><div class="metric-label">{{.Label}}</div><div class="metric-value">{{.Value}}</div></div>
    {{- end}}
  </div>
  {{- else if eq .Kind "chart"}}
  <div class="chart-slot" data-chart="{{domID .Chart.ID}}"></div>
  {{- else if eq .Kind "text"}}
  {{- with .Text}}
  {{- if eq .Style "heading"}}<h2>{{md .Body}}</h2>
  {{- else if eq .Style "subheading"}}<h3>{{md .Body}}</h3>
  {{- else if eq .Style "list"}}
  {{- if .Body}}<p>{{md .Body}}</p>{{end}}
  <ul>{{range .Items}}<li>{{md .}}</li>{{end}}</ul>
  {{- else if eq .Style "explanation"}}<p class="explanation">{{md .Body}}</p>
  {{- else if eq .Style "tariff_info"}}<p class="tariff-info">{{md .Body}}</p>
  {{- else if or (eq .Style "info") (eq .Style "success") (eq .Style "error")}}<div class="alert alert-{{.Style}}">{{md .Body}}</div>
  {{- else if eq .Style "caption"}}<p class="caption">{{md .Body}}</p>
  {{- else}}<p>{{md .Body}}</p>
  {{- end}}
  {{- end}}
  {{- end}}
  {{- end}}
  <hr>
  <p class="caption">{{md .Shell.Footer}}</p>
</main>
`))

const styleSheet = `
<style>
    body { background-color: #F9FAFB; margin: 0; display: flex; }
    h1, h2, h3 { color: #0F172A; font-family: 'Segoe UI', sans-serif; }
    .explanation { color: #1E293B; font-size: 0.95rem; font-weight: 500; }
    .tariff-info { color: #111827; font-size: 1rem; font-weight: 600; }
    .stMetric { background-color: #E2E8F0; border-radius: 10px; padding: 8px; flex: 1; }
    .metric-label { font-size: 0.9rem; color: #334155; }
    .metric-value { font-size: 1.6rem; font-weight: 600; color: #0F172A; }
    .metrics { display: flex; gap: 1rem; margin: 1rem 0; }
    .block-container { padding: 1rem 2rem; flex: 1; font-family: 'Segoe UI', sans-serif; }
    .sidebar { width: 240px; min-height: 100vh; background: #F0F2F6; padding: 1rem; font-family: 'Segoe UI', sans-serif; }
    .sidebar .nav { list-style: none; padding: 0; }
    .sidebar .nav li.active a { font-weight: 700; }
    .caption { color: #64748B; font-size: 0.85rem; }
    .alert { border-radius: 8px; padding: 0.75rem 1rem; margin: 0.5rem 0; }
    .alert-info { background: #DBEAFE; color: #1E3A8A; }
    .alert-success { background: #DCFCE7; color: #14532D; }
    .alert-error { background: #FEE2E2; color: #7F1D1D; }
    .widgets label { display: block; font-size: 1.05rem; font-weight: 600; color: #0F172A; margin: 0.5rem 0; }
</style>
`

const relocateScript = `
<script>
document.querySelectorAll('.chart-slot').forEach(function(slot) {
    var el = document.getElementById(slot.dataset.chart);
    if (el && el.parentNode) { slot.appendChild(el.parentNode); }
});
</script>
`

// HTML writes doc as a standalone page. Charts are drawn by echarts and
// moved into their slots in block order once the page loads.
func HTML(w io.Writer, doc Document) error {
	page := components.NewPage()
	page.PageTitle = doc.Shell.AppTitle
	for _, c := range doc.Page.Charts() {
		ch, err := Echart(c)
		if err != nil {
			return err
		}
		page.AddCharts(ch)
	}

	var buf strings.Builder
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	var layout bytes.Buffer
	if err := layoutTmpl.Execute(&layout, doc); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}

	htmlContent := buf.String()
	htmlContent = strings.Replace(htmlContent, "</head>", styleSheet+"</head>", 1)
	htmlContent = strings.Replace(htmlContent, "<body>", "<body>\n"+layout.String(), 1)
	htmlContent = strings.Replace(htmlContent, "</body>", relocateScript+"</body>", 1)

	if _, err := io.WriteString(w, htmlContent); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// Echart converts a chart description into a go-echarts chart.
func Echart(c view.Chart) (components.Charter, error) {
	switch c.Type {
	case view.ChartLine:
		return echartLine(c), nil
	case view.ChartBar:
		return echartBar(c), nil
	case view.ChartHeatmap:
		return echartHeatmap(c), nil
	default:
		return nil, fmt.Errorf("chart %s: unsupported type %q", c.ID, c.Type)
	}
}

func globalOpts(c view.Chart) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: chartDOMID(c.ID),
			Width:   "100%",
			Height:  chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{Title: c.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(c.Legend)}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.XLabel, Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.YLabel}),
	}
}

// categoryAt maps a region bound in index units onto a category name.
func categoryAt(cats []string, x float64) string {
	i := int(x)
	if i < 0 {
		i = 0
	}
	if i >= len(cats) {
		i = len(cats) - 1
	}
	if i < 0 {
		return ""
	}
	return cats[i]
}

func echartLine(c view.Chart) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(globalOpts(c)...)
	line.SetXAxis(c.Categories)

	for i, s := range c.Series {
		data := make([]opts.LineData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.LineData{Value: v}
		}
		seriesOpts := []charts.SeriesOpts{
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(s.Marker)}),
		}
		if s.Color != "" {
			seriesOpts = append(seriesOpts,
				charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
				charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color}),
			)
		}
		if i == 0 {
			for _, r := range c.Shaded {
				seriesOpts = append(seriesOpts, charts.WithMarkAreaNameCoordItemOpts(opts.MarkAreaNameCoordItem{
					Name:        r.Label,
					Coordinate0: []interface{}{categoryAt(c.Categories, r.From)},
					Coordinate1: []interface{}{categoryAt(c.Categories, r.To)},
					ItemStyle:   &opts.ItemStyle{Color: r.Color, Opacity: float32(r.Alpha)},
				}))
			}
		}
		line.AddSeries(s.Name, data, seriesOpts...)
	}
	return line
}

func echartBar(c view.Chart) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(globalOpts(c)...)
	bar.SetXAxis(c.Categories)

	for _, s := range c.Series {
		data := make([]opts.BarData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.BarData{Value: v}
		}
		var seriesOpts []charts.SeriesOpts
		if s.Color != "" {
			seriesOpts = append(seriesOpts, charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}))
		}
		bar.AddSeries(s.Name, data, seriesOpts...)
	}
	return bar
}

func echartHeatmap(c view.Chart) *charts.HeatMap {
	heatmap := charts.NewHeatMap()
	hm := c.Heatmap
	if hm == nil {
		hm = &view.Heatmap{}
	}

	global := globalOpts(c)
	global = append(global,
		charts.WithXAxisOpts(opts.XAxis{
			Name:      c.XLabel,
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:      c.YLabel,
			Type:      "category",
			Data:      hm.YLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
		}),
	)
	heatmap.SetGlobalOptions(global...)

	var data []opts.HeatMapData
	maxVal := 0.0
	for yi, row := range hm.Cells {
		for xi, cell := range row {
			if cell == nil {
				continue
			}
			if *cell > maxVal {
				maxVal = *cell
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{xi, yi, *cell}})
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}
	heatmap.SetGlobalOptions(
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVal),
			InRange:    &opts.VisualMapInRange{Color: hm.Palette},
		}),
	)

	heatmap.SetXAxis(hm.XLabels).
		AddSeries("kWh", data)
	return heatmap
}

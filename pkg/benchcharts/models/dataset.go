// Package models defines data structures for benchmark chart datasets.
package models

// Series represents one named sequence of measurements.
type Series struct {
	// Name is the series display name (usually the solver or implementation).
	Name string `json:"name"`
	// Data holds one value per benchmark case, in category order.
	Data []float64 `json:"data"`
}

// Dataset is the chart input shape the bundled templates expect.
type Dataset struct {
	// Title is an optional chart title.
	Title string `json:"title,omitempty"`
	// Categories labels the benchmark cases (x axis). Optional.
	Categories []string `json:"categories,omitempty"`
	// Series is the ordered list of series to plot.
	Series []Series `json:"series"`
}

// Width returns the number of points in the longest series.
func (d *Dataset) Width() int {
	n := len(d.Categories)
	for _, s := range d.Series {
		if len(s.Data) > n {
			n = len(s.Data)
		}
	}
	return n
}

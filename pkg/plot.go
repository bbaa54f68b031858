package pkg

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// PlotEvents draws a per-worker timeline of events and saves it to file.
// The image format follows the file extension.
func PlotEvents(events []TEvent, file string) error {
	if len(events) == 0 {
		return fmt.Errorf("plot '%s': no events", file)
	}

	pointsMap := make(map[string]plotter.XYs)
	var maxWorker int
	startTime := events[0].Time
	for _, event := range events {
		maxWorker = max(maxWorker, event.Worker)
		pointsMap[event.Text] = append(pointsMap[event.Text], plotter.XY{
			X: float64(event.Time.Sub(startTime).Microseconds()) / 1000,
			Y: float64(event.Worker),
		})
	}

	p := plot.New()
	p.Title.Text = "Worker Events"
	p.X.Label.Text = "Time (ms)"
	p.Y.Label.Text = "Worker"

	var ticks []plot.Tick
	for id := 0; id <= maxWorker; id++ {
		ticks = append(ticks, plot.Tick{Value: float64(id), Label: fmt.Sprint(id)})
	}
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)

	texts := make([]string, 0, len(pointsMap))
	for text := range pointsMap {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	colors := plotutil.SoftColors
	for i, text := range texts {
		scatter, err := plotter.NewScatter(pointsMap[text])
		if err != nil {
			return fmt.Errorf("plot '%s': %w", file, err)
		}
		scatter.GlyphStyle.Color = colors[i%len(colors)]
		p.Add(scatter)
		p.Legend.Add(text, scatter)
	}

	p.Y.Min = -0.5
	p.Y.Max = float64(maxWorker) + 0.5

	if err := p.Save(16*vg.Inch, vg.Length(maxWorker+4)*vg.Inch/2, file); err != nil {
		return fmt.Errorf("plot '%s': %w", file, err)
	}
	return nil
}

package aggregate

import (
	"math"

	"github.com/limbo/fitlog/pkg/entity"
)

const OverTargetColor = "#ef4444"

type Progress struct {
	Percent    float64
	OverTarget bool
}

// Calculate fills a bar for value against target. Percent is clamped to 0..100 for
// bar width; OverTarget looks at the raw value so an overshoot is still flagged.
// target must be positive, anything else yields an empty bar.
func Calculate(value, target float64) Progress {
	if target <= 0 {
		return Progress{}
	}
	percent := value / target * 100
	if math.IsNaN(percent) {
		return Progress{}
	}
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	return Progress{
		Percent:    percent,
		OverTarget: value > target,
	}
}

type macroBar struct {
	label string
	color string
	value func(entity.FoodRecord) float64
	goal  func(entity.MacroTarget) float64
}

var macroBars = []macroBar{
	{
		label: "Calories",
		color: "#f59e42",
		value: func(r entity.FoodRecord) float64 { return r.Calories },
		goal:  func(t entity.MacroTarget) float64 { return t.Calories },
	},
	{
		label: "Protein",
		color: "#60a5fa",
		value: func(r entity.FoodRecord) float64 { return r.Protein },
		goal:  func(t entity.MacroTarget) float64 { return t.Protein },
	},
	{
		label: "Carbs",
		color: "#34d399",
		value: func(r entity.FoodRecord) float64 { return r.Carbs },
		goal:  func(t entity.MacroTarget) float64 { return t.Carbs },
	},
	{
		label: "Fat",
		color: "#f472b6",
		value: func(r entity.FoodRecord) float64 { return r.Fat },
		goal:  func(t entity.MacroTarget) float64 { return t.Fat },
	},
}

// MacroProgress builds the calories, protein, carbs and fat bars for one day.
func MacroProgress(rec entity.FoodRecord, targets entity.MacroTarget) []entity.MacroProgress {
	bars := make([]entity.MacroProgress, 0, len(macroBars))
	for _, bar := range macroBars {
		value, target := bar.value(rec), bar.goal(targets)
		p := Calculate(value, target)
		color := bar.color
		if p.OverTarget {
			color = OverTargetColor
		}
		bars = append(bars, entity.MacroProgress{
			Label:      bar.label,
			Value:      value,
			Target:     target,
			Percent:    p.Percent,
			OverTarget: p.OverTarget,
			Color:      color,
		})
	}
	return bars
}

// Package progress derives dashboard figures from raw student stats.
package progress

import "math"

// Percentage returns round(value/total*100) clamped to [0, 100].
// A non-positive total yields 0.
func Percentage(value, total float64) int {
	if total <= 0 || math.IsNaN(value) || math.IsNaN(total) {
		return 0
	}
	p := math.Round(value / total * 100)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

// ScoreScale brings scores into the range of project counts for side-by-side bars.
const ScoreScale = 10

// Point is one period of student activity.
type Point struct {
	Label    string  `json:"label" yaml:"label"`
	Projects float64 `json:"projects" yaml:"projects"`
	Score    float64 `json:"score" yaml:"score"`
}

// Bar holds chart heights in percent of the tallest value in the series.
type Bar struct {
	Label          string  `json:"label"`
	ProjectsHeight float64 `json:"projects_height"`
	ScoreHeight    float64 `json:"score_height"`
}

// Bars scales every point against the maximum of projects and score/ScoreScale
// across the series. An all-zero series yields zero heights.
func Bars(points []Point) []Bar {
	maxValue := 0.0
	for _, p := range points {
		maxValue = math.Max(maxValue, math.Max(p.Projects, p.Score/ScoreScale))
	}

	bars := make([]Bar, 0, len(points))
	for _, p := range points {
		b := Bar{Label: p.Label}
		if maxValue > 0 {
			b.ProjectsHeight = p.Projects / maxValue * 100
			b.ScoreHeight = p.Score / ScoreScale / maxValue * 100
		}
		bars = append(bars, b)
	}
	return bars
}

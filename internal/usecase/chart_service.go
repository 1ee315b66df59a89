package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/valyala/bytebufferpool"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/quizplease/statsboard/internal/domain/game"
)

var (
	chartBackground = drawing.ColorWhite
	chartPrimary    = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	chartSecondary  = drawing.Color{R: 255, G: 127, B: 14, A: 255}
	chartTertiary   = drawing.Color{R: 44, G: 160, B: 44, A: 255}
	chartText       = drawing.Color{R: 51, G: 51, B: 51, A: 255}
)

// ChartService renders dashboard figures as PNG server-side, so any client
// can embed them without a charting library of its own.
type ChartService struct {
	comparisons *ComparisonService
}

func NewChartService(comparisons *ComparisonService) *ChartService {
	return &ChartService{comparisons: comparisons}
}

// TeamHistoryChart draws a team's total score over time with a horizontal
// median rule.
func (s *ChartService) TeamHistoryChart(ctx context.Context, teamID int64, filter game.Filter) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "ChartService.TeamHistoryChart")
	defer span.End()

	dynamics, err := s.comparisons.TeamDynamics(ctx, teamID, filter)
	if err != nil {
		return nil, err
	}
	// A single point cannot form a line; fall back to the placeholder.
	if len(dynamics.Games) < 2 {
		return renderNoDataPlaceholder("Not enough games to chart")
	}

	xValues := make([]time.Time, len(dynamics.Games))
	yValues := make([]float64, len(dynamics.Games))
	median := make([]float64, len(dynamics.Games))
	for i, record := range dynamics.Games {
		xValues[i] = record.GameDate
		yValues[i] = record.TotalScore
		median[i] = dynamics.MedianScore
	}

	graph := chart.Chart{
		Title:  dynamics.Team,
		Width:  900,
		Height: 420,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.XAxis{
			Name:           "Game date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		YAxis: chart.YAxis{
			Name: "Total score",
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Total score",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chartPrimary,
					StrokeWidth: 2,
					DotWidth:    4,
					DotColor:    chartSecondary,
				},
			},
			chart.TimeSeries{
				Name:    "Median",
				XValues: xValues,
				YValues: median,
				Style: chart.Style{
					StrokeColor:     chartTertiary,
					StrokeWidth:     1,
					StrokeDashArray: []float64{4, 4},
				},
			},
		},
	}

	return renderPNG(graph)
}

// RoundComparisonChart draws grouped bars per round: the requested team, the
// game winner and the round maximum.
func (s *ChartService) RoundComparisonChart(ctx context.Context, gameID, teamID int64) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "ChartService.RoundComparisonChart")
	defer span.End()

	comparison, err := s.comparisons.RoundComparison(ctx, gameID, teamID)
	if err != nil {
		return nil, err
	}
	if len(comparison.Rounds) == 0 {
		return renderNoDataPlaceholder("No round scores for this game")
	}

	bars := make([]chart.Value, 0, len(comparison.Rounds)*3)
	for _, triplet := range comparison.Rounds {
		bars = append(bars,
			chart.Value{Label: triplet.Round, Value: triplet.TeamScore, Style: chart.Style{FillColor: chartPrimary}},
			chart.Value{Label: "", Value: triplet.WinnerScore, Style: chart.Style{FillColor: chartSecondary}},
			chart.Value{Label: "", Value: triplet.MaxScore, Style: chart.Style{FillColor: chartTertiary}},
		)
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("%s vs %s, per round", comparison.Team, comparison.Winner),
		Width:    900,
		Height:   420,
		BarWidth: 24,
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		XAxis: chart.Style{
			FontColor: chartText,
		},
		YAxis: chart.YAxis{
			Name: "Score",
			Style: chart.Style{
				FontColor: chartText,
			},
		},
		Bars: bars,
	}

	return renderPNG(graph)
}

type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

func renderPNG(graph renderable) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func renderNoDataPlaceholder(msg string) ([]byte, error) {
	graph := chart.Chart{
		Width:  400,
		Height: 200,
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
		},
		Background: chart.Style{
			FillColor: chartBackground,
		},
		Canvas: chart.Style{
			FillColor: chartBackground,
		},
		// Render requires a visible series; this one disappears into the
		// background.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
				Style: chart.Style{
					StrokeColor: chartBackground,
					StrokeWidth: 1,
				},
			},
		},
		Elements: []chart.Renderable{
			func(r chart.Renderer, cb chart.Box, chartDefaults chart.Style) {
				r.SetFontColor(chartText)
				r.SetFontSize(12.0)
				tb := r.MeasureText(msg)
				x := (cb.Width() - tb.Width()) / 2
				y := (cb.Height() + tb.Height()) / 2
				r.Text(msg, x, y)
			},
		},
	}
	return renderPNG(graph)
}

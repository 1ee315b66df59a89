package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/quizplease/statsboard/internal/domain/game"
	"github.com/quizplease/statsboard/internal/domain/results"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestTeamHistoryChart_RendersPNG(t *testing.T) {
	svc := NewChartService(comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {
			historyRecord(1, 2, 38),
			historyRecord(2, 1, 44),
			historyRecord(3, 3, 31),
		},
	}, nil))

	png, err := svc.TeamHistoryChart(context.Background(), 1, game.Filter{})
	if err != nil {
		t.Fatalf("render history chart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("expected PNG output, got prefix %v", png[:4])
	}
}

func TestTeamHistoryChart_PlaceholderUnderTwoGames(t *testing.T) {
	svc := NewChartService(comparisonFixture(map[int64][]results.TeamGameRecord{
		1: {historyRecord(1, 2, 38)},
	}, nil))

	png, err := svc.TeamHistoryChart(context.Background(), 1, game.Filter{})
	if err != nil {
		t.Fatalf("render placeholder: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("expected PNG placeholder, got prefix %v", png[:4])
	}
}

func TestRoundComparisonChart_RendersPNG(t *testing.T) {
	svc := NewChartService(comparisonFixture(nil, []results.GameResultRow{
		resultRow("Beta", 1, 50, "Round 1", 6),
		resultRow("Beta", 1, 50, "Round 2", 5),
		resultRow("Alpha", 2, 44, "Round 1", 5),
		resultRow("Alpha", 2, 44, "Round 2", 7),
	}))

	png, err := svc.RoundComparisonChart(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("render round chart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatalf("expected PNG output, got prefix %v", png[:4])
	}
}

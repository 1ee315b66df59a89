package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/quizplease/statsboard/internal/domain/results"
)

func TestGameLeaderboardXLSX(t *testing.T) {
	svc := NewExportService(NewLeaderboardService(&stubResultsRepo{
		gameResults: []results.GameResultRow{
			resultRow("Beta", 1, 50, "Round 1", 6),
			resultRow("Beta", 1, 50, "Round 2", 5),
			resultRow("Alpha", 2, 44, "Round 1", 5),
		},
	}))

	raw, err := svc.GameLeaderboardXLSX(context.Background(), 1)
	if err != nil {
		t.Fatalf("export leaderboard: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Leaderboard")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Rank" || rows[0][3] != "Round 1" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Beta" {
		t.Fatalf("expected winner first, got %v", rows[1])
	}
	// Alpha never scored Round 2; the trailing cell stays blank.
	if len(rows[2]) > 4 && rows[2][4] != "" {
		t.Fatalf("expected blank cell for missing round, got %q", rows[2][4])
	}
}

func TestGameLeaderboardXLSX_InvalidGameID(t *testing.T) {
	svc := NewExportService(NewLeaderboardService(&stubResultsRepo{}))

	if _, err := svc.GameLeaderboardXLSX(context.Background(), 0); err == nil {
		t.Fatalf("expected error for game id 0")
	}
}

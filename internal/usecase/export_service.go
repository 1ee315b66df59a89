package usecase

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExportService renders reshaped tables to spreadsheet files.
type ExportService struct {
	leaderboards *LeaderboardService
}

func NewExportService(leaderboards *LeaderboardService) *ExportService {
	return &ExportService{leaderboards: leaderboards}
}

// GameLeaderboardXLSX writes the pivoted leaderboard to a single-sheet XLSX
// workbook: rank, team, total, then one column per round. Absent cells stay
// blank.
func (s *ExportService) GameLeaderboardXLSX(ctx context.Context, gameID int64) ([]byte, error) {
	ctx, span := startUsecaseSpan(ctx, "ExportService.GameLeaderboardXLSX")
	defer span.End()

	board, err := s.leaderboards.GameLeaderboard(ctx, gameID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Leaderboard"
	f.SetSheetName("Sheet1", sheet)

	header := append([]string{"Rank", "Team", "Total"}, board.Rounds...)
	for col, title := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	for i, row := range board.Rows {
		values := make([]any, 0, len(header))
		values = append(values, row.Rank, row.Team, row.Total)
		for _, score := range row.Scores {
			if score == nil {
				values = append(values, nil)
				continue
			}
			values = append(values, *score)
		}

		for col, value := range values {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("write row: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

package postgres

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every column the query builders read has to exist in the schema the
// migrator provisions, or a freshly migrated store rejects the first query.
func TestMigrationCoversQueriedColumns(t *testing.T) {
	ddl, err := os.ReadFile("../../../../db/migrations/000001_create_schema.up.sql")
	require.NoError(t, err)

	tables := map[string][]string{
		"quizplease.games":                    {"id", "game_name", "game_number", "category", "venue", "game_date"},
		"quizplease.teams":                    {"id", "name"},
		"quizplease.team_game_participations": {"id", "team_id", "game_id", "rank", "total_score"},
		"quizplease.round_scores":             {"id", "participation_id", "round_name", "score"},
	}

	for table, columns := range tables {
		t.Run(table, func(t *testing.T) {
			body := tableDDL(t, string(ddl), table)
			for _, column := range columns {
				assert.Regexp(t, `(?m)^\s*`+column+`\s`, body, "column %s missing from %s", column, table)
			}
		})
	}
}

func tableDDL(t *testing.T, ddl, table string) string {
	t.Helper()

	re := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS ` + regexp.QuoteMeta(table) + ` \((.*?)\);`)
	match := re.FindStringSubmatch(ddl)
	require.Len(t, match, 2, "no CREATE TABLE for %s", table)
	return match[1]
}

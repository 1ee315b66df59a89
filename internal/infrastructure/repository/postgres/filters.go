package postgres

import (
	"github.com/quizplease/statsboard/internal/domain/game"
	qb "github.com/quizplease/statsboard/internal/platform/querybuilder"
)

// gameFilterConditions translates a filter into IN predicates against the
// games table (aliased by prefix). Empty attribute sets contribute nothing,
// so an all-empty filter yields a full scan rather than an empty result.
func gameFilterConditions(prefix string, filter game.Filter) []qb.Condition {
	if prefix != "" {
		prefix += "."
	}

	conditions := make([]qb.Condition, 0, 3)
	if len(filter.GameNames) > 0 {
		conditions = append(conditions, qb.InStrings(prefix+"game_name", filter.GameNames))
	}
	if len(filter.Categories) > 0 {
		conditions = append(conditions, qb.InStrings(prefix+"category", filter.Categories))
	}
	if len(filter.Venues) > 0 {
		conditions = append(conditions, qb.InStrings(prefix+"venue", filter.Venues))
	}
	return conditions
}

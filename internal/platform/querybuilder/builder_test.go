package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("id", "name").
		From("quizplease.teams").
		Where(Eq("id", int64(7))).
		OrderBy("name").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id, name FROM quizplease.teams WHERE id = $1 ORDER BY name LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != int64(7) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_InStrings(t *testing.T) {
	query, args, err := Select("id").
		From("quizplease.games").
		Where(
			InStrings("game_name", []string{"Classic", "Music"}),
			InStrings("venue", []string{"Downtown"}),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM quizplease.games WHERE game_name IN ($1, $2) AND venue IN ($3)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "Classic" || args[1] != "Music" || args[2] != "Downtown" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_NoConditionsMeansNoWhere(t *testing.T) {
	query, args, err := Select("id").From("quizplease.games").ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM quizplease.games"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_Expr(t *testing.T) {
	query, args, err := Select("t.name", "COUNT(*) AS finish_count").
		From("quizplease.team_game_participations tgp JOIN quizplease.teams t ON t.id = tgp.team_id").
		Where(Expr("tgp.rank <= ?", 3)).
		GroupBy("t.name").
		OrderBy("finish_count DESC").
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT t.name, COUNT(*) AS finish_count FROM quizplease.team_game_participations tgp JOIN quizplease.teams t ON t.id = tgp.team_id WHERE tgp.rank <= $1 GROUP BY t.name ORDER BY finish_count DESC"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != 3 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInNeverMatches(t *testing.T) {
	query, args, err := Select("id").
		From("quizplease.games").
		Where(InStrings("category", nil)).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT id FROM quizplease.games WHERE 1=0"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

package favorites

import (
	"github.com/JaimeStill/promptcraft/internal/prompts"
	"github.com/JaimeStill/promptcraft/pkg/query"
)

var defaultSort = []query.SortField{
	{Field: "f.created_at", Descending: true},
	{Field: "f.id", Descending: true},
}

func listStatement(userID string) query.Statement {
	return query.
		NewBuilder(prompts.Projection, defaultSort...).
		Join("content_prompt_favorite", "f", "f.prompt_id = p.id").
		WhereEquals("f.user_id", userID).
		Build()
}

func insertStatement(uuid, userID string, promptID int64) query.Statement {
	return query.NewStatement(`
		INSERT INTO content_prompt_favorite (uuid, user_id, prompt_id)
		VALUES (?, ?, ?)`,
		uuid, userID, promptID,
	)
}

func deleteStatement(userID string, promptID int64) query.Statement {
	return query.NewStatement(`
		DELETE FROM content_prompt_favorite
		WHERE user_id = ? AND prompt_id = ?`,
		userID, promptID,
	)
}

package prompts

import (
	"github.com/JaimeStill/promptcraft/pkg/query"
)

// Projection selects prompt columns along with the favorite count subquery.
// Other domains that return Prompt rows build on it.
var Projection = query.
	NewProjectionMap("", "content_prompt", "p").
	Project("id", "ID").
	Project("uuid", "UUID").
	Project("text", "Text").
	Project("creator_user_id", "CreatorUserID").
	Project("date_created", "DateCreated").
	Compute(
		"SELECT COUNT(*) FROM content_prompt_favorite c WHERE c.prompt_id = p.id",
		"favorite_count",
		"FavoriteCount",
	)

var defaultSort = []query.SortField{
	{Field: "DateCreated", Descending: true},
	{Field: "ID", Descending: true},
}

func listStatement() query.Statement {
	return query.NewBuilder(Projection, defaultSort...).Build()
}

func insertStatement(uuid, text, creatorUserID string) query.Statement {
	return query.NewStatement(`
		INSERT INTO content_prompt (uuid, text, creator_user_id)
		VALUES (?, ?, ?)`,
		uuid, text, creatorUserID,
	)
}

package favorites

import "github.com/JaimeStill/promptcraft/pkg/openapi"

var schemas = map[string]*openapi.Schema{
	"FavoriteCommand": {
		Type:     "object",
		Required: []string{"prompt_id"},
		Properties: map[string]*openapi.Schema{
			"prompt_id": {Type: "integer", Format: "int64", Minimum: openapi.Float(1)},
		},
	},
}

var listOp = &openapi.Operation{
	OperationID: "listFavorites",
	Summary:     "List favorited prompts",
	Description: "Signed-in callers receive their own favorites. Anonymous lookups by user_id require public favorites to be enabled.",
	Parameters: []*openapi.Parameter{
		openapi.QueryParam("user_id", "string", "User whose favorites to list", false),
	},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseArrayJSON("Favorited prompts, most recent first", "Prompt"),
		400: openapi.ResponseRef("BadRequest"),
		401: openapi.ResponseRef("Unauthorized"),
		403: openapi.ResponseRef("Forbidden"),
		500: openapi.ResponseRef("ServerError"),
	},
}

var addOp = &openapi.Operation{
	OperationID: "addFavorite",
	Summary:     "Favorite a prompt",
	RequestBody: openapi.RequestBodyJSON("FavoriteCommand", true),
	Responses:   mutationResponses("Favorite stored"),
}

var removeOp = &openapi.Operation{
	OperationID: "removeFavorite",
	Summary:     "Unfavorite a prompt",
	Description: "Removes every favorite the signed-in user holds for the prompt.",
	RequestBody: openapi.RequestBodyJSON("FavoriteCommand", true),
	Responses:   mutationResponses("Favorite removed"),
}

func mutationResponses(success string) map[int]*openapi.Response {
	return map[int]*openapi.Response{
		200: openapi.ResponseJSON(success, "Success"),
		400: openapi.ResponseRef("BadRequest"),
		401: openapi.ResponseRef("Unauthorized"),
		413: openapi.ResponseRef("PayloadTooLarge"),
		500: openapi.ResponseRef("ServerError"),
	}
}

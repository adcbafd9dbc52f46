package prompts

import "github.com/JaimeStill/promptcraft/pkg/openapi"

var schemas = map[string]*openapi.Schema{
	"Prompt": {
		Type:     "object",
		Required: []string{"id", "uuid", "text", "creator_user_id", "date_created", "favorite_count"},
		Properties: map[string]*openapi.Schema{
			"id":              {Type: "integer", Format: "int64"},
			"uuid":            {Type: "string", Format: "uuid"},
			"text":            {Type: "string"},
			"creator_user_id": {Type: "string"},
			"date_created":    {Type: "string", Description: "Creation timestamp as stored"},
			"favorite_count":  {Type: "integer", Format: "int64", Minimum: openapi.Float(0)},
		},
	},
	"CreatePromptCommand": {
		Type:     "object",
		Required: []string{"text"},
		Properties: map[string]*openapi.Schema{
			"text": {Type: "string", MinLength: openapi.Int(MinTextLength)},
		},
	},
}

var listOp = &openapi.Operation{
	OperationID: "listPrompts",
	Summary:     "List prompts",
	Description: "Every shared prompt with its favorite count, newest first.",
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseArrayJSON("Prompts", "Prompt"),
		500: openapi.ResponseRef("ServerError"),
	},
}

var createOp = &openapi.Operation{
	OperationID: "createPrompt",
	Summary:     "Share a prompt",
	Description: "Stores a prompt attributed to the signed-in user.",
	RequestBody: openapi.RequestBodyJSON("CreatePromptCommand", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Prompt stored", "Success"),
		400: openapi.ResponseRef("BadRequest"),
		401: openapi.ResponseRef("Unauthorized"),
		413: openapi.ResponseRef("PayloadTooLarge"),
		500: openapi.ResponseRef("ServerError"),
	},
}

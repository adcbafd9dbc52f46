package openapi

import "maps"

// NewComponents creates Components with the shared error and success schemas
// and the error responses every endpoint can return.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error":  {Type: "string", Description: "Error message"},
					"detail": {Type: "string", Description: "Upstream failure text, when available"},
				},
			},
			"Success": {
				Type:       "object",
				Required:   []string{"success"},
				Properties: map[string]*Schema{"success": {Type: "boolean", Example: true}},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request"),
			"Unauthorized":    errorResponse("No verified session"),
			"Forbidden":       errorResponse("Session user may not access the requested resource"),
			"PayloadTooLarge": errorResponse("Request body exceeds the configured limit"),
			"ServerError":     errorResponse("Store request failed"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}

func errorResponse(description string) *Response {
	return ResponseJSON(description, "Error")
}

package openai

import (
	"context"
	"encoding/json"

	// Packages
	client "github.com/mutablelogic/go-client"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Model struct {
	Name    string `json:"id"`
	Type    string `json:"object"`
	OwnedBy string `json:"owned_by"`
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Model) String() string {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ListModels returns all the models available from the backend
func (c *Client) ListModels(ctx context.Context) ([]Model, error) {
	var response struct {
		Data []Model `json:"data"`
	}
	if err := c.do(ctx, nil, &response, client.OptPath("models")); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// Models returns the names of the models available from the backend
func (c *Client) Models(ctx context.Context) ([]string, error) {
	models, err := c.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(models))
	for i, model := range models {
		result[i] = model.Name
	}
	return result, nil
}

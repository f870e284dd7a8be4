package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

type searchRequest struct {
	Filter      searchFilter `json:"filter"`
	StartCursor string       `json:"start_cursor,omitempty"`
}

type searchFilter struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// dataSource is the wire shape of a data_source search result.
type dataSource struct {
	ID     string            `json:"id"`
	Title  []models.RichText `json:"title"`
	Parent struct {
		Type       string `json:"type"`
		DatabaseID string `json:"database_id"`
		ID         string `json:"id"`
	} `json:"parent"`
}

// ListDatabases returns every database the integration can reach, discovered
// through the data-source search API. A database exposing several data
// sources yields one entry per (database, data source) pair.
func (c *Client) ListDatabases(ctx context.Context) ([]models.Database, error) {
	var databases []models.Database
	seen := make(map[[2]string]bool)

	cursor := ""
	for {
		reqBody, err := json.Marshal(searchRequest{
			Filter:      searchFilter{Property: "object", Value: "data_source"},
			StartCursor: cursor,
		})
		if err != nil {
			return nil, err
		}

		body, err := c.do(ctx, http.MethodPost, "/search", versionCurrent, reqBody)
		if err != nil {
			return nil, fmt.Errorf("data source search failed: %w", err)
		}

		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode search response: %w", err)
		}

		for _, raw := range envelope.Results {
			var ds dataSource
			if err := json.Unmarshal(raw, &ds); err != nil {
				c.logger.Warn("skipping undecodable data source", "error", err)
				continue
			}

			databaseID := ds.Parent.DatabaseID
			if databaseID == "" && ds.Parent.Type == "database" {
				databaseID = ds.Parent.ID
			}
			if databaseID == "" {
				// No parent info: query through the data source itself.
				databaseID = ds.ID
			}

			key := [2]string{databaseID, ds.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			databases = append(databases, models.Database{
				ID:           databaseID,
				DataSourceID: ds.ID,
				TitleSpans:   ds.Title,
			})
		}

		if !envelope.HasMore || envelope.NextCursor == nil {
			return databases, nil
		}
		cursor = *envelope.NextCursor
	}
}

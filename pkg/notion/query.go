package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

type queryRequest struct {
	StartCursor string `json:"start_cursor,omitempty"`
}

// databaseInfo is the wire shape of GET /databases/{id} under the current API
// version.
type databaseInfo struct {
	ID             string            `json:"id"`
	Title          []models.RichText `json:"title"`
	CreatedTime    string            `json:"created_time"`
	LastEditedTime string            `json:"last_edited_time"`
	DataSources    []struct {
		ID string `json:"id"`
	} `json:"data_sources"`
}

// GetDatabase fetches a database descriptor.
func (c *Client) GetDatabase(ctx context.Context, databaseID string) (models.Database, error) {
	body, err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, versionCurrent, nil)
	if err != nil {
		return models.Database{}, fmt.Errorf("failed to get database %s: %w", databaseID, err)
	}
	var info databaseInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return models.Database{}, fmt.Errorf("failed to decode database %s: %w", databaseID, err)
	}
	db := models.Database{
		ID:             info.ID,
		TitleSpans:     info.Title,
		CreatedTime:    info.CreatedTime,
		LastEditedTime: info.LastEditedTime,
	}
	if len(info.DataSources) > 0 {
		db.DataSourceID = info.DataSources[0].ID
	}
	return db, nil
}

// FetchDatabasePages returns every page of a database. It queries through the
// data source when one is known (or discoverable), and falls back to the
// legacy database query endpoint otherwise, mirroring what older workspaces
// still require.
func (c *Client) FetchDatabasePages(ctx context.Context, databaseID, dataSourceID string) ([]models.Page, error) {
	if dataSourceID == "" {
		db, err := c.GetDatabase(ctx, databaseID)
		if err != nil {
			c.logger.Warn("could not resolve data source, using legacy query",
				"database_id", databaseID, "error", err)
		} else {
			dataSourceID = db.DataSourceID
		}
	}

	if dataSourceID != "" {
		pages, err := c.queryPages(ctx, "/data-sources/"+dataSourceID+"/query", versionCurrent)
		if err == nil {
			return pages, nil
		}
		c.logger.Warn("data source query failed, falling back to legacy query",
			"database_id", databaseID, "data_source_id", dataSourceID, "error", err)
	}

	pages, err := c.queryPages(ctx, "/databases/"+databaseID+"/query", versionLegacy)
	if err != nil {
		return nil, fmt.Errorf("failed to query database %s: %w", databaseID, err)
	}
	return pages, nil
}

func (c *Client) queryPages(ctx context.Context, path, version string) ([]models.Page, error) {
	var pages []models.Page
	cursor := ""
	for {
		reqBody, err := json.Marshal(queryRequest{StartCursor: cursor})
		if err != nil {
			return nil, err
		}

		body, err := c.do(ctx, http.MethodPost, path, version, reqBody)
		if err != nil {
			return nil, err
		}

		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode query response: %w", err)
		}
		for _, raw := range envelope.Results {
			var page models.Page
			if err := json.Unmarshal(raw, &page); err != nil {
				c.logger.Warn("skipping undecodable page", "error", err)
				continue
			}
			pages = append(pages, page)
		}

		if !envelope.HasMore || envelope.NextCursor == nil {
			return pages, nil
		}
		cursor = *envelope.NextCursor
	}
}

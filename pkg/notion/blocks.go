package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// FetchBlocks returns the top-level block children of a page. Each call is
// bounded by blockFetchTimeout; timeouts surface as ordinary errors for the
// sampler to swallow. Satisfies entropy.BlockFetcher.
func (c *Client) FetchBlocks(ctx context.Context, pageID string) ([]models.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, blockFetchTimeout)
	defer cancel()

	var blocks []models.Block
	cursor := ""
	for {
		path := "/blocks/" + pageID + "/children"
		if cursor != "" {
			path += "?start_cursor=" + cursor
		}
		body, err := c.do(ctx, http.MethodGet, path, versionLegacy, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch blocks for %s: %w", pageID, err)
		}

		var envelope listEnvelope
		if err := json.Unmarshal(body, &envelope); err != nil {
			return nil, fmt.Errorf("failed to decode blocks for %s: %w", pageID, err)
		}
		for _, raw := range envelope.Results {
			var block models.Block
			if err := json.Unmarshal(raw, &block); err != nil {
				continue
			}
			blocks = append(blocks, block)
		}

		if !envelope.HasMore || envelope.NextCursor == nil {
			return blocks, nil
		}
		cursor = *envelope.NextCursor
	}
}

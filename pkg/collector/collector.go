// Package collector gathers the page records of every audited database,
// fanning fetches out over a bounded worker pool. Per-database failures are
// carried as values on the result so one unreachable database never aborts
// the run.
package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// Fetcher is the client surface the collector needs.
type Fetcher interface {
	ListDatabases(ctx context.Context) ([]models.Database, error)
	GetDatabase(ctx context.Context, databaseID string) (models.Database, error)
	FetchDatabasePages(ctx context.Context, databaseID, dataSourceID string) ([]models.Page, error)
}

// Result is the collected record set of one database. Err is set when the
// fetch failed; Pages is nil in that case.
type Result struct {
	Database models.Database
	Pages    []models.Page
	Err      error
}

// Collector fetches records for a set of databases.
type Collector struct {
	fetcher Fetcher
	logger  *slog.Logger
	workers int
}

// New creates a Collector running at most workers concurrent fetches.
func New(fetcher Fetcher, logger *slog.Logger, workers int) *Collector {
	if workers < 1 {
		workers = 1
	}
	return &Collector{fetcher: fetcher, logger: logger, workers: workers}
}

// Collect fetches the pages of the given databases, or of every reachable
// database when databaseIDs is empty. Results come back in a stable order
// matching the input (or discovery) order.
func (c *Collector) Collect(ctx context.Context, databaseIDs []string) ([]Result, error) {
	databases, err := c.resolveDatabases(ctx, databaseIDs)
	if err != nil {
		return nil, err
	}
	if len(databases) == 0 {
		return nil, nil
	}

	type job struct {
		index    int
		database models.Database
	}

	jobs := make(chan job, len(databases))
	results := make([]Result, len(databases))

	workers := c.workers
	if workers > len(databases) {
		workers = len(databases)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				pages, err := c.fetcher.FetchDatabasePages(ctx, j.database.ID, j.database.DataSourceID)
				if err != nil {
					c.logger.Warn("skipping unreachable database",
						"database_id", j.database.ID, "error", err)
					results[j.index] = Result{Database: j.database, Err: err}
					continue
				}
				c.logger.Info("collected database",
					"database_id", j.database.ID, "title", j.database.Title(), "pages", len(pages))
				results[j.index] = Result{Database: j.database, Pages: pages}
			}
		}()
	}
	for i, db := range databases {
		jobs <- job{index: i, database: db}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

// resolveDatabases turns explicit ids into descriptors, or discovers every
// accessible database when none were given.
func (c *Collector) resolveDatabases(ctx context.Context, databaseIDs []string) ([]models.Database, error) {
	if len(databaseIDs) == 0 {
		return c.fetcher.ListDatabases(ctx)
	}

	databases := make([]models.Database, 0, len(databaseIDs))
	for _, id := range databaseIDs {
		db, err := c.fetcher.GetDatabase(ctx, id)
		if err != nil {
			// Descriptor fetch failing is not fatal: the query path can
			// still reach the database through the legacy endpoint.
			c.logger.Warn("could not describe database", "database_id", id, "error", err)
			db = models.Database{ID: id}
		}
		databases = append(databases, db)
	}
	return databases, nil
}

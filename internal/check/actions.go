// Package check implements the `check` command: collect every audited
// database, compute the entropy metrics and health score, and write the
// markdown report.
package check

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Complexivist-Ran/notion-entropy/internal/common"
	"github.com/Complexivist-Ran/notion-entropy/internal/ui"
	"github.com/Complexivist-Ran/notion-entropy/models"
	"github.com/Complexivist-Ran/notion-entropy/pkg/cache"
	"github.com/Complexivist-Ran/notion-entropy/pkg/collector"
	"github.com/Complexivist-Ran/notion-entropy/pkg/entropy"
	"github.com/Complexivist-Ran/notion-entropy/pkg/notion"
	"github.com/Complexivist-Ran/notion-entropy/pkg/report"
	"github.com/urfave/cli/v2"
)

func CheckAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := loadConfig(c)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	client, err := newClient(c, config, logger)
	if err != nil {
		logger.Error("failed to initialize client", "error", err)
		os.Exit(2)
	}

	ctx := c.Context
	now := time.Now().UTC()

	logger.Info("collecting databases",
		"databases", len(config.DatabaseIDs), "workers", config.WorkerCount)
	coll := collector.New(client, logger, config.WorkerCount)
	collected, err := coll.Collect(ctx, config.DatabaseIDs)
	if err != nil {
		logger.Error("collection failed", "error", err)
		os.Exit(1)
	}
	if len(collected) == 0 {
		fmt.Fprintln(os.Stderr, "No databases found or accessible.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Either the configured database ids are wrong, or the integration")
		fmt.Fprintln(os.Stderr, "has not been granted access. Leave --databases empty to audit every")
		fmt.Fprintln(os.Stderr, "database shared with the integration.")
		return nil
	}

	// Per-database metrics plus the pooled batch for the aggregates.
	var sections []report.DatabaseSection
	var allPages []models.Page
	for _, result := range collected {
		if result.Err != nil {
			continue
		}
		allPages = append(allPages, result.Pages...)
		sections = append(sections, report.DatabaseSection{
			Database:  result.Database,
			PageCount: len(result.Pages),
			Decay:     entropy.MultiThresholdDecay(result.Pages, config.DecayThresholds, now),
			Links:     entropy.LinkBreakage(result.Pages),
		})
	}

	logger.Info("computing metrics", "pages", len(allPages), "databases", len(sections))
	overallDecay := entropy.MultiThresholdDecay(allPages, config.DecayThresholds, now)
	decayRate := entropy.TimeDecay(allPages, config.ThresholdDays, now).Rate
	links := entropy.LinkBreakage(allPages)
	activity := entropy.Activity(allPages, now)
	completeness := entropy.Completeness(allPages)
	categorization := entropy.Categorization(allPages)

	logger.Info("sampling mention density", "sample_rate", config.SampleRate)
	mentions := entropy.MentionDensity(ctx, allPages, client, entropy.MentionOptions{
		SampleRate: config.SampleRate,
		Workers:    config.WorkerCount,
	})

	health := entropy.Score(entropy.ScoreInput{
		TimeDecayEntropy: decayRate,
		ActivityRate30d:  activity.Rate30d,
		AvgCompleteness:  completeness.AvgCompleteness,
		CoverageRate:     categorization.CoverageRate,
	})

	content := report.Generate(report.Params{
		GeneratedAt:      now,
		Databases:        sections,
		OverallDecay:     overallDecay,
		OverallDecayRate: decayRate,
		Links:            links,
		ThresholdDays:    config.ThresholdDays,
		WarningThreshold: config.WarningThreshold,
		Activity:         activity,
		Completeness:     completeness,
		Categorization:   categorization,
		Mentions:         mentions,
		Health:           health,
	})
	reportPath, err := report.Save(content, config.OutputDir, now)
	if err != nil {
		logger.Error("failed to save report", "error", err)
		os.Exit(1)
	}
	logger.Info("report saved", "path", reportPath)

	printSummary(summary{
		health:         health,
		decayRate:      decayRate,
		thresholdDays:  config.ThresholdDays,
		warnThreshold:  config.WarningThreshold,
		links:          links,
		activity:       activity,
		completeness:   completeness,
		categorization: categorization,
		mentions:       mentions,
		reportPath:     reportPath,
	})
	return nil
}

// loadConfig merges the YAML config (if any), environment fallbacks and CLI
// flag overrides into one validated Config.
func loadConfig(c *cli.Context) (*models.Config, error) {
	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("databases") {
		config.DatabaseIDs = common.ParseIDList(c.String("databases"))
	} else if len(config.DatabaseIDs) == 0 {
		if env := os.Getenv("DATABASE_IDS"); env != "" {
			config.DatabaseIDs = common.ParseIDList(env)
		}
	} else {
		for i, id := range config.DatabaseIDs {
			config.DatabaseIDs[i] = common.NormalizeID(id)
		}
	}

	if c.IsSet("threshold-days") {
		config.ThresholdDays = c.Int("threshold-days")
	}
	if c.IsSet("warning-threshold") {
		config.WarningThreshold = c.Float64("warning-threshold")
	}
	if c.IsSet("sample-rate") {
		config.SampleRate = c.Float64("sample-rate")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("max-age") {
		maxAge, err := time.ParseDuration(c.String("max-age"))
		if err != nil {
			return nil, fmt.Errorf("invalid max-age duration: %w", err)
		}
		config.CacheMaxAge = models.Duration(maxAge)
	}
	config.Token = c.String("token")

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// newClient builds the API client, attaching the response cache unless the
// run asked to bypass it.
func newClient(c *cli.Context, config *models.Config, logger *slog.Logger) (*notion.Client, error) {
	opts := []notion.ClientOption{notion.WithLogger(logger)}
	if !c.Bool("no-cache") && config.CacheMaxAge > 0 {
		responseCache, err := cache.Open(c.String("cache-path"), time.Duration(config.CacheMaxAge))
		if err != nil {
			logger.Warn("cache unavailable, continuing without it", "error", err)
		} else {
			opts = append(opts, notion.WithCache(responseCache))
		}
	}
	return notion.NewClient(config.Token, opts...)
}

type summary struct {
	health         entropy.HealthScore
	decayRate      float64
	thresholdDays  int
	warnThreshold  float64
	links          entropy.LinkResult
	activity       entropy.ActivityResult
	completeness   entropy.CompletenessResult
	categorization entropy.CategorizationResult
	mentions       entropy.MentionResult
	reportPath     string
}

func printSummary(s summary) {
	styles := ui.DefaultStyles()
	fmt.Println(styles.Title.Render("Notion entropy check"))

	line := func(label, value string) {
		fmt.Printf("%s %s\n", styles.Label.Render(label+":"), styles.Value.Render(value))
	}
	line("Health", fmt.Sprintf("%.1f (%s - %s)", s.health.Score, s.health.Grade, s.health.Status))
	line("Pages", fmt.Sprintf("%d", s.activity.TotalRecords))
	line(fmt.Sprintf("Decay >%dd", s.thresholdDays), fmt.Sprintf("%.2f%%", s.decayRate))
	line("Active 30d", fmt.Sprintf("%.2f%%", s.activity.Rate30d))
	line("Completeness", fmt.Sprintf("%.2f%%", s.completeness.AvgCompleteness))
	line("Categorized", fmt.Sprintf("%.2f%%", s.categorization.CoverageRate))
	line("Mention density", fmt.Sprintf("%.2f%% (%d sampled)", s.mentions.Density, s.mentions.SampledRecords))
	if s.links.HasRelations {
		line("Link breakage", fmt.Sprintf("%.2f%%", s.links.Rate))
	} else {
		fmt.Printf("%s %s\n", styles.Label.Render("Link breakage:"),
			styles.Muted.Render("not computable (no relation properties)"))
	}
	line("Report", s.reportPath)

	if s.decayRate > s.warnThreshold {
		fmt.Println(styles.Warn.Render(fmt.Sprintf(
			"Warning: %d-day decay (%.1f%%) exceeds the %.1f%% threshold", s.thresholdDays, s.decayRate, s.warnThreshold)))
	}
	if s.links.HasRelations && s.links.Rate > 30 {
		fmt.Println(styles.Warn.Render(fmt.Sprintf(
			"Warning: link breakage is high (%.1f%%)", s.links.Rate)))
	}
	if s.decayRate <= s.warnThreshold && (!s.links.HasRelations || s.links.Rate <= 30) {
		fmt.Println(styles.Good.Render("Workspace health is in good shape"))
	}
}

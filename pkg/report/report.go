// Package report renders the computed entropy metrics as a markdown document
// and saves it under a timestamped filename.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Complexivist-Ran/notion-entropy/models"
	"github.com/Complexivist-Ran/notion-entropy/pkg/entropy"
)

// Display caps for per-database exemplar tables.
const (
	staleDisplayCap    = 15
	isolatedDisplayCap = 20
)

// linkBreakageWarnRate is the fixed threshold above which the report flags a
// weakly connected workspace.
const linkBreakageWarnRate = 30.0

// DatabaseSection holds the per-database results rendered in the detail part
// of the report.
type DatabaseSection struct {
	Database  models.Database
	PageCount int
	Decay     entropy.MultiDecayResult
	Links     entropy.LinkResult
}

// Params carries everything the report needs. All metrics are precomputed;
// the renderer only formats.
type Params struct {
	GeneratedAt      time.Time
	Databases        []DatabaseSection
	OverallDecay     entropy.MultiDecayResult
	OverallDecayRate float64 // 30-day rate used for warnings
	Links            entropy.LinkResult
	ThresholdDays    int
	WarningThreshold float64
	Activity         entropy.ActivityResult
	Completeness     entropy.CompletenessResult
	Categorization   entropy.CategorizationResult
	Mentions         entropy.MentionResult
	Health           entropy.HealthScore
}

// Generate renders the full markdown report.
func Generate(p Params) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Notion Entropy Report\n\n")
	fmt.Fprintf(&sb, "**Generated**: %s\n\n---\n\n", p.GeneratedAt.Format("2006-01-02 15:04:05"))

	writeOverview(&sb, p)
	writeDecay(&sb, p)
	writeLinkBreakage(&sb, p.Links)
	writeActivity(&sb, p.Activity)
	writeCompleteness(&sb, p.Completeness)
	writeCategorization(&sb, p.Categorization)
	writeMentions(&sb, p.Mentions)

	sb.WriteString("---\n\n## Database Details\n\n")
	for _, section := range p.Databases {
		writeDatabaseSection(&sb, section)
	}

	writeRecommendations(&sb, p)
	fmt.Fprintf(&sb, "\n---\n\n*Report generated at %s*\n", p.GeneratedAt.Format("2006-01-02 15:04:05"))
	return sb.String()
}

func writeOverview(sb *strings.Builder, p Params) {
	sb.WriteString("## Workspace Health\n\n")
	sb.WriteString("| Metric | Value | Grade |\n|---|---|---|\n")
	fmt.Fprintf(sb, "| **Overall health** | **%.1f** | **%s - %s** |\n",
		p.Health.Score, p.Health.Grade, p.Health.Status)
	fmt.Fprintf(sb, "| Total pages | %d | - |\n", p.Activity.TotalRecords)
	fmt.Fprintf(sb, "| Databases | %d | - |\n\n", len(p.Databases))

	sb.WriteString("### Components\n\n")
	sb.WriteString("| Dimension | Score | Meaning |\n|---|---|---|\n")
	fmt.Fprintf(sb, "| Freshness | %.1f | 100 minus the 30-day decay rate |\n", p.Health.Freshness)
	fmt.Fprintf(sb, "| Activity | %.1f | based on the 30-day activity rate |\n", p.Health.Activity)
	fmt.Fprintf(sb, "| Completeness | %.1f | average property completeness |\n", p.Health.Completeness)
	fmt.Fprintf(sb, "| Organization | %.1f | categorization coverage |\n\n", p.Health.Organization)
	sb.WriteString("---\n\n")
}

func writeDecay(sb *strings.Builder, p Params) {
	sb.WriteString("## Time Decay\n\n")
	sb.WriteString("Share of pages not edited within each window:\n\n")
	sb.WriteString("| Window | Pages | Rate | Status |\n|---|---|---|---|\n")
	for _, threshold := range sortedThresholds(p.OverallDecay) {
		data := p.OverallDecay.Thresholds[threshold]
		fmt.Fprintf(sb, "| > %d days | %d | %.1f%% | %s |\n",
			threshold, data.Count, data.Rate, decayStatus(data.Rate))
	}
	sb.WriteString("\n")

	if p.OverallDecayRate > p.WarningThreshold {
		fmt.Fprintf(sb, "**Warning**: the %d-day decay rate (%.1f%%) exceeds the warning threshold (%.1f%%). Consider pruning stale content.\n\n",
			p.ThresholdDays, p.OverallDecayRate, p.WarningThreshold)
	} else {
		fmt.Fprintf(sb, "The %d-day decay rate (%.1f%%) is within the normal range.\n\n",
			p.ThresholdDays, p.OverallDecayRate)
	}
}

func writeLinkBreakage(sb *strings.Builder, links entropy.LinkResult) {
	sb.WriteString("## Link Breakage\n\n")
	if !links.HasRelations {
		sb.WriteString("- **Rate**: not computable\n")
		sb.WriteString("- No database uses a relation property, so inbound links cannot be counted. Inline @-mentions in page bodies are sampled separately and are not part of this metric.\n\n")
		return
	}
	fmt.Fprintf(sb, "- **Rate**: %.2f%%\n", links.Rate)
	fmt.Fprintf(sb, "- Share of pages with no inbound relation reference (%d relation entries scanned). This measures isolation inside the audited batch, not links to deleted pages.\n\n",
		links.TotalRelations)
	if links.Rate > linkBreakageWarnRate {
		sb.WriteString("**Warning**: the isolation rate is high; the knowledge network is weakly connected.\n\n")
	}
}

func writeActivity(sb *strings.Builder, activity entropy.ActivityResult) {
	sb.WriteString("## Activity\n\n")
	sb.WriteString("| Window | Active pages | Rate |\n|---|---|---|\n")
	fmt.Fprintf(sb, "| 7 days | %d | %.2f%% |\n", activity.Active7d, activity.Rate7d)
	fmt.Fprintf(sb, "| 30 days | %d | %.2f%% |\n", activity.Active30d, activity.Rate30d)
	fmt.Fprintf(sb, "| 90 days | %d | %.2f%% |\n\n", activity.Active90d, activity.Rate90d)
}

func writeCompleteness(sb *strings.Builder, completeness entropy.CompletenessResult) {
	sb.WriteString("## Property Completeness\n\n")
	fmt.Fprintf(sb, "- **Average completeness**: %.2f%%\n", completeness.AvgCompleteness)
	fmt.Fprintf(sb, "- Fully complete (>=80%%): %d\n", completeness.FullyComplete)
	fmt.Fprintf(sb, "- Partially complete (30-80%%): %d\n", completeness.PartiallyComplete)
	fmt.Fprintf(sb, "- Mostly empty (<30%%): %d\n\n", completeness.MostlyEmpty)
}

func writeCategorization(sb *strings.Builder, categorization entropy.CategorizationResult) {
	sb.WriteString("## Categorization Coverage\n\n")
	fmt.Fprintf(sb, "- Categorized pages: %d\n", categorization.Categorized)
	fmt.Fprintf(sb, "- Uncategorized pages: %d\n", categorization.Uncategorized)
	fmt.Fprintf(sb, "- **Coverage**: %.2f%%\n\n", categorization.CoverageRate)
	if len(categorization.UncategorizedRecords) > 0 {
		sb.WriteString("Uncategorized pages (first 20):\n\n")
		for _, ref := range categorization.UncategorizedRecords {
			fmt.Fprintf(sb, "- %s\n", ref.Title)
		}
		sb.WriteString("\n")
	}
}

func writeMentions(sb *strings.Builder, mentions entropy.MentionResult) {
	sb.WriteString("## Mention Density (sampled)\n\n")
	fmt.Fprintf(sb, "- Sampled pages: %d\n", mentions.SampledRecords)
	fmt.Fprintf(sb, "- Pages with mentions: %d\n", mentions.WithMentions)
	fmt.Fprintf(sb, "- Total mentions: %d\n", mentions.TotalMentions)
	fmt.Fprintf(sb, "- **Density**: %.2f%%\n", mentions.Density)
	fmt.Fprintf(sb, "- Mentions per sampled page: %.2f\n", mentions.AvgPerRecord)
	if mentions.FailedFetches > 0 {
		fmt.Fprintf(sb, "- Content fetches failed: %d (counted as zero mentions)\n", mentions.FailedFetches)
	}
	sb.WriteString("\n*Estimated from a bounded random sample of page bodies.*\n\n")
}

func writeDatabaseSection(sb *strings.Builder, section DatabaseSection) {
	fmt.Fprintf(sb, "### %s\n\n", section.Database.Title())
	fmt.Fprintf(sb, "- **Database ID**: `%s`\n", section.Database.ID)
	fmt.Fprintf(sb, "- **Pages**: %d\n", section.PageCount)
	if section.Links.HasRelations {
		fmt.Fprintf(sb, "- **Link breakage**: %.2f%%\n\n", section.Links.Rate)
	} else {
		sb.WriteString("- **Link breakage**: not computable\n\n")
	}

	thresholds := sortedThresholds(section.Decay)
	if len(thresholds) > 0 {
		sb.WriteString("| ")
		for _, t := range thresholds {
			fmt.Fprintf(sb, ">%dd | ", t)
		}
		sb.WriteString("\n|")
		sb.WriteString(strings.Repeat("---|", len(thresholds)))
		sb.WriteString("\n| ")
		for _, t := range thresholds {
			fmt.Fprintf(sb, "%.1f%% | ", section.Decay.Thresholds[t].Rate)
		}
		sb.WriteString("\n\n")
	}

	if len(thresholds) > 0 {
		oldest := thresholds[len(thresholds)-1]
		writeStaleList(sb, oldest, section.Decay.Thresholds[oldest])
	}
	writeIsolatedList(sb, section.Links)
	sb.WriteString("---\n\n")
}

func writeStaleList(sb *strings.Builder, threshold int, decay entropy.ThresholdDecay) {
	if len(decay.Records) == 0 {
		return
	}
	fmt.Fprintf(sb, "#### Long-stale pages (> %d days)\n\n", threshold)
	sb.WriteString("| Page | Last edited | Days old |\n|---|---|---|\n")
	records := decay.Records
	if len(records) > staleDisplayCap {
		records = records[:staleDisplayCap]
	}
	for _, record := range records {
		fmt.Fprintf(sb, "| %s | %s | %d |\n", record.Title, record.LastEdited, record.DaysOld)
	}
	if decay.Count > len(records) {
		fmt.Fprintf(sb, "\n*(showing %d of %d)*\n", len(records), decay.Count)
	}
	sb.WriteString("\n")
}

func writeIsolatedList(sb *strings.Builder, links entropy.LinkResult) {
	if len(links.Isolated) == 0 {
		return
	}
	sb.WriteString("#### Isolated pages (no inbound relations)\n\n")
	isolated := links.Isolated
	if len(isolated) > isolatedDisplayCap {
		isolated = isolated[:isolatedDisplayCap]
	}
	for _, record := range isolated {
		fmt.Fprintf(sb, "- %s\n", record.Title)
	}
	if len(links.Isolated) > len(isolated) {
		fmt.Fprintf(sb, "\n*(showing %d of %d)*\n", len(isolated), len(links.Isolated))
	}
	sb.WriteString("\n")
}

func writeRecommendations(sb *strings.Builder, p Params) {
	sb.WriteString("## Recommendations\n\n")
	clean := true
	if p.OverallDecayRate > p.WarningThreshold {
		clean = false
		fmt.Fprintf(sb, "- Prune or archive content not edited in over %d days.\n", p.ThresholdDays)
	}
	if !p.Links.HasRelations {
		fmt.Fprintf(sb, "- No relation properties are in use; add relation fields if you want link breakage tracked.\n")
	} else if p.Links.Rate > linkBreakageWarnRate {
		clean = false
		sb.WriteString("- Link isolated pages into the knowledge network; check whether important pages were left unconnected.\n")
	}
	if clean {
		sb.WriteString("- Content health looks good; keep it up.\n")
	}
}

// decayStatus maps a decay rate to the report's status word.
func decayStatus(rate float64) string {
	switch {
	case rate > 80:
		return "critical"
	case rate > 50:
		return "warning"
	case rate > 30:
		return "watch"
	default:
		return "ok"
	}
}

func sortedThresholds(decay entropy.MultiDecayResult) []int {
	thresholds := make([]int, 0, len(decay.Thresholds))
	for t := range decay.Thresholds {
		thresholds = append(thresholds, t)
	}
	sort.Ints(thresholds)
	return thresholds
}

// Save writes the report under outputDir with a timestamped name, creating
// the directory if needed, and returns the file path.
func Save(content string, outputDir string, now time.Time) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	path := filepath.Join(outputDir, fmt.Sprintf("entropy_report_%s.md", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

package entropy

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// Sampling bounds for the mention-density metric. The cap keeps the number of
// per-page content fetches bounded no matter how large the batch is.
const (
	mentionSampleMin = 1
	mentionSampleCap = 50
)

// BlockFetcher supplies the block-level content of a page. It is the only
// collaborator the metric layer talks to.
type BlockFetcher interface {
	FetchBlocks(ctx context.Context, pageID string) ([]models.Block, error)
}

// MentionOptions configures the mention-density sampler.
type MentionOptions struct {
	// SampleRate is the fraction of the batch to sample, in (0, 1].
	// Zero falls back to 0.1.
	SampleRate float64
	// Workers bounds the concurrent content fetches. Zero or negative
	// means sequential.
	Workers int
	// Rand drives the sample selection. Nil uses a time-seeded source.
	Rand *rand.Rand
}

// MentionResult reports embedded cross-reference density over a sample of the
// batch.
type MentionResult struct {
	SampledRecords int
	WithMentions   int
	TotalMentions  int
	Density        float64 // records with >=1 mention / sampled, percent
	AvgPerRecord   float64 // total mentions / sampled
	FailedFetches  int     // sampled records whose content fetch failed
}

// sampleOutcome is the per-record tally of one sampled fetch. A failed fetch
// is an outcome like any other: it contributes zero mentions and is counted,
// never propagated, so one bad page cannot abort the batch.
type sampleOutcome struct {
	mentions int
	failed   bool
}

// MentionDensity estimates how densely pages reference each other by fetching
// the body content of a bounded uniform sample and counting page/database
// mention spans. Fetches fan out across opts.Workers goroutines; the
// aggregation is commutative, so no ordering is imposed.
func MentionDensity(ctx context.Context, pages []models.Page, fetcher BlockFetcher, opts MentionOptions) MentionResult {
	if len(pages) == 0 {
		return MentionResult{}
	}

	rate := opts.SampleRate
	if rate <= 0 {
		rate = 0.1
	}
	sampleSize := int(float64(len(pages)) * rate)
	if sampleSize < mentionSampleMin {
		sampleSize = mentionSampleMin
	}
	if sampleSize > mentionSampleCap {
		sampleSize = mentionSampleCap
	}
	if sampleSize > len(pages) {
		sampleSize = len(pages)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sampled := samplePages(pages, sampleSize, rng)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > sampleSize {
		workers = sampleSize
	}

	jobs := make(chan models.Page, sampleSize)
	outcomes := make(chan sampleOutcome, sampleSize)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				outcomes <- fetchOutcome(ctx, fetcher, page.ID)
			}
		}()
	}
	for _, page := range sampled {
		jobs <- page
	}
	close(jobs)
	wg.Wait()
	close(outcomes)

	result := MentionResult{SampledRecords: sampleSize}
	for outcome := range outcomes {
		if outcome.failed {
			result.FailedFetches++
			continue
		}
		if outcome.mentions > 0 {
			result.WithMentions++
			result.TotalMentions += outcome.mentions
		}
	}
	result.Density = float64(result.WithMentions) / float64(sampleSize) * 100
	result.AvgPerRecord = float64(result.TotalMentions) / float64(sampleSize)
	return result
}

func fetchOutcome(ctx context.Context, fetcher BlockFetcher, pageID string) sampleOutcome {
	blocks, err := fetcher.FetchBlocks(ctx, pageID)
	if err != nil {
		return sampleOutcome{failed: true}
	}
	count := 0
	for _, block := range blocks {
		count += block.CountPageMentions()
	}
	return sampleOutcome{mentions: count}
}

// samplePages draws n pages uniformly without replacement via a partial
// Fisher-Yates shuffle over an index slice, leaving the input untouched.
func samplePages(pages []models.Page, n int, rng *rand.Rand) []models.Page {
	indexes := make([]int, len(pages))
	for i := range indexes {
		indexes[i] = i
	}
	sampled := make([]models.Page, 0, n)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		sampled = append(sampled, pages[indexes[i]])
	}
	return sampled
}

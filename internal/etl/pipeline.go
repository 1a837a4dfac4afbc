// Package etl orchestrates a full national gazetteer build: archive
// downloads, per-prefecture aggregation in JIS code order, the global
// postal-code backfill, and the final load into Postgres.
package etl

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pacport/japanese-addresses/internal/dict"
	"github.com/pacport/japanese-addresses/internal/gazetteer"
	"github.com/pacport/japanese-addresses/internal/source"
	"github.com/pacport/japanese-addresses/internal/store"
)

// Fetcher is the slice of the source client the pipeline consumes.
type Fetcher interface {
	FetchAll(ctx context.Context, prefCodes []string) error
	Kana(ctx context.Context) ([]source.KanaRow, error)
	Rome(ctx context.Context) ([]source.RomeRow, error)
	Oaza(ctx context.Context, prefCode string) ([]source.OazaRow, error)
	Gaiku(ctx context.Context, prefCode string) ([]source.GaikuRow, error)
}

// PointWriter receives each prefecture's raw block points as they are
// produced.
type PointWriter interface {
	WritePoints(points []gazetteer.GaikuPoint) error
}

// Pipeline wires the build stages together. Construct one per run.
type Pipeline struct {
	source  Fetcher
	store   store.Store
	points  PointWriter
	patches map[string][]gazetteer.AddressRecord
	prefs   []gazetteer.Prefecture
	log     zerolog.Logger
}

// NewPipeline assembles a build pipeline. patches may be nil when no
// override directory is configured; an empty prefs selects the whole
// country.
func NewPipeline(fetcher Fetcher, st store.Store, points PointWriter, patches map[string][]gazetteer.AddressRecord, prefs []gazetteer.Prefecture, log zerolog.Logger) *Pipeline {
	if len(prefs) == 0 {
		prefs = gazetteer.Prefectures
	}
	return &Pipeline{
		source:  fetcher,
		store:   st,
		points:  points,
		patches: patches,
		prefs:   prefs,
		log:     log,
	}
}

// Run executes the build. A prefecture whose source data is missing or
// malformed is logged and skipped; the rest of the country still builds.
// The run fails outright only when the dictionaries cannot be loaded, no
// prefecture produced records, or the database load fails.
func (p *Pipeline) Run(ctx context.Context) error {
	prefCodes := make([]string, 0, len(p.prefs))
	for _, pref := range p.prefs {
		prefCodes = append(prefCodes, pref.Code)
	}
	if err := p.source.FetchAll(ctx, prefCodes); err != nil {
		p.log.Warn().Err(err).Msg("prefetch incomplete, continuing with what is cached")
	}

	kanaRows, err := p.source.Kana(ctx)
	if err != nil {
		return fmt.Errorf("failed to load kana dictionary: %w", err)
	}
	romeRows, err := p.source.Rome(ctx)
	if err != nil {
		return fmt.Errorf("failed to load romaji dictionary: %w", err)
	}
	kana := dict.FromKana(kanaRows)
	rome := dict.FromRome(romeRows)
	p.log.Info().Int("kana", len(kana)).Int("rome", len(rome)).Msg("postal dictionaries loaded")

	var records []*gazetteer.AddressRecord
	built := 0
	for _, pref := range p.prefs {
		prefRecords, err := p.buildPrefecture(ctx, pref, kana, rome)
		if err != nil {
			p.log.Error().Err(err).Str("pref", pref.Code).Str("name", pref.Name).Msg("prefecture build failed, skipping")
			continue
		}
		records = append(records, prefRecords...)
		built++
	}
	if built == 0 {
		return fmt.Errorf("every prefecture failed, nothing to load")
	}

	gazetteer.Backfill(records, rome, p.log)

	if err := p.store.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to prepare schema: %w", err)
	}
	if err := p.store.ReplaceAddresses(ctx, records); err != nil {
		return fmt.Errorf("failed to load addresses: %w", err)
	}

	p.log.Info().Int("records", len(records)).Int("prefectures", built).Msg("national build complete")
	return nil
}

// buildPrefecture aggregates one prefecture: seed overrides, fold the
// district rows, sample and resolve the block rows, and export the raw
// block points. Returns the merged records in final output order.
func (p *Pipeline) buildPrefecture(ctx context.Context, pref gazetteer.Prefecture, kana, rome []dict.Entry) ([]*gazetteer.AddressRecord, error) {
	oazaRows, err := p.source.Oaza(ctx, pref.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load district rows: %w", err)
	}
	gaikuRows, err := p.source.Gaiku(ctx, pref.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to load block rows: %w", err)
	}

	agg := gazetteer.NewAggregation(pref.Code,
		dict.ByPrefecture(kana, pref.Name),
		dict.ByPrefecture(rome, pref.Name))
	agg.Seed(p.patches[pref.Code])

	for _, row := range oazaRows {
		agg.AddOaza(row)
	}

	for i, row := range gaikuRows {
		if err := agg.SampleGaiku(row); err != nil {
			return nil, fmt.Errorf("failed to sample block row %d: %w", i+1, err)
		}
		if (i+1)%100000 == 0 {
			p.log.Debug().Str("pref", pref.Code).Int("rows", i+1).Msg("sampling block rows")
		}
	}
	agg.FinishSampling()
	for i, row := range gaikuRows {
		if err := agg.ResolveGaiku(row); err != nil {
			return nil, fmt.Errorf("failed to resolve block row %d: %w", i+1, err)
		}
	}

	if err := p.points.WritePoints(agg.Points()); err != nil {
		return nil, fmt.Errorf("failed to export block points: %w", err)
	}

	records := agg.Records()
	p.log.Info().
		Str("pref", pref.Code).
		Str("name", pref.Name).
		Int("districts", len(oazaRows)).
		Int("blocks", len(gaikuRows)).
		Int("records", len(records)).
		Int("points", len(agg.Points())).
		Msg("prefecture aggregated")
	return records, nil
}

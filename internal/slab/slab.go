// Package slab runs the floor slab calculation from raw layer and geometry
// inputs through to the reinforcement table.
package slab

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alexiusacademia/goslab/internal/dimension"
	"github.com/alexiusacademia/goslab/internal/forces"
	"github.com/alexiusacademia/goslab/internal/loads"
	"github.com/alexiusacademia/goslab/internal/moment"
	"github.com/alexiusacademia/goslab/internal/reinforcement"
	"github.com/alexiusacademia/goslab/internal/span"
)

// Result holds every intermediate and final value of one run.
type Result struct {
	Params  Params  `json:"params"`
	Options Options `json:"options"`

	Loads         loads.LoadSet             `json:"loads"`
	Sections      dimension.Sections        `json:"sections"`
	Span          span.Geometry             `json:"span"`
	Forces        forces.Forces             `json:"forces"`
	Moments       []moment.Row              `json:"moments"`
	Section       reinforcement.Section     `json:"section"`
	Reinforcement []reinforcement.Row       `json:"reinforcement"`
	Bars          []reinforcement.BarOption `json:"bars,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Calculator wires the dimension store and provider into the pipeline.
type Calculator struct {
	Resolver *dimension.Resolver
	Options  Options
	Logger   *zap.Logger
}

// NewCalculator creates a calculator that resolves dimensions through store
// and provider.
func NewCalculator(store dimension.Store, provider dimension.Provider, opts Options, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := dimension.NewResolver(store, provider)
	r.Logger = logger.Named("dimension")
	return &Calculator{Resolver: r, Options: opts, Logger: logger}
}

// Run executes every stage in order. When the section turns out to be too
// small for one of the moments, the partial result is returned together with
// the *reinforcement.SectionUndersizedError.
func (c *Calculator) Run(ctx context.Context, p Params) (*Result, error) {
	log := c.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Params: p, Options: c.Options}
	var err error

	res.Loads, err = loads.Calculate(p.Loads, c.Options.Combination, c.Options.Convention)
	if err != nil {
		return nil, fmt.Errorf("loads: %w", err)
	}
	log.Debug("loads",
		zap.Float64("q_g", res.Loads.Permanent),
		zap.Float64("q_q", res.Loads.Live),
		zap.Float64("q_total", res.Loads.Total),
		zap.String("combination", res.Loads.Combination))

	res.Sections, err = c.Resolver.Resolve(ctx, p.HalfSpan, p.CrossSpan)
	if err != nil {
		return nil, fmt.Errorf("dimensions: %w", err)
	}
	if res.Sections.Cached {
		res.Warnings = append(res.Warnings, staleWarnings(res.Sections, p)...)
	}

	res.Span, err = span.Calculate(span.Input{
		ClearSpan:    p.ClearSpan,
		Height:       float64(res.Sections.BeamDepth),
		SupportWidth: p.SupportWidth,
		BeamWidth:    p.BeamWidth,
	})
	if err != nil {
		return nil, fmt.Errorf("span: %w", err)
	}
	if res.Span.Warning != "" {
		res.Warnings = append(res.Warnings, res.Span.Warning)
	}
	log.Debug("span", zap.Float64("l0", res.Span.Edge), zap.Float64("l_middle", res.Span.Middle))

	middle := res.Span.Middle
	if middle < 0 {
		middle = 0
	}
	res.Forces, err = forces.Calculate(res.Loads.Total, res.Span.Edge, middle)
	if err != nil {
		return nil, fmt.Errorf("forces: %w", err)
	}

	res.Moments, err = moment.Table(res.Loads.Total, res.Span.Edge, c.Options.Precision.MomentDecimals)
	if err != nil {
		return nil, fmt.Errorf("moments: %w", err)
	}

	for _, w := range res.Warnings {
		log.Warn(w)
	}

	res.Section = reinforcement.NewSection(p.StripWidth, p.DesignHeight(), p.Cover, p.Fc, p.Fy)
	design := make([]reinforcement.Moment, len(res.Moments))
	for i, row := range res.Moments {
		design[i] = reinforcement.Moment{Label: row.Label, Value: row.Moment}
	}
	res.Reinforcement, err = res.Section.Design(design, reinforcement.Rounding{
		MomentDecimals: c.Options.Precision.MomentDecimals,
		FactorDigits:   c.Options.Precision.FactorDigits,
		AreaDecimals:   c.Options.Precision.AreaDecimals,
	})
	if err != nil {
		log.Warn("reinforcement stopped", zap.Error(err))
		return res, fmt.Errorf("reinforcement: %w", err)
	}
	res.Bars = reinforcement.SuggestBars(maxArea(res.Reinforcement), p.StripWidth)

	return res, nil
}

// staleWarnings flags stored dimensions that no longer fall inside the ranges
// derived from the current spans. The stored values are still used.
func staleWarnings(s dimension.Sections, p Params) []string {
	var out []string
	check := func(key string, v int, r dimension.Range) {
		if !r.Contains(float64(v)) {
			out = append(out, fmt.Sprintf("stored %s=%d mm is outside %s for the current spans", key, v, r))
		}
	}
	check(dimension.KeySlabThickness, s.SlabThickness, dimension.SlabThicknessRange(p.HalfSpan))
	check(dimension.KeyBeamDepth, s.BeamDepth, dimension.BeamDepthRange(p.CrossSpan))
	check(dimension.KeyBeamWidth, s.BeamWidth, dimension.BeamWidthRange(float64(s.BeamDepth)))
	return out
}

func maxArea(rows []reinforcement.Row) float64 {
	var m float64
	for _, r := range rows {
		if r.As > m {
			m = r.As
		}
	}
	return m
}

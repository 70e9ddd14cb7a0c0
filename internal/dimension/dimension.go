// Package dimension resolves slab and cross-beam section sizes, either from
// a persisted store or from span ratios and a chosen value inside each range.
package dimension

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/alexiusacademia/goslab/internal/gb"
	"github.com/alexiusacademia/goslab/internal/units"
)

// Keys under which the chosen dimensions are persisted, in prompt order.
const (
	KeySlabThickness = "h_single"
	KeyBeamDepth     = "h_cross"
	KeyBeamWidth     = "b_cross"
)

// Keys lists the persisted keys in resolution order.
var Keys = []string{KeySlabThickness, KeyBeamDepth, KeyBeamWidth}

// Store is a persistent string key-value store.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Deleter is implemented by stores that can forget a key.
type Deleter interface {
	Delete(key string) error
}

// Sections are the resolved cross-section dimensions in mm.
type Sections struct {
	SlabThickness int  `json:"h_single"`
	BeamDepth     int  `json:"h_cross"`
	BeamWidth     int  `json:"b_cross"`
	Cached        bool `json:"cached"`
}

// ConfigFormatError reports a persisted value that is not an integer.
type ConfigFormatError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigFormatError) Error() string {
	return fmt.Sprintf("stored value for %s is not an integer: %q", e.Key, e.Value)
}

func (e *ConfigFormatError) Unwrap() error { return e.Err }

// Range is a closed interval of acceptable values in mm.
type Range struct {
	Min float64
	Max float64
}

// Midpoint returns the centre of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", r.Min, r.Max)
}

// SlabThicknessRange is l1/40 .. l1/30.
func SlabThicknessRange(l1 float64) Range {
	return Range{Min: l1 * gb.SlabRatioMin, Max: l1 * gb.SlabRatioMax}
}

// BeamDepthRange is l3/14 .. l3/8.
func BeamDepthRange(l3 float64) Range {
	return Range{Min: l3 * gb.BeamDepthRatioMin, Max: l3 * gb.BeamDepthRatioMax}
}

// BeamWidthRange is h/3.5 .. h/1.5.
func BeamWidthRange(h float64) Range {
	return Range{Min: h * gb.BeamWidthRatioMin, Max: h * gb.BeamWidthRatioMax}
}

// Request describes one value the Provider must choose.
type Request struct {
	Key   string
	Label string
	Range Range
}

// Provider chooses a dimension inside the suggested range.
type Provider interface {
	Choose(ctx context.Context, req Request) (int, error)
}

// Resolver reads cached dimensions or derives new ones and persists them.
type Resolver struct {
	Store    Store
	Provider Provider
	Logger   *zap.Logger
}

// NewResolver creates a resolver with a no-op logger.
func NewResolver(store Store, provider Provider) *Resolver {
	return &Resolver{Store: store, Provider: provider, Logger: zap.NewNop()}
}

// Resolve returns the section dimensions for half-span l1 and cross span l3.
//
// When all three keys are already stored they are returned unchanged, even if
// l1 and l3 differ from the spans they were chosen for.
func (r *Resolver) Resolve(ctx context.Context, l1, l3 float64) (Sections, error) {
	if err := units.NonNegative(
		units.Field{Name: "l1", Value: l1},
		units.Field{Name: "l3", Value: l3},
	); err != nil {
		return Sections{}, err
	}
	log := r.logger()

	cached, ok, err := r.cached()
	if err != nil {
		return Sections{}, err
	}
	if ok {
		log.Debug("section dimensions taken from store",
			zap.Int(KeySlabThickness, cached.SlabThickness),
			zap.Int(KeyBeamDepth, cached.BeamDepth),
			zap.Int(KeyBeamWidth, cached.BeamWidth),
			zap.Float64("l1", l1), zap.Float64("l3", l3))
		return cached, nil
	}

	if r.Provider == nil {
		return Sections{}, fmt.Errorf("section dimensions not stored and no provider configured")
	}

	var s Sections
	s.SlabThickness, err = r.Provider.Choose(ctx, Request{
		Key: KeySlabThickness, Label: "one-way slab thickness", Range: SlabThicknessRange(l1),
	})
	if err != nil {
		return Sections{}, fmt.Errorf("choose %s: %w", KeySlabThickness, err)
	}
	s.BeamDepth, err = r.Provider.Choose(ctx, Request{
		Key: KeyBeamDepth, Label: "cross beam depth", Range: BeamDepthRange(l3),
	})
	if err != nil {
		return Sections{}, fmt.Errorf("choose %s: %w", KeyBeamDepth, err)
	}
	s.BeamWidth, err = r.Provider.Choose(ctx, Request{
		Key: KeyBeamWidth, Label: "cross beam width", Range: BeamWidthRange(float64(s.BeamDepth)),
	})
	if err != nil {
		return Sections{}, fmt.Errorf("choose %s: %w", KeyBeamWidth, err)
	}

	values := map[string]int{
		KeySlabThickness: s.SlabThickness,
		KeyBeamDepth:     s.BeamDepth,
		KeyBeamWidth:     s.BeamWidth,
	}
	for _, k := range Keys {
		if err := r.Store.Set(k, strconv.Itoa(values[k])); err != nil {
			return Sections{}, fmt.Errorf("persist %s: %w", k, err)
		}
	}
	log.Info("section dimensions chosen and stored",
		zap.Int(KeySlabThickness, s.SlabThickness),
		zap.Int(KeyBeamDepth, s.BeamDepth),
		zap.Int(KeyBeamWidth, s.BeamWidth))
	return s, nil
}

func (r *Resolver) cached() (Sections, bool, error) {
	vals := make([]int, 0, len(Keys))
	for _, k := range Keys {
		raw, ok, err := r.Store.Get(k)
		if err != nil {
			return Sections{}, false, fmt.Errorf("read %s: %w", k, err)
		}
		if !ok {
			return Sections{}, false, nil
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return Sections{}, false, &ConfigFormatError{Key: k, Value: raw, Err: err}
		}
		vals = append(vals, v)
	}
	return Sections{SlabThickness: vals[0], BeamDepth: vals[1], BeamWidth: vals[2], Cached: true}, true, nil
}

func (r *Resolver) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

// Clear removes the stored dimensions so the next Resolve derives them again.
func Clear(store Store) error {
	d, ok := store.(Deleter)
	if !ok {
		return fmt.Errorf("store %T cannot delete keys", store)
	}
	for _, k := range Keys {
		if err := d.Delete(k); err != nil {
			return fmt.Errorf("delete %s: %w", k, err)
		}
	}
	return nil
}

// Save writes explicit dimensions to the store.
func Save(store Store, s Sections) error {
	for k, v := range map[string]int{
		KeySlabThickness: s.SlabThickness,
		KeyBeamDepth:     s.BeamDepth,
		KeyBeamWidth:     s.BeamWidth,
	} {
		if v <= 0 {
			return &units.InputError{Field: k, Value: float64(v), Want: "positive"}
		}
		if err := store.Set(k, strconv.Itoa(v)); err != nil {
			return fmt.Errorf("persist %s: %w", k, err)
		}
	}
	return nil
}

func roundMM(v float64) int {
	return int(math.Round(v))
}

package dimension

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/goslab/internal/store"
)

// recorder counts how often the resolver asks for a value.
type recorder struct {
	Provider
	asked []Request
}

func (r *recorder) Choose(ctx context.Context, req Request) (int, error) {
	r.asked = append(r.asked, req)
	return r.Provider.Choose(ctx, req)
}

func TestRanges(t *testing.T) {
	r := SlabThicknessRange(2700)
	assert.InDelta(t, 67.5, r.Min, 1e-9)
	assert.InDelta(t, 90, r.Max, 1e-9)

	r = BeamDepthRange(6900)
	assert.InDelta(t, 6900.0/14, r.Min, 1e-9)
	assert.InDelta(t, 862.5, r.Max, 1e-9)

	r = BeamWidthRange(700)
	assert.InDelta(t, 200, r.Min, 1e-9)
	assert.InDelta(t, 700/1.5, r.Max, 1e-9)
	assert.True(t, r.Contains(300))
	assert.False(t, r.Contains(150))
}

func TestResolve_MissDerivesAndPersists(t *testing.T) {
	kv := store.NewMemory()
	rec := &recorder{Provider: Midpoint{}}
	r := NewResolver(kv, rec)

	s, err := r.Resolve(context.Background(), 2700, 6900)
	require.NoError(t, err)

	assert.Equal(t, 79, s.SlabThickness) // (67.5+90)/2 = 78.75
	assert.Equal(t, 678, s.BeamDepth)    // (492.86+862.5)/2 = 677.68
	assert.Equal(t, 323, s.BeamWidth)    // (678/3.5+678/1.5)/2 = 322.86
	assert.False(t, s.Cached)

	require.Len(t, rec.asked, 3)
	assert.Equal(t, []string{KeySlabThickness, KeyBeamDepth, KeyBeamWidth},
		[]string{rec.asked[0].Key, rec.asked[1].Key, rec.asked[2].Key})

	for k, want := range map[string]string{"h_single": "79", "h_cross": "678", "b_cross": "323"} {
		v, ok, _ := kv.Get(k)
		assert.True(t, ok, k)
		assert.Equal(t, want, v, k)
	}
}

func TestResolve_BeamWidthRangeUsesChosenDepth(t *testing.T) {
	rec := &recorder{Provider: Fixed{Values: map[string]int{
		KeySlabThickness: 80, KeyBeamDepth: 700, KeyBeamWidth: 250,
	}}}
	r := NewResolver(store.NewMemory(), rec)

	_, err := r.Resolve(context.Background(), 2700, 6900)
	require.NoError(t, err)
	assert.InDelta(t, 200, rec.asked[2].Range.Min, 1e-9)
}

// A warm store wins even when the spans change.
func TestResolve_CacheHitIgnoresSpans(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("h_single", "100"))
	require.NoError(t, kv.Set("h_cross", "600"))
	require.NoError(t, kv.Set("b_cross", "250"))

	rec := &recorder{Provider: Midpoint{}}
	r := NewResolver(kv, rec)

	first, err := r.Resolve(context.Background(), 2700, 6900)
	require.NoError(t, err)
	second, err := r.Resolve(context.Background(), 4000, 12000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, Sections{SlabThickness: 100, BeamDepth: 600, BeamWidth: 250, Cached: true}, first)
	assert.Empty(t, rec.asked)
}

func TestResolve_SecondRunHitsCache(t *testing.T) {
	kv := store.NewMemory()
	rec := &recorder{Provider: Midpoint{}}
	r := NewResolver(kv, rec)

	_, err := r.Resolve(context.Background(), 2700, 6900)
	require.NoError(t, err)
	s, err := r.Resolve(context.Background(), 3000, 9000)
	require.NoError(t, err)

	assert.True(t, s.Cached)
	assert.Equal(t, 79, s.SlabThickness)
	assert.Len(t, rec.asked, 3)
}

func TestResolve_PartialCacheRecomputes(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("h_single", "100"))

	r := NewResolver(kv, Midpoint{})
	s, err := r.Resolve(context.Background(), 2700, 6900)
	require.NoError(t, err)
	assert.Equal(t, 79, s.SlabThickness)
	assert.False(t, s.Cached)
}

func TestResolve_MalformedValue(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, kv.Set("h_single", "100"))
	require.NoError(t, kv.Set("h_cross", "6o0"))
	require.NoError(t, kv.Set("b_cross", "250"))

	_, err := NewResolver(kv, Midpoint{}).Resolve(context.Background(), 2700, 6900)

	var cfe *ConfigFormatError
	require.True(t, errors.As(err, &cfe))
	assert.Equal(t, "h_cross", cfe.Key)
	assert.Equal(t, "6o0", cfe.Value)
}

type failingStore struct{}

func (failingStore) Set(string, string) error { return errors.New("disk full") }
func (failingStore) Get(string) (string, bool, error) {
	return "", false, nil
}

func TestResolve_PersistFailureSurfaces(t *testing.T) {
	_, err := NewResolver(failingStore{}, Midpoint{}).Resolve(context.Background(), 2700, 6900)
	assert.ErrorContains(t, err, "disk full")
}

func TestResolve_NegativeSpan(t *testing.T) {
	_, err := NewResolver(store.NewMemory(), Midpoint{}).Resolve(context.Background(), -1, 6900)
	assert.Error(t, err)
}

func TestResolve_NoProvider(t *testing.T) {
	_, err := NewResolver(store.NewMemory(), nil).Resolve(context.Background(), 2700, 6900)
	assert.ErrorContains(t, err, "no provider")
}

func TestFixed_MissingValue(t *testing.T) {
	_, err := Fixed{}.Choose(context.Background(), Request{Key: KeyBeamDepth})
	assert.Error(t, err)

	v, err := Fixed{Fallback: true}.Choose(context.Background(), Request{Key: KeyBeamDepth, Range: Range{Min: 10, Max: 20}})
	require.NoError(t, err)
	assert.Equal(t, 15, v)
}

func TestPrompt(t *testing.T) {
	in := strings.NewReader("abc\n500\n85\n\n300\n")
	var out bytes.Buffer
	p := NewPrompt(in, &out)
	ctx := context.Background()

	// "abc" rejected, 500 out of range, 85 accepted.
	v, err := p.Choose(ctx, Request{Key: KeySlabThickness, Label: "slab", Range: SlabThicknessRange(2700)})
	require.NoError(t, err)
	assert.Equal(t, 85, v)
	assert.Contains(t, out.String(), "not a number")
	assert.Contains(t, out.String(), "outside")

	// Empty line accepts the midpoint.
	v, err = p.Choose(ctx, Request{Key: KeyBeamDepth, Label: "depth", Range: Range{Min: 600, Max: 700}})
	require.NoError(t, err)
	assert.Equal(t, 650, v)

	v, err = p.Choose(ctx, Request{Key: KeyBeamWidth, Label: "width", Range: Range{Min: 200, Max: 400}})
	require.NoError(t, err)
	assert.Equal(t, 300, v)

	_, err = p.Choose(ctx, Request{Key: KeyBeamWidth, Label: "width", Range: Range{Min: 200, Max: 400}})
	assert.Error(t, err)
}

func TestClearAndSave(t *testing.T) {
	kv := store.NewMemory()
	require.NoError(t, Save(kv, Sections{SlabThickness: 90, BeamDepth: 650, BeamWidth: 250}))

	s, err := NewResolver(kv, nil).Resolve(context.Background(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 650, s.BeamDepth)

	require.NoError(t, Clear(kv))
	keys, _ := kv.Keys()
	assert.Empty(t, keys)

	assert.Error(t, Save(kv, Sections{SlabThickness: 0, BeamDepth: 650, BeamWidth: 250}))
}

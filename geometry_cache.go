package segdisplay

import (
	"log/slog"

	"github.com/xTibor/segdisplay/internal/cache"
)

// DefaultGeometryCacheSize is the soft limit of the shared geometry cache.
const DefaultGeometryCacheSize = 64

// geometryKey identifies one Geometry call.
type geometryKey struct {
	kind                                      Kind
	width, height, thickness, spacing, median float64
}

// GeometryCache memoises Kind.Geometry results. Geometry is a pure function
// of its inputs, so cached and uncached rendering are identical.
//
// GeometryCache is safe for concurrent use. Returned polygons are shared
// between callers and must not be modified.
type GeometryCache struct {
	c *cache.Cache[geometryKey, [][]Point]
}

// NewGeometryCache creates a cache holding roughly size entries.
// A size of 0 means unlimited.
func NewGeometryCache(size int) *GeometryCache {
	return &GeometryCache{c: cache.New[geometryKey, [][]Point](size)}
}

// sharedGeometry is used by displays that do not configure their own cache.
var sharedGeometry = NewGeometryCache(DefaultGeometryCacheSize)

// Geometry returns the polygons for the given kind and dimensions, computing
// them on first use.
func (g *GeometryCache) Geometry(k Kind, digitWidth, digitHeight, segmentThickness, segmentSpacing, digitMedian float64) [][]Point {
	key := geometryKey{
		kind:      k,
		width:     digitWidth,
		height:    digitHeight,
		thickness: segmentThickness,
		spacing:   segmentSpacing,
		median:    digitMedian,
	}
	return g.c.GetOrCreate(key, func() [][]Point {
		Logger().Debug("segdisplay: geometry cache miss",
			slog.String("kind", k.String()),
			slog.Float64("width", digitWidth),
			slog.Float64("height", digitHeight))
		return k.Geometry(digitWidth, digitHeight, segmentThickness, segmentSpacing, digitMedian)
	})
}

// Len returns the number of cached geometries.
func (g *GeometryCache) Len() int {
	return g.c.Len()
}

// CacheStats reports geometry cache occupancy and hit rate.
type CacheStats = cache.Stats

// Stats returns hit and miss statistics.
func (g *GeometryCache) Stats() CacheStats {
	return g.c.Stats()
}

// Clear drops all cached geometries.
func (g *GeometryCache) Clear() {
	g.c.Clear()
}

// geometryFor resolves geometry through g, or directly when g is nil.
func (g *GeometryCache) geometryFor(k Kind, r ResolvedMetrics) [][]Point {
	if g == nil {
		return k.Geometry(r.DigitWidth, r.DigitHeight, r.SegmentThickness, r.SegmentSpacing, r.DigitMedian)
	}
	return g.Geometry(k, r.DigitWidth, r.DigitHeight, r.SegmentThickness, r.SegmentSpacing, r.DigitMedian)
}

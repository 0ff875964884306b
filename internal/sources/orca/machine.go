package orca

import (
	"math"
	"strconv"
	"strings"

	"github.com/printdex/printdex/pkg/catalog"
)

// Geometry keys whose presence marks a JSON file as a printer
// definition rather than an unrelated profile.
var geometryKeys = []string{"printable_area", "printable_height"}

func hasGeometry(data map[string]any) bool {
	for _, key := range geometryKeys {
		if _, ok := data[key]; ok {
			return true
		}
	}
	return false
}

// resolveVolume computes the build volume from a machine profile.
//
// Footprint: the printable_area polygon takes priority. Its "XxY"
// coordinate strings are parsed into points and the bounding-box span
// (max minus min per axis) is taken, which handles non-rectangular and
// offset bed origins. If that yields no width, the bed_width/bed_depth
// scalars are the fallback. Height is resolved independently from
// printable_height, then machine_max_print_height, defaulting to zero;
// a missing height never rejects a record, only a missing footprint
// width does (checked by the caller against the threshold).
func resolveVolume(data map[string]any) catalog.Volume {
	var volume catalog.Volume

	if points := stringListField(data, "printable_area"); len(points) >= 4 {
		volume.X, volume.Y = polygonSpan(points)
	}

	if volume.X == 0 {
		volume.X = floatField(data, "bed_width")
		volume.Y = floatField(data, "bed_depth")
	}

	if _, ok := data["printable_height"]; ok {
		volume.Z = floatField(data, "printable_height")
	} else {
		volume.Z = floatField(data, "machine_max_print_height")
	}

	return volume
}

// polygonSpan parses "XxY" coordinate strings and returns the bounding
// box span per axis, rounded to 2 decimals. Unparseable points are
// ignored; no parseable points yields zero spans.
func polygonSpan(points []string) (x, y float64) {
	var (
		xs, ys []float64
	)
	for _, point := range points {
		parts := strings.SplitN(point, "x", 2)
		if len(parts) != 2 {
			continue
		}
		px, errX := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		py, errY := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errX != nil || errY != nil {
			continue
		}
		xs = append(xs, px)
		ys = append(ys, py)
	}
	if len(xs) == 0 {
		return 0, 0
	}

	minX, maxX := xs[0], xs[0]
	for _, v := range xs[1:] {
		minX = math.Min(minX, v)
		maxX = math.Max(maxX, v)
	}
	minY, maxY := ys[0], ys[0]
	for _, v := range ys[1:] {
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}
	return round2(maxX - minX), round2(maxY - minY)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// stringField returns a string-typed field, or "".
func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

// stringListField returns a field holding a list of strings. Profiles
// sometimes carry a lone string where a list is expected; that becomes
// a one-element list.
func stringListField(data map[string]any, key string) []string {
	switch v := data[key].(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{v}
	default:
		return nil
	}
}

// floatField returns a numeric field that may arrive as a JSON number,
// a numeric string, or a one-element list of either. Anything else is
// zero.
func floatField(data map[string]any, key string) float64 {
	return flexFloat(data[key])
}

func flexFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0
		}
		return f
	case []any:
		if len(t) > 0 {
			return flexFloat(t[0])
		}
	}
	return 0
}

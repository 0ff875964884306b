package uvtools

import (
	"regexp"
	"strconv"
)

// Tuple is one raw machine definition lifted from the upstream source
// text, before any filtering or normalization.
type Tuple struct {
	Brand  string
	Model  string
	ResX   int
	ResY   int
	Width  float64 // display width, build footprint X in mm
	Height float64 // display height, build footprint Y in mm
	Z      float64 // maximum build height in mm
}

// Parser turns upstream source text into raw machine tuples. The
// matching strategy is deliberately kept behind this interface so it
// can be swapped when the upstream format drifts, without touching
// filtering or normalization.
type Parser interface {
	Parse(text string) []Tuple
}

// machineRe matches constructor-style machine definitions of the form
//
//	new(PrinterBrand.Anycubic, "Photon M3", 4096, 2560, 163.84f, 102.40f, 180f, ...)
//
// Only the first seven captures matter; the pattern is intentionally
// permissive about trailing arguments so upstream additions keep
// matching.
var machineRe = regexp.MustCompile(
	`new\s*\(\s*PrinterBrand\.(\w+)\s*,\s*"([^"]+)"\s*,\s*(\d+)\s*,\s*(\d+)\s*,\s*([\d.]+)f?\s*,\s*([\d.]+)f?\s*,\s*([\d.]+)f?`)

// RegexParser extracts tuples by structural pattern matching.
type RegexParser struct{}

// Parse implements Parser. Captures that fail numeric conversion drop
// that single match.
func (RegexParser) Parse(text string) []Tuple {
	matches := machineRe.FindAllStringSubmatch(text, -1)

	tuples := make([]Tuple, 0, len(matches))
	for _, m := range matches {
		resX, errX := strconv.Atoi(m[3])
		resY, errY := strconv.Atoi(m[4])
		width, errW := strconv.ParseFloat(m[5], 64)
		height, errH := strconv.ParseFloat(m[6], 64)
		z, errZ := strconv.ParseFloat(m[7], 64)
		if errX != nil || errY != nil || errW != nil || errH != nil || errZ != nil {
			continue
		}
		tuples = append(tuples, Tuple{
			Brand:  m[1],
			Model:  m[2],
			ResX:   resX,
			ResY:   resY,
			Width:  width,
			Height: height,
			Z:      z,
		})
	}
	return tuples
}

// Package params maps the named generation choices to the numeric modifiers the terrain
// generator consumes.
package params

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownChoice is returned when a named choice is not in its table.
var ErrUnknownChoice = errors.New("unknown choice")

// Size is the overall map size.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeHuge   Size = "huge"
)

// Style shapes how landmasses are laid down.
type Style string

const (
	StyleIslands   Style = "islands"
	StyleRealistic Style = "realistic"
	StyleChunky    Style = "chunky"
)

// Topography controls hills and mountains.
type Topography string

const (
	TopographyFlat    Topography = "flat"
	TopographyLow     Topography = "low"
	TopographyMedium  Topography = "medium"
	TopographyExtreme Topography = "extreme"
)

// Vegetation controls forests and swamps.
type Vegetation string

const (
	VegetationBarren    Vegetation = "barren"
	VegetationRealistic Vegetation = "realistic"
	VegetationOvergrown Vegetation = "overgrown"
)

// Rivers controls how many rivers are attempted.
type Rivers string

const (
	RiversNone        Rivers = "none"
	RiversFew         Rivers = "few"
	RiversMedium      Rivers = "medium"
	RiversOverflowing Rivers = "overflowing"
)

// SizeTable holds the grid dimensions and base amounts for a map size.
type SizeTable struct {
	Width, Height, Border int
	Generations           float64 // prefab stamps laid between each pair of landmass centres
	Landmasses            float64 // landmass instances
	HillModifier          float64 // valleys carved out of the hills
	MountainModifier      float64
	VegetationModifier    float64
	RiverModifier         float64 // listed per size but not applied; river attempts follow the rivers choice alone
}

// StyleTable holds the landmass shaping modifiers for a style.
type StyleTable struct {
	GenerationModifier float64
	LandmassModifier   float64
	HillModifier       float64
}

// TopographyTable holds the relief modifiers for a topography.
type TopographyTable struct {
	HillModifier     float64
	MountainModifier float64
}

// VegetationTable holds the vegetation seeding and spread parameters.
type VegetationTable struct {
	VegetationNumber float64 `json:"vegetation_number"` // forest seeds; swamps use 0.4 of this
	ExpansionNumber  float64 `json:"expansion_number"`  // spread rounds
	HillChance       float64 `json:"hill_chance"`
	PlainsChance     float64 `json:"plains_chance"`
}

// RiversTable holds the river amount for a rivers choice.
type RiversTable struct {
	RiverAmount float64
}

// LookupSize returns the table for a size.
func LookupSize(s Size) (SizeTable, error) {
	switch s {
	case SizeHuge:
		return SizeTable{
			Width: 78, Height: 178, Border: 7,
			Generations: 125, Landmasses: 100,
			HillModifier: 650, MountainModifier: 25,
			VegetationModifier: 5, RiverModifier: 10,
		}, nil
	case SizeLarge:
		return SizeTable{
			Width: 29, Height: 67, Border: 5,
			Generations: 75, Landmasses: 25,
			HillModifier: 40, MountainModifier: 8,
			VegetationModifier: 2.25, RiverModifier: 4,
		}, nil
	case SizeMedium:
		return SizeTable{
			Width: 14, Height: 33, Border: 4,
			Generations: 10, Landmasses: 10,
			HillModifier: 4, MountainModifier: 2,
			VegetationModifier: 1.25, RiverModifier: 1,
		}, nil
	case SizeSmall:
		return SizeTable{
			Width: 9, Height: 21, Border: 3,
			Generations: 10, Landmasses: 5,
			HillModifier: 1, MountainModifier: 0.1,
			VegetationModifier: 0.5, RiverModifier: 0.5,
		}, nil
	}
	return SizeTable{}, unknown("size", string(s))
}

// LookupStyle returns the table for a style.
func LookupStyle(s Style) (StyleTable, error) {
	switch s {
	case StyleIslands:
		return StyleTable{GenerationModifier: 0.05, LandmassModifier: 1.1, HillModifier: 0.05}, nil
	case StyleRealistic:
		return StyleTable{GenerationModifier: 1, LandmassModifier: 1.25, HillModifier: 1}, nil
	case StyleChunky:
		return StyleTable{GenerationModifier: 3, LandmassModifier: 5, HillModifier: 4}, nil
	}
	return StyleTable{}, unknown("style", string(s))
}

// LookupTopography returns the table for a topography. Flat maps skip the relief stages
// entirely, so its modifiers are never read.
func LookupTopography(t Topography) (TopographyTable, error) {
	switch t {
	case TopographyFlat:
		return TopographyTable{HillModifier: 0, MountainModifier: 0}, nil
	case TopographyLow:
		return TopographyTable{HillModifier: 0.4, MountainModifier: 0}, nil
	case TopographyMedium:
		return TopographyTable{HillModifier: 0.15, MountainModifier: 2}, nil
	case TopographyExtreme:
		return TopographyTable{HillModifier: 0.05, MountainModifier: 50}, nil
	}
	return TopographyTable{}, unknown("topography", string(t))
}

// LookupVegetation returns the table for a vegetation choice.
func LookupVegetation(v Vegetation) (VegetationTable, error) {
	switch v {
	case VegetationBarren:
		return VegetationTable{}, nil
	case VegetationRealistic:
		return VegetationTable{VegetationNumber: 3, ExpansionNumber: 3, HillChance: 0.025, PlainsChance: 0.1}, nil
	case VegetationOvergrown:
		return VegetationTable{VegetationNumber: 5, ExpansionNumber: 5, HillChance: 0.5, PlainsChance: 0.75}, nil
	}
	return VegetationTable{}, unknown("vegetation", string(v))
}

// LookupRivers returns the table for a rivers choice.
func LookupRivers(r Rivers) (RiversTable, error) {
	switch r {
	case RiversNone:
		return RiversTable{RiverAmount: 0}, nil
	case RiversFew:
		return RiversTable{RiverAmount: 1}, nil
	case RiversMedium:
		return RiversTable{RiverAmount: 3}, nil
	case RiversOverflowing:
		return RiversTable{RiverAmount: 10}, nil
	}
	return RiversTable{}, unknown("rivers", string(r))
}

func unknown(table, value string) error {
	return fmt.Errorf("%s %q: %w", table, value, ErrUnknownChoice)
}

// normalize lower-cases and trims a user-supplied name.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ParseSize validates a size name.
func ParseSize(s string) (Size, error) {
	v := Size(normalize(s))
	if _, err := LookupSize(v); err != nil {
		return "", err
	}
	return v, nil
}

// ParseStyle validates a style name.
func ParseStyle(s string) (Style, error) {
	v := Style(normalize(s))
	if _, err := LookupStyle(v); err != nil {
		return "", err
	}
	return v, nil
}

// ParseTopography validates a topography name.
func ParseTopography(s string) (Topography, error) {
	v := Topography(normalize(s))
	if _, err := LookupTopography(v); err != nil {
		return "", err
	}
	return v, nil
}

// ParseVegetation validates a vegetation name.
func ParseVegetation(s string) (Vegetation, error) {
	v := Vegetation(normalize(s))
	if _, err := LookupVegetation(v); err != nil {
		return "", err
	}
	return v, nil
}

// ParseRivers validates a rivers name.
func ParseRivers(s string) (Rivers, error) {
	v := Rivers(normalize(s))
	if _, err := LookupRivers(v); err != nil {
		return "", err
	}
	return v, nil
}

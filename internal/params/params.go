package params

import "fmt"

// Choices is the set of named options a caller picks from.
type Choices struct {
	Size       Size       `json:"size" yaml:"size"`
	Style      Style      `json:"style" yaml:"style"`
	Topography Topography `json:"topography" yaml:"topography"`
	Vegetation Vegetation `json:"vegetation" yaml:"vegetation"`
	Rivers     Rivers     `json:"rivers" yaml:"rivers"`
}

// DefaultChoices returns the choices a fresh session starts with.
func DefaultChoices() Choices {
	return Choices{
		Size:       SizeLarge,
		Style:      StyleRealistic,
		Topography: TopographyMedium,
		Vegetation: VegetationRealistic,
		Rivers:     RiversMedium,
	}
}

func (c Choices) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", c.Size, c.Style, c.Topography, c.Vegetation, c.Rivers)
}

// Params is the resolved numeric bundle handed to the terrain generator.
type Params struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Border int `json:"border"`

	LandmassCount      float64 `json:"landmass_count"`
	GenerationCount    float64 `json:"generation_count"`
	GenerationModifier float64 `json:"generation_modifier"`
	LandmassModifier   float64 `json:"landmass_modifier"`
	HillModifier       float64 `json:"hill_modifier"`
	MountainModifier   float64 `json:"mountain_modifier"`
	VegetationModifier float64 `json:"vegetation_modifier"`
	RiverModifier      float64 `json:"river_modifier"`

	Vegetation     VegetationTable `json:"vegetation"`
	TopographyFlat bool            `json:"topography_flat"`
}

// Barren reports whether no vegetation should be seeded.
func (p Params) Barren() bool {
	return p.Vegetation.VegetationNumber == 0
}

// Resolve looks every choice up and combines the tables. The first unknown choice is
// returned as an error wrapping ErrUnknownChoice.
func Resolve(c Choices) (Params, error) {
	size, err := LookupSize(c.Size)
	if err != nil {
		return Params{}, err
	}
	style, err := LookupStyle(c.Style)
	if err != nil {
		return Params{}, err
	}
	topo, err := LookupTopography(c.Topography)
	if err != nil {
		return Params{}, err
	}
	veg, err := LookupVegetation(c.Vegetation)
	if err != nil {
		return Params{}, err
	}
	rivers, err := LookupRivers(c.Rivers)
	if err != nil {
		return Params{}, err
	}

	return Params{
		Width:  size.Width,
		Height: size.Height,
		Border: size.Border,

		LandmassCount:      size.Landmasses,
		GenerationCount:    size.Generations,
		GenerationModifier: style.GenerationModifier,
		LandmassModifier:   style.LandmassModifier,
		HillModifier:       topo.HillModifier * size.HillModifier * style.HillModifier,
		MountainModifier:   topo.MountainModifier * size.MountainModifier,
		VegetationModifier: size.VegetationModifier,
		RiverModifier:      rivers.RiverAmount,

		Vegetation:     veg,
		TopographyFlat: c.Topography == TopographyFlat,
	}, nil
}

package models

import "time"

// Crop is a planting tracked by its owner.
type Crop struct {
	ID              string
	UserID          string
	Name            string
	Variety         string
	PlantDate       time.Time
	GerminationDays int
	HarvestDays     int
	PlantingDepth   *float64
	RowSpacing      *float64
	SeedSpacing     *float64
}

type CropView struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Variety         string   `json:"variety"`
	PlantDate       string   `json:"plant_date"`
	GerminationDays int      `json:"germination_days"`
	HarvestDays     int      `json:"harvest_days"`
	PlantingDepth   *float64 `json:"planting_depth"`
	RowSpacing      *float64 `json:"row_spacing"`
	SeedSpacing     *float64 `json:"seed_spacing"`
}

func (c *Crop) Serialize() CropView {
	return CropView{
		ID:              c.ID,
		Name:            c.Name,
		Variety:         c.Variety,
		PlantDate:       FormatDate(c.PlantDate),
		GerminationDays: c.GerminationDays,
		HarvestDays:     c.HarvestDays,
		PlantingDepth:   c.PlantingDepth,
		RowSpacing:      c.RowSpacing,
		SeedSpacing:     c.SeedSpacing,
	}
}

// CropFields lists the crop attributes a client may set.
var CropFields = []string{
	"name", "variety", "plant_date", "germination_days", "harvest_days",
	"planting_depth", "row_spacing", "seed_spacing",
}

// CropPatch is a sparse set of crop attributes. A nil field was not provided.
// It is the decoded form of both create and update bodies.
type CropPatch struct {
	Name            *string  `json:"name"`
	Variety         *string  `json:"variety"`
	PlantDate       *Date    `json:"plant_date"`
	GerminationDays *int     `json:"germination_days"`
	HarvestDays     *int     `json:"harvest_days"`
	PlantingDepth   *float64 `json:"planting_depth"`
	RowSpacing      *float64 `json:"row_spacing"`
	SeedSpacing     *float64 `json:"seed_spacing"`
}

func (p *CropPatch) IsEmpty() bool {
	return p.Name == nil && p.Variety == nil && p.PlantDate == nil &&
		p.GerminationDays == nil && p.HarvestDays == nil &&
		p.PlantingDepth == nil && p.RowSpacing == nil && p.SeedSpacing == nil
}

// Apply copies every provided attribute onto c.
func (p *CropPatch) Apply(c *Crop) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Variety != nil {
		c.Variety = *p.Variety
	}
	if p.PlantDate != nil {
		c.PlantDate = p.PlantDate.Time
	}
	if p.GerminationDays != nil {
		c.GerminationDays = *p.GerminationDays
	}
	if p.HarvestDays != nil {
		c.HarvestDays = *p.HarvestDays
	}
	if p.PlantingDepth != nil {
		c.PlantingDepth = p.PlantingDepth
	}
	if p.RowSpacing != nil {
		c.RowSpacing = p.RowSpacing
	}
	if p.SeedSpacing != nil {
		c.SeedSpacing = p.SeedSpacing
	}
}

// Columns returns the provided attributes keyed by their storage name, in
// CropFields order. Backends build their update statements from it.
func (p *CropPatch) Columns() []Column {
	var cols []Column
	if p.Name != nil {
		cols = append(cols, Column{Name: "name", Value: *p.Name})
	}
	if p.Variety != nil {
		cols = append(cols, Column{Name: "variety", Value: *p.Variety})
	}
	if p.PlantDate != nil {
		cols = append(cols, Column{Name: "plant_date", Value: p.PlantDate.Time})
	}
	if p.GerminationDays != nil {
		cols = append(cols, Column{Name: "germination_days", Value: *p.GerminationDays})
	}
	if p.HarvestDays != nil {
		cols = append(cols, Column{Name: "harvest_days", Value: *p.HarvestDays})
	}
	if p.PlantingDepth != nil {
		cols = append(cols, Column{Name: "planting_depth", Value: *p.PlantingDepth})
	}
	if p.RowSpacing != nil {
		cols = append(cols, Column{Name: "row_spacing", Value: *p.RowSpacing})
	}
	if p.SeedSpacing != nil {
		cols = append(cols, Column{Name: "seed_spacing", Value: *p.SeedSpacing})
	}
	return cols
}

// Column is one attribute assignment of a partial update.
type Column struct {
	Name  string
	Value any
}

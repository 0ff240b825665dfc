package services

import (
	"fmt"
	"sort"

	"racing-league/models"

	"github.com/gosimple/slug"
)

// Catalog is the fixed vehicle table. It is built once at startup and only read afterwards.
type Catalog struct {
	vehicles map[int]models.Vehicle
	order    []int
	bySlug   map[string]int
}

// DefaultVehicles is the stock garage. Id 1 is the free starter every player owns.
func DefaultVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: 1, Name: "Old Sedan", Price: 0, Speed: 3, Acceleration: 2, Handling: 3},
		{ID: 2, Name: "Sport Hatchback", Price: 5000, Speed: 5, Acceleration: 6, Handling: 5},
		{ID: 3, Name: "Street Racer", Price: 15000, Speed: 7, Acceleration: 8, Handling: 6},
		{ID: 4, Name: "Supercar", Price: 50000, Speed: 9, Acceleration: 9, Handling: 8},
		{ID: 5, Name: "Formula Racer", Price: 150000, Speed: 10, Acceleration: 10, Handling: 9},
	}
}

// NewCatalog indexes the given vehicles. The starter vehicle must be present.
func NewCatalog(vehicles []models.Vehicle) (*Catalog, error) {
	c := &Catalog{
		vehicles: make(map[int]models.Vehicle, len(vehicles)),
		bySlug:   make(map[string]int, len(vehicles)),
	}
	for _, v := range vehicles {
		if _, dup := c.vehicles[v.ID]; dup {
			return nil, fmt.Errorf("duplicate vehicle id %d", v.ID)
		}
		if v.Slug == "" {
			v.Slug = slug.Make(v.Name)
		}
		c.vehicles[v.ID] = v
		c.bySlug[v.Slug] = v.ID
		c.order = append(c.order, v.ID)
	}
	if _, ok := c.vehicles[models.StarterVehicleID]; !ok {
		return nil, fmt.Errorf("catalog has no starter vehicle (id %d)", models.StarterVehicleID)
	}
	sort.Ints(c.order)
	return c, nil
}

// MustDefaultCatalog returns the stock catalog.
func MustDefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultVehicles())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup returns the vehicle with the given id or ErrVehicleNotFound.
func (c *Catalog) Lookup(id int) (models.Vehicle, error) {
	v, ok := c.vehicles[id]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("%w: id %d", ErrVehicleNotFound, id)
	}
	return v, nil
}

// LookupOrDefault resolves a stored vehicle id, falling back to the starter
// vehicle when the id has no catalog entry.
func (c *Catalog) LookupOrDefault(id int) models.Vehicle {
	if v, ok := c.vehicles[id]; ok {
		return v
	}
	return c.vehicles[models.StarterVehicleID]
}

// BySlug finds a vehicle by its URL slug.
func (c *Catalog) BySlug(s string) (models.Vehicle, error) {
	id, ok := c.bySlug[s]
	if !ok {
		return models.Vehicle{}, fmt.Errorf("%w: slug %q", ErrVehicleNotFound, s)
	}
	return c.vehicles[id], nil
}

// All lists the catalog in id order.
func (c *Catalog) All() []models.Vehicle {
	out := make([]models.Vehicle, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.vehicles[id])
	}
	return out
}

// Random picks a vehicle uniformly over the whole catalog, regardless of tier.
func (c *Catalog) Random(d Dice) models.Vehicle {
	return c.vehicles[c.order[d.IntN(len(c.order))]]
}

func (c *Catalog) Len() int {
	return len(c.order)
}

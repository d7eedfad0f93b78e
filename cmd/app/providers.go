package main

import (
	"github.com/anglerworks/fishcast/internal/domain/nightcast"
)

// provideSpeciesTable hands the night engine the embedded reference table.
// Kept as a provider so a future build can load an alternative catalog
// without touching the domain wiring.
func provideSpeciesTable() []nightcast.Species {
	return nightcast.DefaultSpecies()
}

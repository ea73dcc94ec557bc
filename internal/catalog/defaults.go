package catalog

import (
	_ "embed"
	"encoding/json"
)

// defaultPlants is a small built-in catalog so the tool works before the user
// points it at a full scraped plants.json.
//
//go:embed plants.json
var defaultPlants []byte

// Default returns the built-in catalog.
func Default() Catalog {
	var c Catalog
	// The embedded file is fixed at build time; a decode failure here is a
	// packaging bug.
	if err := json.Unmarshal(defaultPlants, &c); err != nil {
		panic("catalog: invalid embedded plants.json: " + err.Error())
	}
	for name, e := range c {
		if e.Name == "" {
			e.Name = name
			c[name] = e
		}
	}
	return c
}

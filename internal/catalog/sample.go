// Package catalog generates the built-in sample product dataset. The dataset
// is the fallback of last resort when no document store is reachable and the
// seed payload for first-time store initialization, so generation must be
// fully deterministic: no randomness, no clock, no I/O.
package catalog

import (
	"fmt"
	"math"

	"storefront/internal/domain"
)

// VariantsPerArchetype is the number of product variants generated per
// archetype. Variant 0 of each archetype is the featured one.
const VariantsPerArchetype = 6

var adjectives = []string{
	"Executive",
	"Graphite",
	"Foundry",
	"Atlas",
	"Union",
	"Summit",
	"Axis",
	"Slate",
	"Beacon",
	"Harbor",
}

var imageLibrary = []string{
	"https://images.unsplash.com/photo-1524758631624-e2822e304c36?auto=format&fit=crop&w=1560&q=80",
	"https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&w=1560&q=80",
	"https://images.unsplash.com/photo-1596079890744-df4f2c1ff6f3?auto=format&fit=crop&w=1560&q=80",
	"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1560&q=80",
	"https://images.unsplash.com/photo-1487017159836-4e23ece2e4cf?auto=format&fit=crop&w=1560&q=80",
	"https://images.unsplash.com/photo-1458682625221-3a45f8a844c7?auto=format&fit=crop&w=1560&q=80",
}

type archetype struct {
	baseName    string
	baseSlug    string
	category    string
	description string
	tags        []string
	brand       string
	colors      []string
	basePrice   float64
	image       string
}

var archetypes = []archetype{
	{
		baseName:    "Ergo Task Chair",
		baseSlug:    "ergo-task-chair",
		category:    "Seating",
		description: "Adjustable lumbar support, breathable mesh, and seat depth tuning for all-day comfort.",
		tags:        []string{"chair", "ergonomic", "office"},
		brand:       "Graphite Studio",
		colors:      []string{"Carbon", "Fog", "Cobalt"},
		basePrice:   329,
		image:       "https://images.unsplash.com/photo-1487014679447-9f8336841d58?auto=format&fit=crop&w=1560&q=80",
	},
	{
		baseName:    "Standing Desk",
		baseSlug:    "standing-desk",
		category:    "Desks",
		description: "Dual-motor adjustable desk with memory presets and cable passthrough channels.",
		tags:        []string{"desk", "sit-stand", "workspace"},
		brand:       "Union Works",
		colors:      []string{"Walnut", "Birch", "Matte White"},
		basePrice:   489,
		image:       "https://images.unsplash.com/photo-1497366754035-f200968a6e72?auto=format&fit=crop&w=1560&q=80",
	},
	{
		baseName:    "Mobile File Cabinet",
		baseSlug:    "mobile-file-cabinet",
		category:    "Storage",
		description: "Locking three-drawer steel cabinet with soft-close rails and casters.",
		tags:        []string{"storage", "files", "organization"},
		brand:       "Beacon Supply",
		colors:      []string{"Graphite", "White", "Navy"},
		basePrice:   189,
		image:       "https://images.unsplash.com/photo-1458682625221-3a45f8a844c7?auto=format&fit=crop&w=1560&q=80",
	},
	{
		baseName:    "Conference Keyboard",
		baseSlug:    "conference-keyboard",
		category:    "Accessories",
		description: "Full-size wireless keyboard with noise-dampened keys and multi-device pairing.",
		tags:        []string{"keyboard", "wireless", "peripheral"},
		brand:       "Slate Input",
		colors:      []string{"Black", "Sandstone"},
		basePrice:   129,
		image:       "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=1560&q=80",
	},
	{
		baseName:    "Desk Lighting System",
		baseSlug:    "desk-lamp",
		category:    "Lighting",
		description: "LED task lamp with ambient glow, wireless charging base, and adaptive color temperature.",
		tags:        []string{"lighting", "USB-C", "charger"},
		brand:       "Foundry Light",
		colors:      []string{"Matte Black", "Copper"},
		basePrice:   158,
		image:       "https://images.unsplash.com/photo-1487017159836-4e23ece2e4cf?auto=format&fit=crop&w=1560&q=80",
	},
}

// ArchetypeCount returns the number of product archetypes in the sample set.
func ArchetypeCount() int {
	return len(archetypes)
}

// SampleProducts builds the full sample catalog: every archetype crossed with
// VariantsPerArchetype variants. Calling it twice yields identical output.
func SampleProducts() []domain.Product {
	products := make([]domain.Product, 0, len(archetypes)*VariantsPerArchetype)

	for a, arch := range archetypes {
		for v := 0; v < VariantsPerArchetype; v++ {
			adjective := adjectives[(a+v)%len(adjectives)]
			slug := fmt.Sprintf("%s-%d", arch.baseSlug, v+1)

			products = append(products, domain.Product{
				ID:          slug,
				Name:        adjective + " " + arch.baseName,
				Slug:        slug,
				Description: arch.description,
				Price:       math.Round(arch.basePrice + float64(v)*7 + float64(a)*3),
				Currency:    "USD",
				Category:    arch.category,
				Tags:        arch.tags,
				Image:       arch.image,
				Gallery: []string{
					arch.image,
					imageLibrary[(a+v+1)%len(imageLibrary)],
				},
				Rating:      math.Round((4.2+float64((a+v)%6)*0.1)*10) / 10,
				RatingCount: 120 + a*40 + v*12,
				Inventory:   20 + v*8,
				Featured:    v == 0,
				Brand:       arch.brand,
				Colors:      arch.colors,
			})
		}
	}

	return products
}

// Package catalogmem provides the in-memory product catalog the storefront
// browses. Master data is read-only to the rest of the system.
package catalogmem

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/aplusmed/marketplace-api/internal/domain/entity"
)

// Memory holds the product set in catalog order.
type Memory struct {
	mu       sync.RWMutex
	products []*entity.Product
	byID     map[string]*entity.Product
}

// NewMemory builds a catalog from the given products.
func NewMemory(products []*entity.Product) *Memory {
	m := &Memory{byID: make(map[string]*entity.Product, len(products))}
	for _, p := range products {
		cp := *p
		m.products = append(m.products, &cp)
		m.byID[p.ID] = &cp
	}
	return m
}

// NewMemoryWithDemoProducts builds a catalog seeded with the demo supplies.
func NewMemoryWithDemoProducts() *Memory {
	return NewMemory(DemoProducts())
}

// GetByID returns a copy of the product or nil.
func (m *Memory) GetByID(id string) (*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List returns copies of all products in catalog order.
func (m *Memory) List() ([]*entity.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*entity.Product, 0, len(m.products))
	for _, p := range m.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Categories returns the distinct categories in catalog order.
func (m *Memory) Categories() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[string]bool)
	var out []string
	for _, p := range m.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// DemoProducts is the seed catalog of medical supplies.
func DemoProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          "p-nitrile-gloves",
			Name:        "Nitrile Examination Gloves (Box of 100)",
			Description: "Powder-free, latex-free nitrile gloves for clinical examination.",
			Price:       price("12.99"),
			Stock:       250,
			Category:    "Personal Protective Equipment",
			Supplier:    "SafeGuard Medical",
			Image:       "/images/products/nitrile-gloves.jpg",
			Features:    []string{"Powder-free", "Latex-free", "Textured fingertips"},
			Specifications: map[string]string{
				"Material": "Nitrile",
				"Sizes":    "S, M, L, XL",
			},
		},
		{
			ID:          "p-surgical-masks",
			Name:        "Surgical Face Masks Type IIR (Box of 50)",
			Description: "3-ply fluid-resistant surgical masks with ear loops.",
			Price:       price("8.50"),
			Stock:       500,
			Category:    "Personal Protective Equipment",
			Supplier:    "SafeGuard Medical",
			Image:       "/images/products/surgical-masks.jpg",
			Features:    []string{"Type IIR", "Fluid resistant", "3-ply"},
			Specifications: map[string]string{
				"BFE": ">= 98%",
			},
		},
		{
			ID:          "p-digital-thermometer",
			Name:        "Digital Clinical Thermometer",
			Description: "Fast-read digital thermometer with flexible tip.",
			Price:       price("24.95"),
			Stock:       85,
			Category:    "Diagnostics",
			Supplier:    "MedTech Solutions",
			Image:       "/images/products/digital-thermometer.jpg",
			Features:    []string{"10-second reading", "Waterproof tip", "Fever alarm"},
			Specifications: map[string]string{
				"Accuracy": "±0.1°C",
				"Range":    "32.0–42.9°C",
			},
		},
		{
			ID:          "p-bp-monitor",
			Name:        "Automatic Blood Pressure Monitor",
			Description: "Upper-arm blood pressure monitor with irregular heartbeat detection.",
			Price:       price("89.00"),
			Stock:       40,
			Category:    "Diagnostics",
			Supplier:    "MedTech Solutions",
			Image:       "/images/products/bp-monitor.jpg",
			Features:    []string{"Memory for 2 users", "Cuff fit indicator"},
			Specifications: map[string]string{
				"Cuff size": "22–42 cm",
			},
		},
		{
			ID:          "p-pulse-oximeter",
			Name:        "Fingertip Pulse Oximeter",
			Description: "SpO2 and pulse rate monitor with OLED display.",
			Price:       price("34.99"),
			Stock:       120,
			Category:    "Diagnostics",
			Supplier:    "MedTech Solutions",
			Image:       "/images/products/pulse-oximeter.jpg",
			Features:    []string{"OLED display", "Auto power-off"},
			Specifications: map[string]string{
				"SpO2 range": "70–100%",
			},
		},
		{
			ID:          "p-gauze-pads",
			Name:        "Sterile Gauze Pads 10x10cm (Pack of 25)",
			Description: "Individually wrapped sterile gauze pads for wound care.",
			Price:       price("6.75"),
			Stock:       300,
			Category:    "Wound Care",
			Supplier:    "SafeGuard Medical",
			Image:       "/images/products/gauze-pads.jpg",
			Features:    []string{"Sterile", "Individually wrapped"},
			Specifications: map[string]string{
				"Size": "10 x 10 cm",
			},
		},
		{
			ID:          "p-exam-table-paper",
			Name:        "Examination Table Paper Roll",
			Description: "Smooth examination table paper, 60cm x 50m.",
			Price:       price("11.25"),
			Stock:       0, // out of stock: exercises the in-stock filter and cart ceiling
			Category:    "Clinic Supplies",
			Supplier:    "SafeGuard Medical",
			Image:       "/images/products/exam-table-paper.jpg",
		},
		{
			ID:          "p-stethoscope",
			Name:        "Dual-Head Cardiology Stethoscope",
			Description: "Stainless steel dual-head stethoscope for auscultation.",
			Price:       price("149.50"),
			Stock:       25,
			Category:    "Instruments",
			Supplier:    "MedTech Solutions",
			Image:       "/images/products/stethoscope.jpg",
			Features:    []string{"Stainless steel chestpiece", "Non-chill rim"},
			Specifications: map[string]string{
				"Tubing length": "56 cm",
			},
		},
		{
			ID:          "p-wheelchair",
			Name:        "Folding Transport Wheelchair",
			Description: "Lightweight folding wheelchair with swing-away footrests.",
			Price:       price("219.00"),
			Stock:       12,
			Category:    "Mobility",
			Supplier:    "MedTech Solutions",
			Image:       "/images/products/wheelchair.jpg",
			Specifications: map[string]string{
				"Weight capacity": "135 kg",
			},
		},
		{
			ID:          "p-alcohol-wipes",
			Name:        "Isopropyl Alcohol Wipes (Box of 200)",
			Description: "70% isopropyl alcohol wipes for skin and surface prep.",
			Price:       price("9.99"),
			Stock:       450,
			Category:    "Clinic Supplies",
			Supplier:    "SafeGuard Medical",
			Image:       "/images/products/alcohol-wipes.jpg",
		},
	}
}

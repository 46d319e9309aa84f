// Package catalog holds the static reference data every fair is planned
// against: the fixed feasibility checklist, the reusable activity/material
// libraries and the vetted service companies.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/echoes-archive/feria-api/internal/domain"
)

// FeasibilitySteps is the fixed viability checklist stamped onto every new
// fair, in display order. Entries are never added or removed after creation.
var FeasibilitySteps = []string{
	"Identify Towns Near Archaeological Sites",
	"Assess Community Awareness Levels",
	"Evaluate Community Engagement Potential",
	"Check Basic Infrastructure (Power, Water, Space)",
	"Confirm Willingness of Local Municipality",
}

// DefaultMarketingStrategies seeds the execution tracker of every new fair.
var DefaultMarketingStrategies = []string{
	"Social Media",
	"Radio Spots",
	"Flyers",
}

var MaterialLibrary = []domain.Material{
	{
		ID:            "mat1",
		Name:          "Sand Boxes",
		Description:   "Large wooden boxes for simulation",
		IsReusable:    true,
		Type:          domain.AcquisitionPurchase,
		EstimatedCost: decimal.NewFromInt(150),
		Notes:         "Need local carpentry",
	},
	{
		ID:            "mat2",
		Name:          "Replica Pottery",
		Description:   "Museum quality replicas",
		IsReusable:    true,
		Type:          domain.AcquisitionPurchase,
		EstimatedCost: decimal.NewFromInt(300),
		Notes:         "Handle with care",
	},
	{
		ID:            "mat3",
		Name:          "Tents / Carpas",
		Description:   "3x3 standard event tents",
		IsReusable:    false,
		Type:          domain.AcquisitionRent,
		EstimatedCost: decimal.NewFromInt(50),
		Notes:         "Price per unit",
	},
	{
		ID:            "mat4",
		Name:          "Sound System",
		Description:   "Speakers and Mixer",
		IsReusable:    false,
		Type:          domain.AcquisitionRent,
		EstimatedCost: decimal.NewFromInt(200),
		Notes:         "Daily rate",
	},
}

var ActivityLibrary = []domain.Activity{
	{
		ID:                  "act1",
		Name:                "Virtual Maya Reality",
		Category:            domain.ActivityArchaeological,
		Description:         "Oculus tour of Copan ruins",
		RequiredMaterialIDs: []string{"mat4"},
		Notes:               "Requires high speed internet",
	},
	{
		ID:                  "act2",
		Name:                "Clay Modeling",
		Category:            domain.ActivityInformative,
		Description:         "Learn to make Lenca pottery",
		RequiredMaterialIDs: []string{"mat2"},
		Notes:               "Messy activity",
	},
	{
		ID:          "act3",
		Name:        "Baleada Masterclass",
		Category:    domain.ActivityFoodDrink,
		Description: "Live cooking demonstration",
		Notes:       "Needs stove setup",
		VendorName:  "Local Chef",
		FoodType:    "Baleadas",
	},
}

var MarketStudyCompanies = []domain.Company{
	{
		ID:        "msc1",
		Name:      "Mercaplan Honduras",
		Specialty: "Cultural Heritage",
		Services:  "Ethnography, Quantitative",
		CostRange: "L12,000 - L15,000",
		Contact:   "+504 2236-7890",
	},
	{
		ID:        "msc2",
		Name:      "1+1 Research",
		Specialty: "Mixed Methods",
		Services:  "Panel, F2F",
		CostRange: "L10,000 - L12,000",
		Contact:   "+504 2289-3456",
	},
}

var MarketingCompanies = []domain.Company{
	{
		ID:        "mkc1",
		Name:      "Creative Honduras",
		Specialty: "Viral Campaigns",
		Services:  "Ads, Influencers",
		CostRange: "L8,000 - L20,000",
		Contact:   "social@creative.hn",
	},
	{
		ID:        "mkc2",
		Name:      "Regional Radio Ads",
		Specialty: "Rural Outreach",
		Services:  "Radio Spots",
		CostRange: "L5,000 - L10,000",
		Contact:   "+504 9999-0000",
	},
}

var EntertainmentProviders = []domain.EntertainmentProvider{
	{
		ID:          "ent1",
		Name:        "Lenca Dancers",
		ServiceType: "Folkloric Dance",
		Cost:        decimal.NewFromInt(150),
		Duration:    "45 mins",
		Contact:     "+504 8888-1111",
		Notes:       "Cultural focus",
	},
	{
		ID:          "ent2",
		Name:        "Marimba Orchestra",
		ServiceType: "Live Music",
		Cost:        decimal.NewFromInt(300),
		Duration:    "2 hours",
		Contact:     "+504 7777-2222",
		Notes:       "Great for evening",
	},
}

package usecase

import "github.com/smartproperty-service/internal/domain"

var riskLayers = []domain.RiskLayer{
	{
		ID:          "flood_risk",
		Name:        "Flood Risk",
		Description: "Areas with risk of flooding during heavy rainfall",
		Legend: []domain.LegendEntry{
			{Color: "#a6cee3", Label: "Very Low Risk"},
			{Color: "#1f78b4", Label: "Low Risk"},
			{Color: "#b2df8a", Label: "Medium Risk"},
			{Color: "#33a02c", Label: "High Risk"},
			{Color: "#fb9a99", Label: "Very High Risk"},
		},
	},
	{
		ID:          "temperature",
		Name:        "Surface Temperature",
		Description: "Land surface temperature analysis",
		Legend: []domain.LegendEntry{
			{Color: "#313695", Label: "Below Average"},
			{Color: "#4575b4", Label: "Slightly Below Average"},
			{Color: "#74add1", Label: "Average"},
			{Color: "#abd9e9", Label: "Slightly Above Average"},
			{Color: "#e0f3f8", Label: "Above Average"},
			{Color: "#ffffbf", Label: "Moderate High"},
			{Color: "#fee090", Label: "High"},
			{Color: "#fdae61", Label: "Very High"},
			{Color: "#f46d43", Label: "Extremely High"},
			{Color: "#d73027", Label: "Dangerously High"},
		},
	},
	{
		ID:          "air_quality",
		Name:        "Air Quality",
		Description: "Air quality index across the region",
		Legend: []domain.LegendEntry{
			{Color: "#00ccbc", Label: "Excellent"},
			{Color: "#99cc33", Label: "Good"},
			{Color: "#ffde33", Label: "Moderate"},
			{Color: "#ff9933", Label: "Poor"},
			{Color: "#cc0033", Label: "Very Poor"},
			{Color: "#660099", Label: "Hazardous"},
		},
	},
	{
		ID:          "green_space",
		Name:        "Green Space",
		Description: "Distribution of green spaces and vegetation",
		Legend: []domain.LegendEntry{
			{Color: "#276419", Label: "Dense Vegetation"},
			{Color: "#4d9221", Label: "Moderate Vegetation"},
			{Color: "#7fbc41", Label: "Light Vegetation"},
			{Color: "#b8e186", Label: "Sparse Vegetation"},
			{Color: "#e6f5d0", Label: "Very Sparse Vegetation"},
			{Color: "#f7f7f7", Label: "No Vegetation"},
		},
	},
}

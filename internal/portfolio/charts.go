package portfolio

import "slices"

// RadarMax is the scale maximum of every radar axis.
const RadarMax = 100

var skillRadar = []RadarPoint{
	{Label: "Python", Value: 95, Max: RadarMax},
	{Label: "SQL", Value: 90, Max: RadarMax},
	{Label: "ML", Value: 98, Max: RadarMax},
	{Label: "Viz", Value: 85, Max: RadarMax},
	{Label: "Stats", Value: 92, Max: RadarMax},
	{Label: "Big Data", Value: 75, Max: RadarMax},
}

// Cumulative business impact per year, sample data only.
var impactSeries = []SeriesPoint{
	{Label: "2019", Value: 20},
	{Label: "2020", Value: 45},
	{Label: "2021", Value: 65},
	{Label: "2022", Value: 85},
	{Label: "2023", Value: 100},
}

// SkillRadar returns the records for the expertise radar chart.
func SkillRadar() []RadarPoint { return slices.Clone(skillRadar) }

// ImpactSeries returns the records for the impact area chart.
func ImpactSeries() []SeriesPoint { return slices.Clone(impactSeries) }

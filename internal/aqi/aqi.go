// Package aqi maps pollutant readings onto the Indian AQI category scale.
package aqi

import "math"

// Category is one band of the AQI scale with its display and advisory text.
type Category struct {
	Label  string
	Color  string
	Advice string
	Mask   string
	Risk   string
}

// band pairs an inclusive upper bound with the category it selects.
type band struct {
	Max      float64
	Category Category
}

// bands is evaluated top to bottom; the first band whose Max is >= aqi wins.
var bands = []band{
	{50, Category{
		Label:  "Good",
		Color:  "green",
		Advice: "Air quality is good. Enjoy normal outdoor activities.",
		Mask:   "No mask needed.",
		Risk:   "No risk for anyone.",
	}},
	{100, Category{
		Label:  "Satisfactory",
		Color:  "lightgreen",
		Advice: "Air quality is acceptable. Slight risk to sensitive people.",
		Mask:   "Mask optional.",
		Risk:   "Children, elderly & asthma patients be cautious.",
	}},
	{200, Category{
		Label:  "Moderate",
		Color:  "yellow",
		Advice: "Reduce prolonged outdoor exertion.",
		Mask:   "Wear mask if you have breathing problems.",
		Risk:   "Asthma, lung & heart patients at risk.",
	}},
	{300, Category{
		Label:  "Poor",
		Color:  "orange",
		Advice: "Avoid heavy outdoor exercise.",
		Mask:   "N95 mask recommended 😷",
		Risk:   "Children & elderly should stay indoors.",
	}},
	{400, Category{
		Label:  "Very Poor",
		Color:  "red",
		Advice: "Stay indoors. Avoid outdoor activity.",
		Mask:   "N95/N99 mask required.",
		Risk:   "High risk for everyone.",
	}},
}

// severe applies above the last band.
var severe = Category{
	Label:  "Severe",
	Color:  "purple",
	Advice: "Health emergency! Avoid going out completely.",
	Mask:   "N99 mask strictly required.",
	Risk:   "Serious risk. Can impact even healthy people.",
}

// Classify returns the category for an AQI value. Band bounds are inclusive,
// so 50 is Good and 50.01 is Satisfactory.
func Classify(aqi float64) Category {
	for _, b := range bands {
		if aqi <= b.Max {
			return b.Category
		}
	}
	return severe
}

// Categories returns every category in ascending severity.
func Categories() []Category {
	out := make([]Category, 0, len(bands)+1)
	for _, b := range bands {
		out = append(out, b.Category)
	}
	return append(out, severe)
}

// Estimate combines PM2.5 and PM10 concentrations into a single index,
// rounded to two decimal places.
func Estimate(pm25, pm10 float64) float64 {
	return round2(0.6*pm25 + 0.4*pm10)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

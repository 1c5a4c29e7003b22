package model

// categoryNames maps the YouTube Data API categoryId values we care about to
// human-readable names. Keys absent from the table, including an empty
// categoryId, resolve to UnknownCategory.
var categoryNames = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"19": "Travel & Events",
	"20": "Gaming",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "How-to & Style",
	"27": "Education",
	"28": "Science & Tech",
	"29": "Nonprofits",
}

// UnknownCategory is the sentinel name for unmapped or missing category IDs.
const UnknownCategory = "Unknown"

// ResolveCategory maps a raw categoryId to a category name. It is total:
// every input, including the empty string, yields a defined name.
func ResolveCategory(categoryID string) string {
	if name, ok := categoryNames[categoryID]; ok {
		return name
	}
	return UnknownCategory
}

// categoryRPM holds approximate revenue-per-thousand-views rates by category.
// These are heuristic niche averages, not measured payout data; any category
// not listed falls back to DefaultRPM.
var categoryRPM = map[string]float64{
	"Music":           0.60,
	"Entertainment":   1.20,
	"Comedy":          0.90,
	"Education":       2.50,
	"Technology":      3.20,
	"Science & Tech":  3.20,
	"How-to & Style":  1.80,
	"Gaming":          1.40,
	"News & Politics": 2.20,
	"People & Blogs":  1.00,
	UnknownCategory:   1.00,
}

// DefaultRPM is the baseline rate applied to categories without an entry in
// the RPM table.
const DefaultRPM = 1.0

// CategoryRPM returns the heuristic RPM rate for a resolved category name.
func CategoryRPM(category string) float64 {
	if rpm, ok := categoryRPM[category]; ok {
		return rpm
	}
	return DefaultRPM
}

package models

// Region pairs the portal's region key with its human readable name. The
// name is what prompts and placeholder content use; the key is what the
// front-end filters on.
type Region struct {
	Key  string
	Name string
}

// DefaultRegions lists the regions the portal index page knows about, in
// display order.
var DefaultRegions = []Region{
	{Key: "global", Name: "the entire world"},
	{Key: "north_america", Name: "North America"},
	{Key: "europe", Name: "Europe"},
	{Key: "asia", Name: "Asia"},
	{Key: "africa", Name: "Africa"},
	{Key: "oceania", Name: "Oceania"},
	{Key: "south_america", Name: "South America"},
	{Key: "middle_east", Name: "the Middle East"},
	{Key: "southeast_asia", Name: "Southeast Asia"},
	{Key: "north_africa", Name: "North Africa"},
	{Key: "sub_saharan_africa", Name: "Sub-Saharan Africa"},
	{Key: "east_asia", Name: "East Asia"},
	{Key: "south_asia", Name: "South Asia"},
	{Key: "australia_nz", Name: "Australia and New Zealand"},
}

// DefaultCategories lists the portal's content categories.
var DefaultCategories = []string{
	"news",
	"technology",
	"finance",
	"travel",
	"world",
	"weather",
	"blogs",
}

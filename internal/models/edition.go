package models

import "sort"

// Edition is one full portal update: articles grouped by region key, then
// category key. It marshals to the nested object updates.json carries.
type Edition map[string]map[string][]Article

// NewEdition creates an empty edition.
func NewEdition() Edition {
	return make(Edition)
}

// Add appends articles for a region/category pair, creating buckets as needed.
func (e Edition) Add(region, category string, articles []Article) {
	if e[region] == nil {
		e[region] = make(map[string][]Article)
	}

	e[region][category] = append(e[region][category], articles...)
}

// Count returns the number of articles for a region/category pair.
func (e Edition) Count(region, category string) int {
	return len(e[region][category])
}

// Total returns the total number of articles across all pairs.
func (e Edition) Total() int {
	total := 0

	for _, categories := range e {
		for _, articles := range categories {
			total += len(articles)
		}
	}

	return total
}

// Regions returns the region keys in sorted order.
func (e Edition) Regions() []string {
	regions := make([]string, 0, len(e))
	for region := range e {
		regions = append(regions, region)
	}

	sort.Strings(regions)

	return regions
}

// Categories returns the category keys of a region in sorted order.
func (e Edition) Categories(region string) []string {
	categories := make([]string, 0, len(e[region]))
	for category := range e[region] {
		categories = append(categories, category)
	}

	sort.Strings(categories)

	return categories
}

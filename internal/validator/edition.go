// Package validator checks existing updates.json files against the portal schema.
package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"newsrunner/internal/models"
	"newsrunner/internal/normalizer"
)

// File validation errors.
var (
	ErrNotJSON    = errors.New("file is not valid JSON")
	ErrWrongShape = errors.New("file is not a region/category article map")
	ErrEmptyFile  = errors.New("file contains no regions")
)

// Report summarizes a validated file.
type Report struct {
	Regions  int
	Pairs    int
	Articles int
	Problems []string
}

// Valid reports whether the file passed with no problems.
func (r *Report) Valid() bool {
	return len(r.Problems) == 0
}

// ValidateFile parses path as an edition and checks every article for the
// required fields. Unlike the normalizer it does not enforce configured
// region coverage or count bounds; a hand-edited file with extra regions is
// still publishable.
func ValidateFile(path string) (models.Edition, *Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var edition models.Edition
	if err := json.Unmarshal(data, &edition); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNotJSON, err)
	}

	if len(edition) == 0 {
		return nil, nil, ErrEmptyFile
	}

	report := &Report{Regions: len(edition)}

	for _, region := range edition.Regions() {
		for _, category := range edition.Categories(region) {
			report.Pairs++

			for i, article := range edition[region][category] {
				report.Articles++

				if article.Title == "" {
					report.addProblem("%s/%s[%d]: missing title", region, category, i)
				}

				if article.Content == "" {
					report.addProblem("%s/%s[%d]: missing content", region, category, i)
				}

				if article.Link == "" {
					report.addProblem("%s/%s[%d]: missing link", region, category, i)
				} else if !normalizer.IsAbsoluteHTTPURL(article.Link) {
					report.addProblem("%s/%s[%d]: link %q is not absolute http(s)", region, category, i, article.Link)
				}

				if article.ImageURL != "" && !normalizer.IsAbsoluteHTTPURL(article.ImageURL) {
					report.addProblem("%s/%s[%d]: imageUrl %q is not absolute http(s)", region, category, i, article.ImageURL)
				}
			}
		}
	}

	return edition, report, nil
}

func (r *Report) addProblem(format string, args ...interface{}) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

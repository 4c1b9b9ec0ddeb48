package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"newsrunner/internal/models"
)

// systemInstruction pins the model to the portal's wire format.
const systemInstruction = `You are a news desk editor for a global news portal.
You write short, factual, self-contained article summaries.
Respond with JSON only: an array of objects with exactly these keys:
"title", "content", "link", "imageUrl".
Titles are under 90 characters. Content is 2-3 sentences.
"link" and "imageUrl" must be absolute https URLs.
Do not wrap the JSON in markdown fences or add commentary.`

// BuildPrompt constructs the user prompt for one region/category pair.
func BuildPrompt(region models.Region, category string, count int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Write %d current %s article summaries for readers in %s.\n", count, category, region.Name)
	sb.WriteString("Each article needs a headline, a 2-3 sentence summary, a plausible source link, and an image URL.\n")
	sb.WriteString(`Return a JSON array of {"title", "content", "link", "imageUrl"} objects and nothing else.`)

	return sb.String()
}

// ParseArticles decodes a provider response into articles. Markdown code
// fences are tolerated even though the prompt forbids them; models add them
// anyway under load.
func ParseArticles(raw string) ([]models.Article, error) {
	cleaned := stripCodeFences(raw)
	if cleaned == "" {
		return nil, ErrEmptyResponse
	}

	var articles []models.Article
	if err := json.Unmarshal([]byte(cleaned), &articles); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if len(articles) == 0 {
		return nil, ErrEmptyResponse
	}

	// Incomplete articles make the whole response retryable; a fresh
	// generation is cheaper than repairing a half-filled one.
	for i, article := range articles {
		if article.Title == "" || article.Content == "" || article.Link == "" {
			return nil, fmt.Errorf("%w: article %d is missing required fields", ErrMalformedResponse, i)
		}
	}

	return articles, nil
}

// stripCodeFences removes a surrounding ```json ... ``` block if present.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	return strings.TrimSpace(s)
}

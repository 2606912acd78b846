package recommend

import "github.com/abhisek/careerwise/internal/llm"

func resourceList(desc string) map[string]any {
	return map[string]any{
		"type":        "array",
		"description": desc,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{"type": "string"},
				"url":   map[string]any{"type": "string", "description": "Full https URL"},
			},
			"required":             []any{"title", "url"},
			"additionalProperties": false,
		},
	}
}

// RecommendationSchema is the structured output requested from the provider.
var RecommendationSchema = &llm.Schema{
	Name:        "career-recommendations",
	Description: "Personalised career recommendations with learning resources",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"recommendations": map[string]any{
				"type":     "array",
				"minItems": 1,
				"maxItems": MaxRecommendations,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"careerTitle":            map[string]any{"type": "string", "minLength": 1},
						"description":            map[string]any{"type": "string"},
						"relevanceJustification": map[string]any{"type": "string", "description": "Why this career fits the profile"},
						"skillGaps": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"learningPath": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"step":           map[string]any{"type": "string"},
									"recommendation": map[string]any{"type": "string"},
									"details":        map[string]any{"type": "string"},
								},
								"required":             []any{"step", "recommendation", "details"},
								"additionalProperties": false,
							},
						},
						"youtubeTutorials": resourceList("YouTube tutorials"),
						"freeCourses":      resourceList("Free online courses"),
						"ebooksOrBlogs":    resourceList("Free e-books or blog posts"),
					},
					"required": []any{
						"careerTitle", "description", "relevanceJustification", "skillGaps",
						"learningPath", "youtubeTutorials", "freeCourses", "ebooksOrBlogs",
					},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"recommendations"},
		"additionalProperties": false,
	},
}

package client

import (
	"Recipe-Finder/domain"
	"fmt"
	"io"
	"strings"
)

const (
	maxStars          = 5
	summaryLimit      = 150
	defaultReadyIn    = 30
	defaultServings   = 2
	placeholderImage  = "https://via.placeholder.com/600"
	noIngredients     = "No ingredients listed"
	noInstructions    = "No instructions provided"
	noReviews         = "No reviews yet. Be the first!"
	noResults         = "No recipes found."
	reviewDateLayout  = "2006-01-02 15:04 UTC"
	anonymousReviewer = "anonymous"
)

// FormatStars renders a rating as filled and empty stars, clamped to 0..5.
func FormatStars(rating int) string {
	rating = min(max(rating, 0), maxStars)
	return strings.Repeat("★", rating) + strings.Repeat("☆", maxStars-rating)
}

func RenderResults(w io.Writer, results []domain.SearchResultItem) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, noResults)
		return err
	}

	for _, r := range results {
		readyIn, servings := r.ReadyInMinutes, r.Servings
		if readyIn == 0 {
			readyIn = defaultReadyIn
		}
		if servings == 0 {
			servings = defaultServings
		}
		if _, err := fmt.Fprintf(w, "%6d  %s  (%dm, serves %d)\n", r.ID, r.Title, readyIn, servings); err != nil {
			return err
		}
	}
	return nil
}

func RenderRecipe(w io.Writer, recipe *domain.RecipeDetail) error {
	var b strings.Builder

	b.WriteString(recipe.Title + "\n")
	image := recipe.Image
	if image == "" {
		image = placeholderImage
	}
	b.WriteString(image + "\n")
	if recipe.Summary != "" {
		b.WriteString(truncate(recipe.Summary, summaryLimit) + "\n")
	}

	b.WriteString("\nIngredients\n")
	if len(recipe.ExtendedIngredients) == 0 {
		b.WriteString("  - " + noIngredients + "\n")
	}
	for _, ing := range recipe.ExtendedIngredients {
		b.WriteString("  - " + ing.Original + "\n")
	}

	b.WriteString("\nInstructions\n")
	if len(recipe.AnalyzedInstructions) == 0 || len(recipe.AnalyzedInstructions[0].Steps) == 0 {
		b.WriteString("  1. " + noInstructions + "\n")
	} else {
		for i, step := range recipe.AnalyzedInstructions[0].Steps {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, step.Step)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func RenderReviews(w io.Writer, reviews []domain.ReviewResponse) error {
	if len(reviews) == 0 {
		_, err := fmt.Fprintln(w, noReviews)
		return err
	}

	for _, r := range reviews {
		name := r.Username
		if name == "" {
			name = anonymousReviewer
		}
		if _, err := fmt.Fprintf(w, "%s  %s  %s\n", FormatStars(r.Rating), name, r.CreatedAt.UTC().Format(reviewDateLayout)); err != nil {
			return err
		}
		if r.Comment != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", r.Comment); err != nil {
				return err
			}
		}
	}
	return nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

package recipe

import (
	"Recipe-Finder/domain"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const (
	unsplashBase  = "https://images.unsplash.com/"
	unsplashQuery = "?auto=format&fit=crop&w=600&q=80"

	genericMockMinID = 106
	genericMockMaxID = 127
)

func unsplash(photo string) string {
	return unsplashBase + photo + unsplashQuery
}

// fallbackProvider serves a fixed demo catalogue. Search filters are accepted
// but not applied.
type fallbackProvider struct{}

var mockSearchResults = []domain.SearchResultItem{
	{ID: 101, Title: "Pasta Carbonara (Mock)", Image: unsplash("photo-1612874742237-6526221588e3"), Summary: "A classic creamy pasta dish.", ReadyInMinutes: 30, Servings: 2},
	{ID: 104, Title: "Chicken Biryani (Mock)", Image: unsplash("photo-1589302168068-964664d93dc0"), Summary: "Aromatic basmati rice with spiced chicken.", ReadyInMinutes: 60, Servings: 4},
	{ID: 105, Title: "Chocolate Lava Cake (Mock)", Image: unsplash("photo-1624353365286-3f8d62daad51"), Summary: "Decadent chocolate cake with a molten center.", ReadyInMinutes: 25, Servings: 2},
	{ID: 102, Title: "Veggie Burger (Mock)", Image: unsplash("photo-1594212699903-ec8a3eca50f5"), Summary: "Healthy veggie burger.", ReadyInMinutes: 20, Servings: 1},
	{ID: 103, Title: "Sushi Roll (Mock)", Image: unsplash("photo-1579871494447-9811cf80d66c"), Summary: "Fresh fancy sushi.", ReadyInMinutes: 45, Servings: 4},
	{ID: 106, Title: "Street Tacos (Mock)", Image: unsplash("photo-1565299585323-38d6b0865b47"), Summary: "Authentic Mexican street tacos.", ReadyInMinutes: 20, Servings: 3},
	{ID: 107, Title: "Classic Pizza Margherita (Mock)", Image: unsplash("photo-1574071318508-1cdbab80d002"), Summary: "Simple and delicious Italian pizza.", ReadyInMinutes: 40, Servings: 2},
	{ID: 108, Title: "Shrimp Pad Thai (Mock)", Image: unsplash("photo-1559314809-0d155014e29e"), Summary: "Tangy and sweet noodle stir-fry.", ReadyInMinutes: 35, Servings: 2},
	{ID: 109, Title: "Fluffy Pancakes (Mock)", Image: unsplash("photo-1567620905732-2d1ec7ab7445"), Summary: "Perfect breakfast stack.", ReadyInMinutes: 15, Servings: 4},
	{ID: 110, Title: "Chicken Caesar Salad (Mock)", Image: unsplash("photo-1550304943-4f24f54ddde9"), Summary: "Fresh salad with grilled chicken.", ReadyInMinutes: 20, Servings: 1},
	{ID: 111, Title: "Spicy Ramen Bowl (Mock)", Image: unsplash("photo-1569718212165-3a8278d5f624"), Summary: "Warm and comforting noodle soup.", ReadyInMinutes: 50, Servings: 2},
	{ID: 112, Title: "Grilled Beef Steak (Mock)", Image: unsplash("photo-1600891964092-4316c288032e"), Summary: "Juicy steak with herbs.", ReadyInMinutes: 30, Servings: 2},
	{ID: 113, Title: "Avocado Toast (Mock)", Image: unsplash("photo-1588137372308-15f75323ca8d"), Summary: "Healthy and trendy breakfast.", ReadyInMinutes: 10, Servings: 1},
	{ID: 114, Title: "New York Cheesecake (Mock)", Image: unsplash("photo-1524351199678-941a58a3df50"), Summary: "Creamy classic cheesecake.", ReadyInMinutes: 90, Servings: 8},
	{ID: 115, Title: "Berry Smoothie Bowl (Mock)", Image: unsplash("photo-1577805947697-89e18249d767"), Summary: "Refreshing fruit smoothie bowl.", ReadyInMinutes: 10, Servings: 1},
	{ID: 116, Title: "Butter Chicken (Mock)", Image: unsplash("photo-1603894584373-5ac82b2ae398"), Summary: "Creamy tomato curry with tender chicken.", ReadyInMinutes: 45, Servings: 4},
	{ID: 117, Title: "Paneer Tikka Masala (Mock)", Image: unsplash("photo-1567188040706-fb8d89f3d9b6"), Summary: "Vegetarian cottage cheese in spiced gravy.", ReadyInMinutes: 40, Servings: 4},
	{ID: 118, Title: "Masala Dosa (Mock)", Image: unsplash("photo-1589301760014-d929f3979dbc"), Summary: "Crispy crepe with potato filling.", ReadyInMinutes: 30, Servings: 3},
	{ID: 119, Title: "Eggs Benedict (Mock)", Image: unsplash("photo-1608039829572-78524f79c4c7"), Summary: "Classic breakfast with hollandaise sauce.", ReadyInMinutes: 25, Servings: 2},
	{ID: 120, Title: "Belgian Waffles (Mock)", Image: unsplash("photo-1558584724-0e4d32ca00a4"), Summary: "Crispy waffles with berries and syrup.", ReadyInMinutes: 20, Servings: 4},
	{ID: 121, Title: "French Toast (Mock)", Image: unsplash("photo-1484723091739-30a097e8f929"), Summary: "Golden brioche french toast.", ReadyInMinutes: 15, Servings: 2},
	{ID: 122, Title: "Club Sandwich (Mock)", Image: unsplash("photo-1567620905732-2d1ec7ab7445"), Summary: "Triple-decker classic lunch sandwich.", ReadyInMinutes: 10, Servings: 1},
	{ID: 123, Title: "Greek Salad (Mock)", Image: unsplash("photo-1540189549336-e6e99c3679fe"), Summary: "Fresh salad with feta and olives.", ReadyInMinutes: 10, Servings: 2},
	{ID: 124, Title: "Tomato Soup & Grilled Cheese (Mock)", Image: unsplash("photo-1543339308-43e59d6b73a6"), Summary: "Comforting lunch combo.", ReadyInMinutes: 20, Servings: 2},
	{ID: 125, Title: "Roast Chicken (Mock)", Image: unsplash("photo-1598103442097-8b74394b95c6"), Summary: "Herb-roasted whole chicken.", ReadyInMinutes: 90, Servings: 4},
	{ID: 126, Title: "Grilled Salmon (Mock)", Image: unsplash("photo-1519708227418-c8fd9a3a2720"), Summary: "Healthy dinner with asparagus.", ReadyInMinutes: 25, Servings: 2},
	{ID: 127, Title: "Vegetable Lasagna (Mock)", Image: unsplash("photo-1574868233977-458734e5c147"), Summary: "Cheesy layered pasta dinner.", ReadyInMinutes: 60, Servings: 6},
}

func (fallbackProvider) IsFallback() bool { return true }

func (fallbackProvider) Search(_ context.Context, _ domain.RecipeSearchRequest) ([]domain.SearchResultItem, error) {
	results := make([]domain.SearchResultItem, len(mockSearchResults))
	copy(results, mockSearchResults)
	return results, nil
}

func (fallbackProvider) GetDetails(_ context.Context, recipeID string) (json.RawMessage, error) {
	return json.Marshal(mockRecipeDetail(recipeID))
}

func mockRecipeDetail(recipeID string) domain.RecipeDetail {
	id, err := strconv.Atoi(recipeID)
	if err != nil {
		return minimalMockDetail(recipeID)
	}
	if detail, ok := mockRecipeDetails[id]; ok {
		return detail
	}
	if id >= genericMockMinID && id <= genericMockMaxID {
		return domain.RecipeDetail{
			ID:                  id,
			Title:               fmt.Sprintf("Mock Recipe %d", id),
			Image:               unsplash("photo-1495521821757-a1efb6729352"),
			Summary:             "Delicious mock recipe details...",
			ExtendedIngredients: ingredients("Ingredient 1", "Ingredient 2", "Ingredient 3"),
			AnalyzedInstructions: steps(
				"Prepare ingredients.",
				"Cook carefully.",
				"Serve and enjoy.",
			),
		}
	}
	return minimalMockDetail(recipeID)
}

func minimalMockDetail(recipeID string) domain.RecipeDetail {
	return domain.RecipeDetail{
		ID:                   recipeID,
		Title:                "Mock Recipe " + recipeID,
		ExtendedIngredients:  ingredients("1 cup mock flour"),
		AnalyzedInstructions: steps("Mix mock ingredients."),
	}
}

func ingredients(lines ...string) []domain.Ingredient {
	out := make([]domain.Ingredient, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.Ingredient{Original: l})
	}
	return out
}

func steps(lines ...string) []domain.AnalyzedInstruction {
	out := make([]domain.InstructionStep, 0, len(lines))
	for _, l := range lines {
		out = append(out, domain.InstructionStep{Step: l})
	}
	return []domain.AnalyzedInstruction{{Steps: out}}
}

var mockRecipeDetails = map[int]domain.RecipeDetail{
	101: {
		ID:      101,
		Title:   "Pasta Carbonara (Mock)",
		Image:   unsplash("photo-1612874742237-6526221588e3"),
		Summary: "Mock Pasta Carbonara description...",
		ExtendedIngredients: ingredients(
			"200 g spaghetti pasta",
			"2 tbsp olive oil",
			"3 cloves garlic (finely chopped)",
			"1 cup fresh cream",
			"1/2 cup grated cheese",
			"1 tsp black pepper",
		),
		AnalyzedInstructions: steps(
			"Boil the spaghetti in salted water until al dente. Drain and keep aside.",
			"Heat olive oil in a pan and sauté garlic until lightly golden.",
			"Lower the heat and add fresh cream, stirring continuously.",
			"Add grated cheese, salt, and black pepper. Mix well.",
			"Add the cooked pasta and toss until evenly coated.",
		),
	},
	104: {
		ID:      104,
		Title:   "Chicken Biryani (Mock)",
		Image:   unsplash("photo-1589302168068-964664d93dc0"),
		Summary: "Rich and aromatic Chicken Biryani...",
		ExtendedIngredients: ingredients(
			"500g Chicken",
			"2 cups Basmati Rice",
			"1 cup Yogurt",
			"Spices (Cardamom, Clove, Cinnamon)",
			"Saffron milk",
			"Fried Onions",
		),
		AnalyzedInstructions: steps(
			"Marinate chicken with yogurt and spices for 1 hour.",
			"Par-boil rice with whole spices.",
			"Layer chicken and rice in a pot.",
			"Add saffron milk and fried onions.",
			"Cook on low heat (dum) for 30 minutes.",
		),
	},
	105: {
		ID:      105,
		Title:   "Chocolate Lava Cake (Mock)",
		Image:   unsplash("photo-1624353365286-3f8d62daad51"),
		Summary: "Warm chocolate cake with a gooey center...",
		ExtendedIngredients: ingredients(
			"100g Dark Chocolate",
			"100g Butter",
			"2 Eggs",
			"2 tbsp Sugar",
			"2 tbsp Flour",
		),
		AnalyzedInstructions: steps(
			"Melt chocolate and butter together.",
			"Whisk eggs and sugar until pale.",
			"Fold in melted chocolate and flour.",
			"Pour into greased ramekins.",
			"Bake at 200°C for 10-12 minutes provided center is still wobbly.",
		),
	},
	116: {
		ID:      116,
		Title:   "Butter Chicken (Mock)",
		Image:   unsplash("photo-1603894584373-5ac82b2ae398"),
		Summary: "Delicious North Indian curry...",
		ExtendedIngredients: ingredients(
			"500g Chicken Thighs",
			"1 cup Tomato Puree",
			"1/2 cup Heavy Cream",
			"2 tbsp Butter",
			"Garam Masala",
		),
		AnalyzedInstructions: steps(
			"Marinate chicken in yogurt and spices.",
			"Cook chicken in tandoor or pan.",
			"Simmer tomato sauce with butter and cream.",
			"Add chicken to sauce and cook.",
		),
	},
	117: {
		ID:      117,
		Title:   "Paneer Tikka Masala (Mock)",
		Image:   unsplash("photo-1567188040706-fb8d89f3d9b6"),
		Summary: "Popular vegetarian Indian dish...",
		ExtendedIngredients: ingredients(
			"250g Paneer Cubes",
			"1 cup Yogurt",
			"2 Onions",
			"2 Tomatoes",
			"Spices",
		),
		AnalyzedInstructions: steps(
			"Marinate paneer cubes.",
			"Grill or shallow fry paneer.",
			"Prepare masala gravy with onions and tomatoes.",
			"Mix paneer into gravy.",
		),
	},
	118: {
		ID:      118,
		Title:   "Masala Dosa (Mock)",
		Image:   unsplash("photo-1589301760014-d929f3979dbc"),
		Summary: "South Indian breakfast classic...",
		ExtendedIngredients: ingredients(
			"2 cups Dosa Batter",
			"4 Potatoes (boiled)",
			"1 Onion",
			"Mustard Seeds",
			"Curry Leaves",
		),
		AnalyzedInstructions: steps(
			"Prepare potato masala filling.",
			"Spread batter on hot griddle.",
			"Add oil and cook until crisp.",
			"Place filling inside and fold.",
		),
	},
}

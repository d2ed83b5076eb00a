package client

import "Recipe-Finder/domain"

// State is everything the terminal views render from.
type State struct {
	Session *Session
	Filters domain.RecipeSearchRequest
	Results []domain.SearchResultItem
	Recipe  *domain.RecipeDetail
	Reviews []domain.ReviewResponse
}

func (s *State) LoggedIn() bool {
	return s.Session != nil && s.Session.Token != ""
}

func (s *State) Username() string {
	if !s.LoggedIn() {
		return ""
	}
	return s.Session.User.Username
}

// Open replaces the open recipe and its reviews.
func (s *State) Open(recipe *domain.RecipeDetail, reviews []domain.ReviewResponse) {
	s.Recipe = recipe
	s.Reviews = reviews
}

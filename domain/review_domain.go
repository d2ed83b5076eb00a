package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

var (
	MessageSuccessGetReviews = "success get reviews"
	MessageSuccessAddReview  = "review added"

	MessageFailedGetReviews = "error fetching reviews"
	MessageFailedAddReview  = "error adding review"

	ErrInvalidRecipeID = errors.New("recipe id must be a string or a number")
)

type (
	// RecipeID accepts both "123" and 123 on the wire since provider ids are numeric
	// but path parameters are strings.
	RecipeID string

	ReviewCreateRequest struct {
		RecipeID RecipeID `json:"recipeId" validate:"required"`
		Rating   int      `json:"rating" validate:"required,min=1,max=5"`
		Comment  string   `json:"comment"`
	}

	ReviewResponse struct {
		ID        string    `json:"id"`
		UserID    string    `json:"userId"`
		RecipeID  string    `json:"recipeId"`
		Rating    int       `json:"rating"`
		Comment   string    `json:"comment"`
		CreatedAt time.Time `json:"createdAt"`
		Username  string    `json:"username,omitempty"`
	}
)

func (id *RecipeID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecipeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidRecipeID
	}
	*id = RecipeID(n.String())
	return nil
}

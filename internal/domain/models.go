package domain

import (
	"encoding/json"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Restaurant struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Cuisines []string `json:"cuisines"`

	ViewCount   int64 `json:"view_count"`
	ReviewCount int64 `json:"review_count"`
	// RatingScore is the running sum of every rating received. It is the rank
	// score and is not an average.
	RatingScore   float64 `json:"rating_score"`
	AverageRating float64 `json:"average_rating"`
}

type NewRestaurant struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Cuisines []string `json:"cuisines"`
}

type Review struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Text         string    `json:"text"`
	Rating       int       `json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
}

type NewReview struct {
	Text   string `json:"text"`
	Rating int    `json:"rating"`
}

// RestaurantDetails is a free-form nested document attached to a restaurant.
type RestaurantDetails map[string]interface{}

// ReviewDocument embeds every review of one restaurant.
type ReviewDocument struct {
	Reviews []Review `json:"reviews"`
}

// Weather is the raw payload returned by the weather provider.
type Weather json.RawMessage

func (w Weather) MarshalJSON() ([]byte, error) {
	if len(w) == 0 {
		return []byte("null"), nil
	}
	return w, nil
}

type SearchHit struct {
	Key    string            `json:"key"`
	Fields map[string]string `json:"fields"`
}

type ReviewEvent struct {
	Type         string    `json:"type"`
	ReviewID     string    `json:"review_id"`
	RestaurantID string    `json:"restaurant_id"`
	Rating       int       `json:"rating"`
	RatingScore  float64   `json:"rating_score"`
	Timestamp    time.Time `json:"timestamp"`
}

const (
	EventReviewCreated = "review_created"
	EventReviewDeleted = "review_deleted"
)

// RestaurantRef is the short form listed under a cuisine.
type RestaurantRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

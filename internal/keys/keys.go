// Package keys builds every Redis key used by the directory. Each entity kind
// owns a distinct first segment under the namespace root, so keys of different
// kinds never collide.
package keys

import "strings"

const (
	DefaultRoot = "restaurant-directory"
	separator   = ":"
)

type Namespace struct {
	Root string
}

func New(root string) Namespace {
	if root == "" {
		root = DefaultRoot
	}
	return Namespace{Root: root}
}

// Key joins the root and segments with ":".
func (n Namespace) Key(segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, n.Root)
	parts = append(parts, segments...)
	return strings.Join(parts, separator)
}

func (n Namespace) Restaurant(id string) string {
	return n.Key("restaurants", id)
}

// RestaurantPrefix is the source prefix of the search index.
func (n Namespace) RestaurantPrefix() string {
	return n.Key("restaurants") + separator
}

func (n Namespace) RestaurantDetails(id string) string {
	return n.Key("restaurant_details", id)
}

func (n Namespace) RestaurantCuisines(id string) string {
	return n.Key("restaurant_cuisines", id)
}

func (n Namespace) Cuisines() string {
	return n.Key("cuisines")
}

func (n Namespace) Cuisine(name string) string {
	return n.Key("cuisine", name)
}

func (n Namespace) RestaurantsByRating() string {
	return n.Key("restaurants_by_rating")
}

// Reviews is the ordered list of review ids of one restaurant.
func (n Namespace) Reviews(restaurantID string) string {
	return n.Key("reviews", restaurantID)
}

// ReviewDetails is the flat hash of one review.
func (n Namespace) ReviewDetails(reviewID string) string {
	return n.Key("review_details", reviewID)
}

// RestaurantReviews is the nested JSON document embedding every review of one restaurant.
func (n Namespace) RestaurantReviews(restaurantID string) string {
	return n.Key("restaurant_reviews", restaurantID)
}

func (n Namespace) SearchIndex() string {
	return n.Key("idx", "restaurants")
}

func (n Namespace) BloomRestaurants() string {
	return n.Key("bloom_restaurants")
}

func (n Namespace) Weather(id string) string {
	return n.Key("weather", id)
}

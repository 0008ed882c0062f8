package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"restaurant-directory/internal/domain"
	"restaurant-directory/internal/service"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Reviews     service.ReviewServiceInterface
	Cuisines    service.CuisineServiceInterface
	Weather     service.WeatherServiceInterface
	Logger      logrus.FieldLogger
}

func NewHandler(
	restaurants service.RestaurantServiceInterface,
	reviews service.ReviewServiceInterface,
	cuisines service.CuisineServiceInterface,
	weather service.WeatherServiceInterface,
	logger logrus.FieldLogger,
) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Reviews:     reviews,
		Cuisines:    cuisines,
		Weather:     weather,
		Logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/restaurants", h.createRestaurant).Methods("POST")
	api.HandleFunc("/restaurants", h.listRestaurants).Methods("GET")
	api.HandleFunc("/restaurants/search", h.searchRestaurants).Methods("GET")
	api.HandleFunc("/cuisines", h.listCuisines).Methods("GET")
	api.HandleFunc("/cuisines/{cuisine}", h.cuisineRestaurants).Methods("GET")

	restaurant := api.PathPrefix("/restaurants/{restaurantId}").Subrouter()
	restaurant.Use(h.RestaurantExists)
	restaurant.HandleFunc("", h.getRestaurant).Methods("GET")
	restaurant.HandleFunc("/details", h.setDetails).Methods("POST")
	restaurant.HandleFunc("/details", h.getDetails).Methods("GET")
	restaurant.HandleFunc("/weather", h.getWeather).Methods("GET")
	restaurant.HandleFunc("/qrcode", h.getQRCode).Methods("GET")
	restaurant.HandleFunc("/reviews", h.createReview).Methods("POST")
	restaurant.HandleFunc("/reviews", h.listReviews).Methods("GET")
	restaurant.HandleFunc("/reviews/{reviewId}", h.deleteReview).Methods("DELETE")
}

// RestaurantExists answers 404 before any restaurant-scoped handler runs
// when the restaurant record is absent.
func (h *Handler) RestaurantExists(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["restaurantId"]
		if id == "" {
			http.Error(w, "restaurant id is required", http.StatusBadRequest)
			return
		}
		ok, err := h.Restaurants.Exists(r.Context(), id)
		if err != nil {
			h.writeError(w, err)
			return
		}
		if !ok {
			http.Error(w, "Restaurant not found", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var in domain.NewRestaurant
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	restaurant, err := h.Restaurants.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, restaurant)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.ListByRating(r.Context(), pageFromRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) searchRestaurants(w http.ResponseWriter, r *http.Request) {
	hits, err := h.Restaurants.Search(r.Context(), r.URL.Query().Get("q"), pageFromRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hits)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurant, err := h.Restaurants.Get(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurant)
}

func (h *Handler) setDetails(w http.ResponseWriter, r *http.Request) {
	var details domain.RestaurantDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Restaurants.SetDetails(r.Context(), mux.Vars(r)["restaurantId"], details); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.Restaurants.GetDetails(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *Handler) getWeather(w http.ResponseWriter, r *http.Request) {
	payload, err := h.Weather.Lookup(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (h *Handler) getQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.Restaurants.QRCode(r.Context(), mux.Vars(r)["restaurantId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var in domain.NewReview
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	review, err := h.Reviews.Create(r.Context(), mux.Vars(r)["restaurantId"], in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Reviews.List(r.Context(), mux.Vars(r)["restaurantId"], pageFromRequest(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := h.Reviews.Delete(r.Context(), vars["restaurantId"], vars["reviewId"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listCuisines(w http.ResponseWriter, r *http.Request) {
	cuisines, err := h.Cuisines.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cuisines)
}

func (h *Handler) cuisineRestaurants(w http.ResponseWriter, r *http.Request) {
	refs, err := h.Cuisines.Restaurants(r.Context(), mux.Vars(r)["cuisine"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, refs)
}

// StatusCode maps the error taxonomy onto HTTP status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidPrecondition):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).Error("request failed")
	}
	http.Error(w, err.Error(), status)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func pageFromRequest(r *http.Request) domain.Page {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return domain.PageFromQuery(page, limit)
}

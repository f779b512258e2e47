package handlers

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/himalayan-adventures/trek-api/internal/auth"
	"github.com/himalayan-adventures/trek-api/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers bundles everything RegisterRoutes wires up.
type Handlers struct {
	Auth    *auth.AuthHandler
	Trek    *TrekHandler
	Cart    *CartHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Profile *ProfileHandler
	APIKey  *APIKeyHandler
	AI      *AIHandler
	Export  *ExportHandler
	Metrics *metrics.Metrics
}

func RegisterRoutes(r *chi.Mux, h Handlers) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if h.Metrics != nil {
		r.Use(durationMiddleware(h.Metrics))
	}

	// Initialize Huma API
	config := huma.DefaultConfig("Himalayan Adventures Trek API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: auth.CookieName,
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Auth routes
	r.Get("/auth/google/login", h.Auth.HandleLogin)
	r.Get("/auth/google/callback", h.Auth.HandleCallback)
	huma.Post(api, "/auth/register", h.Auth.HandleRegister)
	huma.Post(api, "/auth/login", h.Auth.HandleEmailLogin)

	// Catalog
	huma.Get(api, "/treks", h.Trek.HandleListTreks)
	huma.Get(api, "/treks/{slug}", h.Trek.HandleGetTrek)
	huma.Get(api, "/treks/{slug}/reviews", h.Trek.HandleTrekReviews)
	huma.Get(api, "/catalog/packages", h.Trek.HandleCatalog)
	huma.Post(api, "/bookings/quote", h.Booking.HandleQuote)

	// AI
	r.Post("/ai/itinerary", h.AI.HandleGenerateItinerary)
	huma.Post(api, "/ai/recommendations", h.AI.HandleRecommendTreks)

	// Authenticated routes
	secured := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	}
	huma.Get(api, "/me", h.Auth.HandleMe, secured)

	huma.Get(api, "/cart", h.Cart.HandleGetCart, secured)
	huma.Post(api, "/cart", h.Cart.HandleAddToCart, secured)
	huma.Patch(api, "/cart/{id}", h.Cart.HandleUpdateCartItem, secured)
	huma.Delete(api, "/cart/{id}", h.Cart.HandleRemoveCartItem, secured)
	huma.Post(api, "/cart/clear", h.Cart.HandleClearCart, secured)

	huma.Post(api, "/bookings/checkout", h.Booking.HandleCheckout, secured)
	huma.Get(api, "/bookings", h.Booking.HandleListBookings, secured)
	huma.Get(api, "/bookings/{id}", h.Booking.HandleGetBooking, secured)
	huma.Post(api, "/bookings/{id}/cancel", h.Booking.HandleCancelBooking, secured)

	huma.Post(api, "/reviews", h.Review.HandleCreateReview, secured)

	huma.Get(api, "/profile", h.Profile.HandleGetProfile, secured)
	huma.Put(api, "/profile", h.Profile.HandleUpdateProfile, secured)

	huma.Post(api, "/api-keys", h.APIKey.HandleCreate, secured)
	huma.Get(api, "/api-keys", h.APIKey.HandleList, secured)
	huma.Delete(api, "/api-keys/{id}", h.APIKey.HandleDelete, secured)

	// Raw download endpoint; the auth middleware resolves the user.
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.AuthMiddleware)
		r.Get("/bookings/export", h.Export.HandleExportBookings)
	})
}

// durationMiddleware records request latency per route pattern.
func durationMiddleware(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			m.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		})
	}
}

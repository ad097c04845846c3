package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/example/tablebook/internal/reservation"
)

// Carried over from the booking flows this API fronts; purely
// informational.
const refundPolicy = "No charge for cancellations made more than 24 hours in advance"

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondEngineError maps the engine's error taxonomy onto HTTP
// statuses. Anything outside the taxonomy is a bug worth logging.
func (s *Server) respondEngineError(w http.ResponseWriter, err error) {
	switch {
	case reservation.IsNotFound(err):
		respondError(w, http.StatusNotFound, err.Error())
	case reservation.IsInvalidArgument(err):
		respondError(w, http.StatusBadRequest, err.Error())
	case reservation.IsUnavailable(err):
		respondError(w, http.StatusServiceUnavailable, err.Error())
	default:
		s.Log.WithError(err).Error("engine error outside taxonomy")
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := reservation.SearchRequest{
		City:     q.Get("city"),
		Cuisine:  q.Get("cuisine"),
		DateTime: q.Get("date_time"),
	}

	var err error
	if req.PriceTier, err = intParam(q.Get("price_tier")); err != nil {
		respondError(w, http.StatusBadRequest, "price_tier must be an integer")
		return
	}
	if req.PartySize, err = intParam(q.Get("party_size")); err != nil {
		respondError(w, http.StatusBadRequest, "party_size must be an integer")
		return
	}
	if req.DistanceKM, err = floatParam(q.Get("distance_km")); err != nil {
		respondError(w, http.StatusBadRequest, "distance_km must be a number")
		return
	}
	if q.Get("lat") != "" || q.Get("lng") != "" {
		lat, latErr := floatParam(q.Get("lat"))
		lng, lngErr := floatParam(q.Get("lng"))
		if latErr != nil || lngErr != nil {
			respondError(w, http.StatusBadRequest, "lat and lng must both be numbers")
			return
		}
		req.Near = &reservation.Point{Latitude: lat, Longitude: lng}
	}

	restaurants, err := s.Provider.SearchRestaurants(r.Context(), req)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, restaurants)
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]
	q := r.URL.Query()

	partySize, err := intParam(q.Get("party_size"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "party_size must be an integer")
		return
	}

	slots, err := s.Provider.CheckAvailability(r.Context(), restaurantID, q.Get("date_time"), partySize)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, slots)
}

type placeRequest struct {
	RestaurantID string `json:"restaurant_id"`
	DateTime     string `json:"date_time"`
	PartySize    int    `json:"party_size"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Notes        string `json:"notes,omitempty"`
}

func (s *Server) handlePlace(w http.ResponseWriter, r *http.Request) {
	var req placeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.Provider.PlaceReservation(r.Context(), reservation.PlaceRequest{
		RestaurantID: req.RestaurantID,
		DateTime:     req.DateTime,
		PartySize:    req.PartySize,
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Notes:        req.Notes,
	})
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, res)
}

type cancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

type cancelResponse struct {
	Reservation  reservation.Reservation `json:"reservation"`
	RefundPolicy string                  `json:"refund_policy"`
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	reason := r.URL.Query().Get("reason")
	if reason == "" && r.Body != nil {
		var body cancelRequest
		// Body is optional for DELETE; ignore decode failures.
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			reason = body.Reason
		}
	}

	res, err := s.Provider.CancelReservation(r.Context(), id, reason)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, cancelResponse{Reservation: res, RefundPolicy: refundPolicy})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
	if userID == "" {
		respondError(w, http.StatusBadRequest, "user_id is required")
		return
	}
	out, err := s.Provider.ListReservations(r.Context(), userID)
	if err != nil {
		s.respondEngineError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, out)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !s.Auth.Authenticate(req.Username, req.Password) {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := s.Auth.SetSession(w, r, req.Username); err != nil {
		respondError(w, http.StatusInternalServerError, "session encode failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.Auth.ClearSession(w)
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func floatParam(v string) (float64, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

// Package testserver is an in-process stand-in for the remote calorie
// service. It speaks the same wire contract (register, login and an
// authenticated calorie lookup) so the gateway and the controllers can be
// exercised end to end without the network.
package testserver

import (
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/Varun5711/mealcounter/internal/auth"
	"github.com/Varun5711/mealcounter/internal/logger"
	"github.com/Varun5711/mealcounter/internal/middleware"
	"github.com/Varun5711/mealcounter/internal/models"
	"github.com/Varun5711/mealcounter/internal/models/user"
)

const (
	RegisterPath = "/auth/register"
	LoginPath    = "/auth/login"
	LookupPath   = "/get-calories"

	Source = "USDA FoodData Central"
)

// DefaultDishes maps lower-cased dish names to calories per serving.
var DefaultDishes = map[string]float64{
	"chicken breast":  165,
	"salmon":          208,
	"broccoli":        55,
	"brown rice":      216,
	"sweet potato":    112,
	"eggs":            155,
	"greek yogurt":    100,
	"almonds":         164,
	"oatmeal":         158,
	"banana":          105,
	"apple":           95,
	"caesar salad":    184,
	"chicken salad":   268,
	"pasta carbonara": 574,
	"hamburger":       354,
	"pizza":           285,
	"sushi":           200,
	"tacos":           226,
	"steak":           271,
	"tofu":            144,
}

type Options struct {
	Secret   string
	TokenTTL time.Duration
	// Dishes defaults to DefaultDishes. Keys must be lower case.
	Dishes map[string]float64
	Logger *logger.Logger
}

type account struct {
	id           string
	profile      user.Profile
	passwordHash string
}

type Server struct {
	jwt    *auth.JWTManager
	dishes map[string]float64
	log    *logger.Logger

	mu       sync.Mutex
	accounts map[string]account // by email
	hits     map[string]int
}

func New(opts Options) *Server {
	if opts.Secret == "" {
		opts.Secret = "testserver-secret"
	}
	if opts.TokenTTL == 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.Dishes == nil {
		opts.Dishes = DefaultDishes
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	return &Server{
		jwt:      auth.NewJWTManager(opts.Secret, opts.TokenTTL),
		dishes:   opts.Dishes,
		log:      opts.Logger,
		accounts: make(map[string]account),
		hits:     make(map[string]int),
	}
}

func (s *Server) Handler() http.Handler {
	authMiddleware := middleware.NewAuthMiddleware(s.jwt, s.log.Named("auth"))

	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Recoverer, s.count)

	r.Post(RegisterPath, s.register)
	r.Post(LoginPath, s.login)
	r.With(authMiddleware.RequireAuth).Post(LookupPath, s.lookup)

	return r
}

// Hits returns how many requests reached path, authenticated or not.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

// IssueToken signs a token for an arbitrary identity, bypassing registration.
func (s *Server) IssueToken(email string) (string, error) {
	token, _, err := s.jwt.GenerateToken(uuid.NewString(), email)
	return token, err
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.hits[r.URL.Path]++
		s.mu.Unlock()

		s.log.Debug("%s %s request_id=%s", r.Method, r.URL.Path, chimw.GetReqID(r.Context()))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[email]; exists {
		s.mu.Unlock()
		respondError(w, http.StatusConflict, "User already exists")
		return
	}
	acc := account{id: uuid.NewString(), profile: req.Profile(), passwordHash: hash}
	s.accounts[email] = acc
	s.mu.Unlock()

	token, _, err := s.jwt.GenerateToken(acc.id, email)
	if err != nil {
		s.log.Error("Failed to issue token: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	s.log.Info("Registered %s", email)
	respondJSON(w, http.StatusCreated, user.AuthResponse{Message: "User registered successfully", Token: token})
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req user.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.mu.Lock()
	acc, exists := s.accounts[email]
	s.mu.Unlock()

	if !exists || auth.CheckPassword(acc.passwordHash, req.Password) != nil {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, _, err := s.jwt.GenerateToken(acc.id, email)
	if err != nil {
		s.log.Error("Failed to issue token: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, user.AuthResponse{Message: "Login successful", Token: token})
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) {
	var req models.LookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	name := strings.TrimSpace(req.DishName)
	if name == "" || req.Servings <= 0 {
		respondError(w, http.StatusBadRequest, "dish_name and a positive servings are required")
		return
	}

	perServing, ok := s.dishes[strings.ToLower(name)]
	if !ok {
		respondError(w, http.StatusNotFound, "Dish not found")
		return
	}

	s.log.Debug("Lookup %q x%g for %s", name, req.Servings, middleware.GetEmail(r.Context()))
	respondJSON(w, http.StatusOK, models.LookupResult{
		DishName:           name,
		Servings:           req.Servings,
		CaloriesPerServing: perServing,
		TotalCalories:      math.Round(perServing*req.Servings*100) / 100,
		Source:             Source,
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Message: message})
}

package adoptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-explorer/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes: adoptLimit es opcional (rate limit solo sobre el mutador).
func RegisterRoutes(r chi.Router, svc *Service, adoptLimit func(http.Handler) http.Handler) {
	adopt := r
	if adoptLimit != nil {
		adopt = r.With(adoptLimit)
	}
	adopt.Post("/pets/{petID}/adopt", adoptHandler(svc))

	r.Get("/pets/{petID}/adoption", adoptionStatusHandler(svc))
	r.Get("/me/adoptions", listMyAdoptionsHandler(svc))
}

// adoptionStatusResponse indica si un pet está adoptado en la sesión del usuario.
type adoptionStatusResponse struct {
	PetID   string `json:"pet_id"`
	Adopted bool   `json:"adopted"`
}

type adoptionEntryResponse struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id"`
	AdoptedAt time.Time `json:"adopted_at"`
}

// myAdoptionsResponse: el set de identidades + las entradas en orden de adopción.
type myAdoptionsResponse struct {
	SessionID string                  `json:"session_id"`
	PetIDs    []string                `json:"pet_ids"`
	Entries   []adoptionEntryResponse `json:"entries"`
}

// adoptHandler godoc
// @Summary Adoptar una mascota
// @Description Marca la mascota como adoptada en la sesión del usuario. Idempotente: adoptar dos veces devuelve 200 sin cambios. Autenticación: `X-Debug-User-ID` (dev) o `Authorization: Bearer <token>` (prod).
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota (ej: dog1)"
// @Success 200 {object} adoptionStatusResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "unknown record"
// @Failure 429 {string} string "too many requests"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/adopt [post]
func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// mismo ID canónico que guarda el registry
		petID := strings.TrimSpace(chi.URLParam(r, "petID"))
		if err := svc.Adopt(r.Context(), claims.UserID, petID); err != nil {
			switch {
			case errors.Is(err, ErrUnknownRecord):
				http.Error(w, "unknown record", http.StatusNotFound)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, adoptionStatusResponse{PetID: petID, Adopted: true})
	}
}

// adoptionStatusHandler godoc
// @Summary Estado de adopción de una mascota
// @Description Consulta pura: false para IDs nunca adoptados en la sesión del usuario.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} adoptionStatusResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /pets/{petID}/adoption [get]
func adoptionStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		// mismo ID canónico que guarda el registry
		petID := strings.TrimSpace(chi.URLParam(r, "petID"))
		adopted, err := svc.IsAdopted(r.Context(), claims.UserID, petID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, adoptionStatusResponse{PetID: petID, Adopted: adopted})
	}
}

// listMyAdoptionsHandler godoc
// @Summary Listar mis adopciones
// @Description Devuelve el set de IDs adoptados (orden de catálogo) y las entradas en orden de adopción.
// @Tags adoptions
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Success 200 {object} myAdoptionsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/adoptions [get]
func listMyAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		reg, err := svc.Reader(claims.UserID)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		ids, err := reg.AdoptedIdentities(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		entries, err := reg.Adoptions(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := myAdoptionsResponse{
			SessionID: reg.SessionID(),
			PetIDs:    ids,
			Entries:   make([]adoptionEntryResponse, 0, len(entries)),
		}
		for _, a := range entries {
			out.Entries = append(out.Entries, adoptionEntryResponse{
				ID:        a.ID,
				PetID:     a.PetID,
				AdoptedAt: a.AdoptedAt,
			})
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

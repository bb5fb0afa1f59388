package explorer

import (
	"encoding/json"
	"net/http"
	"strings"

	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/middleware"
	"pet-explorer/internal/platform/i18n"
	"pet-explorer/internal/ports/assets"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, cat *catalog.Catalog, svc *adoptions.Service, loc *i18n.Localizer, res assets.Resolver) {
	r.Get("/explorer", explorerHandler(cat, svc, loc, res))
}

// explorerHandler godoc
// @Summary Vista del explorador de mascotas
// @Description Lista de dos secciones: mascotas disponibles agrupadas por categoría (con flag adopted) y mascotas adoptadas en orden de adopción. Textos localizados por `Accept-Language`.
// @Tags explorer
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param Authorization header string false "Bearer token en producción"
// @Param Accept-Language header string false "Idioma preferido (ej: es-MX)"
// @Success 200 {object} View
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /explorer [get]
func explorerHandler(cat *catalog.Catalog, svc *adoptions.Service, loc *i18n.Localizer, res assets.Resolver) http.HandlerFunc {
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

		v, err := Build(r.Context(), cat, reg, loc.PrinterFor(r.Header.Get("Accept-Language")), res)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, v)
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

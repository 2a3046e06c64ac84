package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/athletes/{athleteID}", handler.GetAthletePage)
	mux.HandleFunc("GET /v1/athletes/{athleteID}/summary", handler.GetAthleteSummary)
	mux.HandleFunc("GET /v1/profiles/{athleteID}", handler.GetProfilePage)
	mux.HandleFunc("POST /v1/results", handler.SubmitResult)
}

func registerGeoRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/geo/countries", handler.ListCountries)
	mux.HandleFunc("GET /v1/geo/countries/{countryCode}/states", handler.ListStatesByCountry)
}

package utils

import (
	"encoding/json"
	"net/http"
	"sync"

	_ "github.com/gitalabs/GitaAPI/cmd/api/docs"
	"github.com/gitalabs/GitaAPI/internal/adapter"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggo/http-swagger"
)

var once sync.Once
var router *chi.Mux

func GetNewUUID() string {
	return uuid.New().String()
}

type RouterClient struct {
	Router *chi.Mux
}

func GetChiURLParam(request *http.Request, key string) string {
	return chi.URLParam(request, key)
}

func GetRouter() RouterClient {
	once.Do(func() {
		router = chi.NewRouter()
		InitSwagger(router)
		//register prometheus
		router.Handle("/metrics", promhttp.Handler())

		// Router-level misses answer in the same JSON shape as the handlers,
		// clients never see chi's plain-text default.
		router.NotFound(writeRouteError(http.StatusNotFound, "no such endpoint"))
		router.MethodNotAllowed(writeRouteError(http.StatusMethodNotAllowed, "method not allowed for this endpoint"))
	})

	return RouterClient{Router: router}
}

func InitSwagger(r *chi.Mux) {
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

func writeRouteError(code int, message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		if err := json.NewEncoder(w).Encode(adapter.BadRequest("", message, code)); err != nil {
			http.Error(w, message, code)
		}
	}
}

func ReverseStringArray(array []string) []string {
	for i, j := 0, len(array)-1; i < j; i, j = i+1, j-1 {
		array[i], array[j] = array[j], array[i]
	}
	return array
}

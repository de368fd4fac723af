package handlers

import (
	"strings"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/mdayat/prayer-surah-service/internal/metrics"
	"github.com/mdayat/prayer-surah-service/internal/services"
)

func NewRestHandler(configs configs.Configs, customMiddleware MiddlewareHandler, httpMetrics *metrics.HTTPMetrics) *chi.Mux {
	router := chi.NewRouter()

	router.Use(chiMiddleware.CleanPath)
	router.Use(chiMiddleware.RealIP)
	router.Use(customMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(httpMetrics.Middleware)

	options := cors.Options{
		AllowedOrigins:   strings.Split(configs.Env.AllowedOrigins, ","),
		AllowedMethods:   []string{"GET", "PUT", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"User-Agent", "Content-Type", "Accept", "Accept-Encoding", "Accept-Language", "Cache-Control", "Connection", "Host", "Origin", "Referer", "Authorization"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(options))
	router.Use(chiMiddleware.Heartbeat("/ping"))

	router.Method("GET", "/metrics", httpMetrics.Handler())

	prayerService := services.NewPrayerService()
	prayerHandler := NewPrayerHandler(configs, prayerService)
	router.Get("/prayerTimes", prayerHandler.GetPrayerTimes)

	router.Group(func(r chi.Router) {
		r.Use(customMiddleware.Authenticate)

		prayerSurahAyatService := services.NewPrayerSurahAyatService(configs)
		prayerSurahAyatHandler := NewPrayerSurahAyatHandler(configs, prayerSurahAyatService)
		r.Get("/prayerSurahAyat", prayerSurahAyatHandler.GetPrayerSurahAyat)
		r.Put("/prayerSurahAyat", prayerSurahAyatHandler.UpdatePrayerSurahAyat)
	})

	return router
}

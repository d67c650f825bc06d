package di

import (
	"context"
	"os"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"lp-server/api"
	"lp-server/api/places"
	"lp-server/cache"
	"lp-server/config"
	"lp-server/db"
	"lp-server/ratelimit"
	"lp-server/server"
	"lp-server/server/handlers"
	services "lp-server/service"
	"lp-server/util"

	"time"
)

// Container holds all application dependencies.
type Container struct {
	Store                 db.KVStore
	RateLimiter           *ratelimit.RateLimiter
	ResponseCache         *cache.ResponseCache
	PlacesAPI             places.PlacesAPI
	SearchService         *services.SearchService
	SearchHandler         *handlers.SearchHandler
	MuxRouter             *mux.Router
	Router                *server.Router
	LunchPickerHttpServer *server.LunchPickerHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(cfg *config.Config) *Container {
	ctx := context.Background()

	// Redis when configured and reachable, in-memory otherwise
	var store db.KVStore
	if cfg.RedisAddr != "" {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		redisStore := db.NewRedisKVStore(redisInternalClient)
		if err := redisStore.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).
				Msg("redis unreachable, falling back to in-memory store")
			store = db.NewMemoryKVStore()
		} else {
			log.Info().Str("addr", cfg.RedisAddr).Msg("using redis store")
			store = redisStore
		}
	} else {
		log.Info().Msg("using in-memory store")
		store = db.NewMemoryKVStore()
	}

	rateLimiter := ratelimit.NewRateLimiter(
		store,
		cfg.RateLimitCapacity,
		time.Duration(cfg.RateLimitIntervalSec)*time.Second,
		time.Duration(cfg.RateBucketTTLSec)*time.Second,
	)
	responseCache := cache.NewResponseCache(store)

	// Live places client only with an API key, mock otherwise
	var placesAPI places.PlacesAPI
	mockData := cfg.PlacesAPIKey == ""
	if mockData {
		log.Info().Msg("using mock places api")
		placesAPI = newMockPlacesClient()
	} else {
		log.Info().Msg("using live places api")
		httpClient := api.NewHTTPClient(cfg.PlacesEndpointBase)
		placesAPI = places.NewPlacesApiClient(httpClient, cfg.PlacesAPIKey, cfg.PlacesLanguageCode)
	}

	searchService := services.NewSearchService(
		rateLimiter,
		responseCache,
		services.NewPlaceScorer(),
		placesAPI,
		mockData,
		cfg.CacheTTLSec,
		cfg.MockCacheTTLSec,
	)

	searchHandler := handlers.NewSearchHandler(searchService, []byte(cfg.JWTSigningKey))

	muxRouter := mux.NewRouter()
	router := server.NewRouter(searchHandler, muxRouter, cfg.EnableDebugPlot)
	httpServer := server.NewLunchPickerHttpServer(router, muxRouter, cfg.ServerAddr)

	return &Container{
		Store:                 store,
		RateLimiter:           rateLimiter,
		ResponseCache:         responseCache,
		PlacesAPI:             placesAPI,
		SearchService:         searchService,
		SearchHandler:         searchHandler,
		MuxRouter:             muxRouter,
		Router:                router,
		LunchPickerHttpServer: httpServer,
	}
}

// newMockPlacesClient loads the catalog override from resources/ when the
// file exists, otherwise falls back to the built-in catalog.
func newMockPlacesClient() places.PlacesAPI {
	catalogPath := config.GetResourcePath(config.MOCK_CATALOG_RESOURCE)
	if _, err := os.Stat(catalogPath); err != nil {
		return places.NewPlacesApiClientMock()
	}

	catalog, err := util.ReadMockCatalogFromJSON(catalogPath)
	if err != nil {
		log.Warn().Err(err).Str("path", catalogPath).Msg("failed to read mock catalog, using built-in")
		return places.NewPlacesApiClientMock()
	}
	log.Info().Str("path", catalogPath).Int("places", len(catalog)).Msg("loaded mock catalog")
	return places.NewPlacesApiClientMockWithCatalog(catalog)
}

package main

import (
	"context"
	"net/http"

	"intown-api/internal/config"
	"intown-api/internal/handler"
	"intown-api/internal/locate"
	"intown-api/internal/models"
	"intown-api/internal/nominatim"
	"intown-api/internal/repository"
	"intown-api/internal/service"
	"intown-api/internal/shops"
	"intown-api/internal/store"
	"intown-api/internal/uploads"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// External clients
	geocoder := nominatim.NewClient(
		nominatim.WithBaseURL(config.NominatimBaseURL),
		nominatim.WithCountryCode(config.CountryCode),
	)
	merchantClient := shops.NewClient(config.MerchantAPIToken, shops.WithBaseURL(config.MerchantAPIURL))
	finder := shops.NewFinder(merchantClient)

	// Location store, hydrated from disk
	locations := store.New(store.NewFileStorage(config.LocationFile))
	locations.Load()

	// The server has no device positioning, so the resolver runs over a
	// static provider fixed at the default city. Permission prompts are
	// a device concern too and always report granted here.
	resolver := locate.NewResolver(&locate.Static{Position: models.Coordinates{
		Latitude:  models.DefaultLatitude,
		Longitude: models.DefaultLongitude,
	}})
	gate := locate.NewGate(locate.AlwaysGranted{}, locations)

	uploader, err := uploads.NewS3Uploader(context.Background(), config.S3Bucket, config.AWSRegion)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot initialize s3 uploader")
	}

	// Initialize layers
	repo := repository.NewRepository(conn)

	geoCodeService := service.NewGeoCodeService(geocoder)
	reverseGeocodeService := service.NewReverseGeoCodeService(geocoder)
	shopService := service.NewShopService(repo)
	locationService := service.NewLocationService(resolver, geocoder, locations)
	paymentService := service.NewPaymentService()
	authService := service.NewAuthService()
	registrationService := service.NewRegistrationService()

	geoCodeHandler := handler.NewGeoCodeHandler(geoCodeService)
	reverseGeocodeHandler := handler.NewReverseGeocodeHandler(reverseGeocodeService)
	shopHandler := handler.NewShopHandler(shopService)
	searchHandler := handler.NewSearchHandler(finder)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	transactionsHandler := handler.NewTransactionsHandler(merchantClient)
	uploadHandler := handler.NewUploadHandler(uploader)
	locationHandler := handler.NewLocationHandler(locationService, gate, locations)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", reverseGeocodeHandler.ReverseGeocode)

	api := r.Group("/api")
	{
		api.GET("/shops", shopHandler.Shops)
		api.GET("/plans", shopHandler.Plans)
		api.GET("/categories", shopHandler.Categories)
		api.GET("/search", searchHandler.Search)
		api.POST("/payment", paymentHandler.Pay)
		api.POST("/send-otp", authHandler.SendOTP)
		api.POST("/verify-otp", authHandler.VerifyOTP)
		api.POST("/customer", registrationHandler.RegisterCustomer)
		api.POST("/merchant", registrationHandler.RegisterMerchant)
		api.GET("/transactions/customers/:id", transactionsHandler.CustomerTransactions)
		api.GET("/transactions/merchants/:id", transactionsHandler.MerchantSales)
		api.POST("/s3/upload", uploadHandler.Upload)
		api.GET("/location", locationHandler.Current)
		api.POST("/location/refresh", locationHandler.Refresh)
		api.POST("/location/select", locationHandler.Select)
		api.DELETE("/location", locationHandler.Clear)
	}

	r.Run(config.ServerAddress)
}

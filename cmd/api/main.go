package main

import (
	"context"
	"log"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"buildandbeyond/internal/adapter/api"
	"buildandbeyond/internal/adapter/api/handler"
	apimiddleware "buildandbeyond/internal/adapter/api/middleware"
	"buildandbeyond/internal/adapter/api/router"
	"buildandbeyond/internal/adapter/repository"
	domainrepo "buildandbeyond/internal/domain/repository"
	"buildandbeyond/internal/infrastructure/firebase"
	"buildandbeyond/internal/infrastructure/ratelimit"
	"buildandbeyond/internal/infrastructure/websocket"
	"buildandbeyond/internal/usecase"
	"buildandbeyond/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
		log.Printf("Using Firebase service account from file: %s", path)
		opts = append(opts, option.WithCredentialsFile(path))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	customerRepo := repository.NewFirestoreCustomerRepository(firestoreClient)
	workerRepo := repository.NewFirestoreWorkerRepository(firestoreClient)
	companyRepo := repository.NewFirestoreCompanyRepository(firestoreClient)
	bidRepo := repository.NewFirestoreBidRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	applicationRepo := repository.NewFirestoreApplicationRepository(firestoreClient)

	hireRequestRepo := repository.NewFirestoreHireRequestRepository(firestoreClient)
	registry := domainrepo.NewEngagementRegistry(
		repository.NewFirestoreArchitectHiringRepository(firestoreClient),
		repository.NewFirestoreDesignRequestRepository(firestoreClient),
		repository.NewFirestoreConstructionProjectRepository(firestoreClient),
		hireRequestRepo,
	)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	chatUseCase := usecase.NewChatUseCase(chatRepo, registry, wsManager, rateLimiter)
	engagementUseCase := usecase.NewEngagementUseCase(registry, workerRepo, chatUseCase)
	bidUseCase := usecase.NewBidUseCase(bidRepo, companyRepo, registry, rateLimiter)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo)
	hiringUseCase := usecase.NewHiringUseCase(hireRequestRepo, applicationRepo, workerRepo, chatUseCase, rateLimiter)
	adminUseCase := usecase.NewAdminUseCase(customerRepo, workerRepo, companyRepo, bidRepo, registry)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	handler.Setup(engagementUseCase, bidUseCase, favoriteUseCase, hiringUseCase, adminUseCase, firebaseAuthClient)

	var devTokens *firebase.DevTokenService
	if cfg.Environment == "development" {
		devTokens = firebase.NewDevTokenService(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)
		handler.SetupDevTokenHandler(devTokens)
	}

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient, devTokens)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	chatHandler := handler.NewChatHandler(chatUseCase)
	wsHandler := handler.NewWebSocketHandler(wsManager, chatUseCase)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, chatHandler, authMiddleware)
	router.SetupWebSocketRouter(e, wsHandler, authMiddleware)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

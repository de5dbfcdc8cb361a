package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aromance-api/internal/config"
	"github.com/aromance-api/internal/infrastructure/dynamo"
	googleinfra "github.com/aromance-api/internal/infrastructure/google"
	jwtinfra "github.com/aromance-api/internal/infrastructure/jwt"
	s3infra "github.com/aromance-api/internal/infrastructure/s3"
	"github.com/aromance-api/internal/infrastructure/smtp"
	"github.com/aromance-api/internal/infrastructure/sns"
	transporthttp "github.com/aromance-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		log.Printf("WARN: JWT provider not available: %v", err)
	}

	// S3 store for product images.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	// Google ID token verifier (optional — identity claims are disabled without it).
	var googleVerifier *googleinfra.Verifier
	if cfg.GoogleClientID != "" {
		googleVerifier = googleinfra.NewVerifier(cfg.GoogleClientID)
	} else {
		log.Println("WARN: GOOGLE_CLIENT_ID not set, Google claims disabled")
	}

	deps := &transporthttp.Deps{
		ProfileRepo:        dynamo.NewProfileRepo(dynamoClient, cfg.DynamoTables.Profiles),
		IdentityRepo:       dynamo.NewIdentityRepo(dynamoClient, cfg.DynamoTables.Identities),
		ProductRepo:        dynamo.NewProductRepo(dynamoClient, cfg.DynamoTables.Products),
		ReviewRepo:         dynamo.NewReviewRepo(dynamoClient, cfg.DynamoTables.Reviews),
		RecommendationRepo: dynamo.NewRecommendationRepo(dynamoClient, cfg.DynamoTables.Recommendations),
		TransactionRepo:    dynamo.NewTransactionRepo(dynamoClient, cfg.DynamoTables.Transactions),
		SubscriptionRepo:   dynamo.NewSubscriptionRepo(dynamoClient, cfg.DynamoTables.Subscriptions),
		ReportRepo:         dynamo.NewReportRepo(dynamoClient, cfg.DynamoTables.Reports),
		AdvertisementRepo:  dynamo.NewAdvertisementRepo(dynamoClient, cfg.DynamoTables.Advertisements),
		InvestmentRepo:     dynamo.NewInvestmentRepo(dynamoClient, cfg.DynamoTables.Investments),
		CounterRepo:        dynamo.NewCounterRepo(dynamoClient, cfg.DynamoTables.Counters),
		S3Store:            s3Store,
		Mailer:             mailer,
		SMSSender:          smsSender,
		JWTProvider:        jwtProvider,
		GoogleVerifier:     googleVerifier,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}

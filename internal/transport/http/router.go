package http

import (
	"net/http"

	"github.com/aromance-api/internal/application/advertising"
	"github.com/aromance-api/internal/application/analytics"
	"github.com/aromance-api/internal/application/auth"
	"github.com/aromance-api/internal/application/product"
	"github.com/aromance-api/internal/application/profile"
	"github.com/aromance-api/internal/application/recommendation"
	"github.com/aromance-api/internal/application/review"
	"github.com/aromance-api/internal/application/staking"
	"github.com/aromance-api/internal/application/stats"
	"github.com/aromance-api/internal/application/transaction"
	"github.com/aromance-api/internal/application/treasury"
	"github.com/aromance-api/internal/config"
	"github.com/aromance-api/internal/infrastructure/dynamo"
	googleinfra "github.com/aromance-api/internal/infrastructure/google"
	jwtinfra "github.com/aromance-api/internal/infrastructure/jwt"
	s3infra "github.com/aromance-api/internal/infrastructure/s3"
	"github.com/aromance-api/internal/infrastructure/smtp"
	"github.com/aromance-api/internal/infrastructure/sns"
	"github.com/aromance-api/internal/transport/http/handler"
	appmiddleware "github.com/aromance-api/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	ProfileRepo        *dynamo.ProfileRepo
	IdentityRepo       *dynamo.IdentityRepo
	ProductRepo        *dynamo.ProductRepo
	ReviewRepo         *dynamo.ReviewRepo
	RecommendationRepo *dynamo.RecommendationRepo
	TransactionRepo    *dynamo.TransactionRepo
	SubscriptionRepo   *dynamo.SubscriptionRepo
	ReportRepo         *dynamo.ReportRepo
	AdvertisementRepo  *dynamo.AdvertisementRepo
	InvestmentRepo     *dynamo.InvestmentRepo
	CounterRepo        *dynamo.CounterRepo
	S3Store            *s3infra.Store
	Mailer             smtp.Mailer
	SMSSender          sns.SMSSender
	JWTProvider        *jwtinfra.Provider
	GoogleVerifier     *googleinfra.Verifier
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	var authMw func(http.Handler) http.Handler
	if deps.JWTProvider != nil {
		authMw = appmiddleware.Auth(deps.JWTProvider)
	} else {
		authMw = func(next http.Handler) http.Handler { return next }
	}

	// 5 requests/second, burst of 10. Applied to sensitive public endpoints.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	profileDeps := profile.ServiceDeps{
		ProfileRepo:  deps.ProfileRepo,
		IdentityRepo: deps.IdentityRepo,
	}
	if deps.GoogleVerifier != nil {
		profileDeps.Google = deps.GoogleVerifier
	}
	profileSvc := profile.NewService(profileDeps)

	stakingDeps := staking.ServiceDeps{
		ProfileRepo: deps.ProfileRepo,
		CounterRepo: deps.CounterRepo,
	}
	if deps.SMSSender != nil {
		stakingDeps.SMSSender = deps.SMSSender
	}
	if deps.Mailer != nil {
		stakingDeps.Mailer = deps.Mailer
	}
	stakingSvc := staking.NewService(stakingDeps)

	productDeps := product.ServiceDeps{
		ProductRepo: deps.ProductRepo,
		ProfileRepo: deps.ProfileRepo,
	}
	if deps.S3Store != nil {
		productDeps.ImageStore = deps.S3Store
	}
	productSvc := product.NewService(productDeps)

	reviewSvc := review.NewService(review.ServiceDeps{
		ReviewRepo:  deps.ReviewRepo,
		ProfileRepo: deps.ProfileRepo,
		ProductRepo: deps.ProductRepo,
	})
	recommendationSvc := recommendation.NewService(recommendation.ServiceDeps{
		ProfileRepo:        deps.ProfileRepo,
		IdentityRepo:       deps.IdentityRepo,
		ProductRepo:        deps.ProductRepo,
		RecommendationRepo: deps.RecommendationRepo,
	})
	transactionSvc := transaction.NewService(transaction.ServiceDeps{
		TransactionRepo: deps.TransactionRepo,
		ProductRepo:     deps.ProductRepo,
	})
	treasurySvc := treasury.NewService(treasury.ServiceDeps{
		InvestmentRepo: deps.InvestmentRepo,
	})
	analyticsSvc := analytics.NewService(analytics.ServiceDeps{
		SubscriptionRepo: deps.SubscriptionRepo,
		ReportRepo:       deps.ReportRepo,
		TransactionRepo:  deps.TransactionRepo,
		ProfileRepo:      deps.ProfileRepo,
	})
	advertisingSvc := advertising.NewService(advertising.ServiceDeps{
		AdRepo:      deps.AdvertisementRepo,
		ProductRepo: deps.ProductRepo,
	})
	statsSvc := stats.NewService(stats.ServiceDeps{
		ProfileRepo:     deps.ProfileRepo,
		ProductRepo:     deps.ProductRepo,
		TransactionRepo: deps.TransactionRepo,
		ReviewRepo:      deps.ReviewRepo,
		CounterRepo:     deps.CounterRepo,
	})
	authDeps := auth.ServiceDeps{OperatorPasswordHash: cfg.OperatorPasswordHash}
	if deps.JWTProvider != nil {
		authDeps.JWTProvider = deps.JWTProvider
	}
	authSvc := auth.NewService(authDeps)

	healthH := handler.NewHealthHandler()
	profileH := handler.NewProfileHandler(profileSvc)
	stakingH := handler.NewStakingHandler(stakingSvc)
	productH := handler.NewProductHandler(productSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	recommendationH := handler.NewRecommendationHandler(recommendationSvc)
	transactionH := handler.NewTransactionHandler(transactionSvc)
	treasuryH := handler.NewTreasuryHandler(treasurySvc)
	analyticsH := handler.NewAnalyticsHandler(analyticsSvc)
	adH := handler.NewAdvertisementHandler(advertisingSvc)
	statsH := handler.NewStatsHandler(statsSvc)
	authH := handler.NewAuthHandler(authSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)
		r.With(sensitiveRL.Limit).Post("/auth/operator-token", authH.OperatorToken)
		r.With(sensitiveRL.Limit).Post("/profiles", profileH.Create)
		r.Get("/products", productH.List)
		r.Get("/products/search", productH.Search)
		r.Get("/products/halal", productH.Halal)
		r.Get("/products/personality/{personality}", productH.SearchByPersonality)
		r.Get("/products/{id}", productH.Get)
		r.Get("/products/{id}/images", productH.Images)
		r.Get("/products/{id}/reviews", reviewH.ListByProduct)
		r.Get("/sellers/{id}/products", productH.ListBySeller)
		r.Get("/advertisements/active", adH.ActiveByPlacement)
		r.Get("/stats/platform", statsH.Platform)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/profiles/{id}", profileH.Get)
			r.Post("/profiles/{id}/identities", profileH.CreateIdentity)
			r.Get("/identities/{did}", profileH.GetIdentity)
			r.Put("/identities/{did}/permissions", profileH.UpdatePermissions)
			r.With(sensitiveRL.Limit).Post("/identities/{did}/claims/google", profileH.AttachGoogleClaim)

			r.Post("/profiles/{id}/stake", stakingH.Stake)
			r.Get("/staking/pool", stakingH.StakePool)

			r.Post("/products", productH.Add)
			r.Post("/products/{id}/images", productH.UploadImage)

			r.Post("/reviews", reviewH.Create)

			r.Post("/transactions", transactionH.Create)
			r.Get("/users/{id}/transactions", transactionH.ListByUser)

			r.Post("/users/{id}/recommendations", recommendationH.Generate)
			r.Get("/users/{id}/recommendations", recommendationH.ListForUser)

			r.Post("/analytics/subscriptions", analyticsH.Subscribe)
			r.Post("/sellers/{id}/reports", analyticsH.GenerateReport)
			r.Get("/sellers/{id}/reports", analyticsH.ListReports)

			r.Post("/advertisements", adH.Create)

			// Operator-only routes
			r.Group(func(r chi.Router) {
				r.Use(appmiddleware.RequireRole(auth.RoleOperator))

				r.Post("/profiles/{id}/penalties", stakingH.Penalize)
				r.Post("/staking/accrue", stakingH.AccrueRewards)

				r.Put("/products/{id}/halal-certification", productH.SetHalalCertification)
				r.Put("/products/{id}/ai-analysis", productH.UpdateAIAnalysis)

				r.Post("/treasury/investments", treasuryH.Invest)
				r.Get("/treasury/investments", treasuryH.List)
				r.Get("/treasury/returns", treasuryH.TotalReturns)
				r.Post("/treasury/allocations", treasuryH.AllocateMonthly)
			})
		})
	})

	return r
}

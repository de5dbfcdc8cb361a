package product

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aromance-api/internal/domain"
	s3infra "github.com/aromance-api/internal/infrastructure/s3"
	"github.com/aromance-api/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldHalalCertified     = "halal_certified"
	fieldAIAnalyzed         = "ai_analyzed"
	fieldPersonalityMatches = "personality_matches"
	fieldImageURLs          = "image_urls"
)

type Service interface {
	Add(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error)
	SearchAdvanced(ctx context.Context, filter domain.ProductSearchFilter) ([]domain.Product, error)
	SearchByPersonality(ctx context.Context, personalityType string) ([]domain.Product, error)
	HalalProducts(ctx context.Context) ([]domain.Product, error)
	SetHalalCertification(ctx context.Context, productID string, certified bool) error
	UpdateAIAnalysis(ctx context.Context, productID string, personalityMatches []string) error
	UploadImage(ctx context.Context, productID, filename string, r io.Reader) (string, error)
	ImageURLs(ctx context.Context, productID string) ([]string, error)
}

type productStore interface {
	Put(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
	ScanAll(ctx context.Context) ([]domain.Product, error)
}

type profileStore interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
}

type imageStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type service struct {
	products productStore
	profiles profileStore
	images   imageStore
	now      func() time.Time
}

type ServiceDeps struct {
	ProductRepo productStore
	ProfileRepo profileStore
	ImageStore  imageStore // optional, UploadImage fails without it
	Now         func() time.Time
}

func NewService(deps ServiceDeps) Service {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		products: deps.ProductRepo,
		profiles: deps.ProfileRepo,
		images:   deps.ImageStore,
		now:      now,
	}
}

func (s *service) ready() error {
	if s.products == nil || s.profiles == nil {
		return domain.ErrStorageUninitialized
	}
	return nil
}

// Add lists a new product. The seller's current verification bucket is
// frozen onto the listing so buyers see what it was at listing time.
func (s *service) Add(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	seller, err := s.profiles.Get(ctx, req.SellerID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	p := &domain.Product{
		ProductID:          id.New(),
		SellerID:           req.SellerID,
		SellerVerification: seller.VerificationStatus,
		Name:               req.Name,
		Brand:              req.Brand,
		PriceIDR:           req.PriceIDR,
		FragranceFamily:    req.FragranceFamily,
		TopNotes:           req.TopNotes,
		MiddleNotes:        req.MiddleNotes,
		BaseNotes:          req.BaseNotes,
		Occasion:           req.Occasion,
		Season:             req.Season,
		Longevity:          domain.LongevityRating(req.Longevity),
		Sillage:            domain.SillageRating(req.Sillage),
		Projection:         domain.ProjectionRating(req.Projection),
		VersatilityScore:   req.VersatilityScore,
		Description:        req.Description,
		Ingredients:        req.Ingredients,
		HalalCertified:     req.HalalCertified,
		Stock:              req.Stock,
		Verified:           seller.VerificationStatus != domain.StatusUnverified,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.products.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.products.Get(ctx, productID)
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.products.ScanAll(ctx)
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchAdvanced applies every set filter conjunctively. Family, occasion
// and season match by case-insensitive substring.
func (s *service) SearchAdvanced(ctx context.Context, filter domain.ProductSearchFilter) ([]domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if matchesFilter(&p, filter) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matchesFilter(p *domain.Product, f domain.ProductSearchFilter) bool {
	if f.FragranceFamily != nil &&
		!strings.Contains(strings.ToLower(p.FragranceFamily), strings.ToLower(*f.FragranceFamily)) {
		return false
	}
	if f.BudgetMin != nil && p.PriceIDR < *f.BudgetMin {
		return false
	}
	if f.BudgetMax != nil && p.PriceIDR > *f.BudgetMax {
		return false
	}
	if f.Occasion != nil && !anyContains(p.Occasion, *f.Occasion) {
		return false
	}
	if f.Season != nil && !anyContains(p.Season, *f.Season) {
		return false
	}
	if f.VerifiedOnly && !p.Verified {
		return false
	}
	return true
}

func anyContains(values []string, substr string) bool {
	needle := strings.ToLower(substr)
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// SearchByPersonality matches the tag exactly, not by substring.
func (s *service) SearchByPersonality(ctx context.Context, personalityType string) ([]domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		for _, match := range p.PersonalityMatches {
			if match == personalityType {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s *service) HalalProducts(ctx context.Context) ([]domain.Product, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	products, err := s.products.ScanAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.HalalCertified {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *service) SetHalalCertification(ctx context.Context, productID string, certified bool) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.products.Get(ctx, productID); err != nil {
		return err
	}
	return s.products.Update(ctx, productID, map[string]interface{}{fieldHalalCertified: certified})
}

// UpdateAIAnalysis replaces the product's personality tags and marks it
// analyzed.
func (s *service) UpdateAIAnalysis(ctx context.Context, productID string, personalityMatches []string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.products.Get(ctx, productID); err != nil {
		return err
	}
	return s.products.Update(ctx, productID, map[string]interface{}{
		fieldPersonalityMatches: personalityMatches,
		fieldAIAnalyzed:         true,
	})
}

// UploadImage stores the image under the product's key prefix and appends
// the resulting URL to the listing.
func (s *service) UploadImage(ctx context.Context, productID, filename string, r io.Reader) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if s.images == nil {
		return "", fmt.Errorf("image storage not configured: %w", domain.ErrBadRequest)
	}
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("products/%s/%s%s", productID, id.New(), path.Ext(filename))
	url, err := s.images.Upload(ctx, key, r, s3infra.DetectContentType(filename))
	if err != nil {
		return "", err
	}
	urls := append(p.ImageURLs, url)
	if err := s.products.Update(ctx, productID, map[string]interface{}{fieldImageURLs: urls}); err != nil {
		return "", err
	}
	return url, nil
}

// Presigned image links stay valid long enough for a page load plus retries.
const imageURLTTL = 15 * time.Minute

// ImageURLs returns time-limited download links for the product's stored
// images.
func (s *service) ImageURLs(ctx context.Context, productID string) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if s.images == nil {
		return nil, fmt.Errorf("image storage not configured: %w", domain.ErrBadRequest)
	}
	p, err := s.products.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	urls := make([]string, 0, len(p.ImageURLs))
	for _, stored := range p.ImageURLs {
		signed, err := s.images.PresignedURL(ctx, objectKey(stored), imageURLTTL)
		if err != nil {
			return nil, err
		}
		urls = append(urls, signed)
	}
	return urls, nil
}

// objectKey strips the s3://bucket/ prefix Upload produces, leaving the
// object key.
func objectKey(url string) string {
	rest, ok := strings.CutPrefix(url, "s3://")
	if !ok {
		return url
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[i+1:]
	}
	return rest
}

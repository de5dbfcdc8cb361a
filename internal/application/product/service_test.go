package product

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aromance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Put(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductStore) Get(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if p, _ := args.Get(0).(*domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductStore) Update(ctx context.Context, productID string, updates map[string]interface{}) error {
	return m.Called(ctx, productID, updates).Error(0)
}
func (m *mockProductStore) ScanAll(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}

type mockProfileStore struct{ mock.Mock }

func (m *mockProfileStore) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	args := m.Called(ctx, userID)
	if p, _ := args.Get(0).(*domain.UserProfile); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}

// --- helpers ---

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(prods *mockProductStore, profs *mockProfileStore, imgs *mockImageStore) Service {
	deps := ServiceDeps{
		ProductRepo: prods,
		ProfileRepo: profs,
		Now:         func() time.Time { return fixedNow },
	}
	if imgs != nil {
		deps.ImageStore = imgs
	}
	return NewService(deps)
}

func catalog() []domain.Product {
	return []domain.Product{
		{
			ProductID:       "p1",
			SellerID:        "s1",
			FragranceFamily: "Floral Oriental",
			PriceIDR:        150_000,
			Occasion:        []string{"office", "daily"},
			Season:          []string{"spring"},
			Verified:        true,
			HalalCertified:  true,
		},
		{
			ProductID:          "p2",
			SellerID:           "s2",
			FragranceFamily:    "Woody",
			PriceIDR:           600_000,
			Occasion:           []string{"night out"},
			Season:             []string{"winter"},
			PersonalityMatches: []string{"bold"},
		},
	}
}

// --- Add ---

func TestAdd_FreezesSellerVerification(t *testing.T) {
	prods := new(mockProductStore)
	profs := new(mockProfileStore)
	profs.On("Get", mock.Anything, "s1").Return(&domain.UserProfile{
		UserID:             "s1",
		VerificationStatus: domain.StatusPremium,
	}, nil)
	prods.On("Put", mock.Anything, mock.Anything).Return(nil)

	p, err := newService(prods, profs, nil).Add(context.Background(), domain.CreateProductRequest{
		SellerID:        "s1",
		Name:            "Midnight Oud",
		PriceIDR:        450_000,
		FragranceFamily: "Oriental",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ProductID)
	assert.Equal(t, domain.StatusPremium, p.SellerVerification)
	assert.True(t, p.Verified)
	assert.Equal(t, fixedNow, p.CreatedAt)
}

func TestAdd_UnverifiedSellerListingNotVerified(t *testing.T) {
	prods := new(mockProductStore)
	profs := new(mockProfileStore)
	profs.On("Get", mock.Anything, "s1").Return(&domain.UserProfile{
		UserID:             "s1",
		VerificationStatus: domain.StatusUnverified,
	}, nil)
	prods.On("Put", mock.Anything, mock.Anything).Return(nil)

	p, err := newService(prods, profs, nil).Add(context.Background(), domain.CreateProductRequest{
		SellerID:        "s1",
		Name:            "Fresh Citrus",
		PriceIDR:        80_000,
		FragranceFamily: "Citrus",
	})
	require.NoError(t, err)
	assert.False(t, p.Verified)
}

func TestAdd_SellerNotFound(t *testing.T) {
	profs := new(mockProfileStore)
	profs.On("Get", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := newService(new(mockProductStore), profs, nil).Add(context.Background(), domain.CreateProductRequest{
		SellerID: "missing",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// --- SearchAdvanced ---

func TestSearchAdvanced_FamilySubstring(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	family := "floral"
	out, err := newService(prods, new(mockProfileStore), nil).
		SearchAdvanced(context.Background(), domain.ProductSearchFilter{FragranceFamily: &family})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProductID)
}

func TestSearchAdvanced_BudgetWindowInclusive(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	min := uint64(150_000)
	max := uint64(600_000)
	out, err := newService(prods, new(mockProfileStore), nil).
		SearchAdvanced(context.Background(), domain.ProductSearchFilter{BudgetMin: &min, BudgetMax: &max})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestSearchAdvanced_VerifiedOnly(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	out, err := newService(prods, new(mockProfileStore), nil).
		SearchAdvanced(context.Background(), domain.ProductSearchFilter{VerifiedOnly: true})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProductID)
}

func TestSearchAdvanced_ConjunctiveFilters(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	occasion := "office"
	season := "winter"
	out, err := newService(prods, new(mockProfileStore), nil).
		SearchAdvanced(context.Background(), domain.ProductSearchFilter{Occasion: &occasion, Season: &season})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSearchAdvanced_NoFiltersReturnsAll(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	out, err := newService(prods, new(mockProfileStore), nil).
		SearchAdvanced(context.Background(), domain.ProductSearchFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// --- SearchByPersonality ---

func TestSearchByPersonality_ExactTagMatch(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	svc := newService(prods, new(mockProfileStore), nil)
	out, err := svc.SearchByPersonality(context.Background(), "bold")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p2", out[0].ProductID)

	out, err = svc.SearchByPersonality(context.Background(), "bol")
	require.NoError(t, err)
	assert.Empty(t, out)
}

// --- HalalProducts / SetHalalCertification ---

func TestHalalProducts_FiltersCertified(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("ScanAll", mock.Anything).Return(catalog(), nil)

	out, err := newService(prods, new(mockProfileStore), nil).HalalProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ProductID)
}

func TestSetHalalCertification_Updates(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("Get", mock.Anything, "p2").Return(&domain.Product{ProductID: "p2"}, nil)
	prods.On("Update", mock.Anything, "p2", map[string]interface{}{fieldHalalCertified: true}).Return(nil)

	err := newService(prods, new(mockProfileStore), nil).
		SetHalalCertification(context.Background(), "p2", true)
	require.NoError(t, err)
	prods.AssertExpectations(t)
}

func TestSetHalalCertification_ProductNotFound(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	err := newService(prods, new(mockProfileStore), nil).
		SetHalalCertification(context.Background(), "missing", true)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// --- UpdateAIAnalysis ---

func TestUpdateAIAnalysis_ReplacesTagsAndMarksAnalyzed(t *testing.T) {
	prods := new(mockProductStore)
	prods.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1"}, nil)
	prods.On("Update", mock.Anything, "p1", map[string]interface{}{
		fieldPersonalityMatches: []string{"romantic", "elegant"},
		fieldAIAnalyzed:         true,
	}).Return(nil)

	err := newService(prods, new(mockProfileStore), nil).
		UpdateAIAnalysis(context.Background(), "p1", []string{"romantic", "elegant"})
	require.NoError(t, err)
	prods.AssertExpectations(t)
}

// --- UploadImage ---

func TestUploadImage_AppendsURL(t *testing.T) {
	prods := new(mockProductStore)
	imgs := new(mockImageStore)
	prods.On("Get", mock.Anything, "p1").Return(&domain.Product{
		ProductID: "p1",
		ImageURLs: []string{"s3://bucket/products/p1/old.jpg"},
	}, nil)
	imgs.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "products/p1/") && strings.HasSuffix(key, ".jpg")
	}), mock.Anything, "image/jpeg").Return("s3://bucket/products/p1/new.jpg", nil)
	prods.On("Update", mock.Anything, "p1", mock.MatchedBy(func(updates map[string]interface{}) bool {
		urls, ok := updates[fieldImageURLs].([]string)
		return ok && len(urls) == 2 && urls[1] == "s3://bucket/products/p1/new.jpg"
	})).Return(nil)

	url, err := newService(prods, new(mockProfileStore), imgs).
		UploadImage(context.Background(), "p1", "photo.jpg", bytes.NewReader([]byte("img")))
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/products/p1/new.jpg", url)
	prods.AssertExpectations(t)
}

// --- ImageURLs ---

func TestImageURLs_SignsStoredObjects(t *testing.T) {
	prods := new(mockProductStore)
	imgs := new(mockImageStore)
	prods.On("Get", mock.Anything, "p1").Return(&domain.Product{
		ProductID: "p1",
		ImageURLs: []string{"s3://bucket/products/p1/a.jpg", "s3://bucket/products/p1/b.png"},
	}, nil)
	imgs.On("PresignedURL", mock.Anything, "products/p1/a.jpg", imageURLTTL).
		Return("https://bucket.s3.amazonaws.com/products/p1/a.jpg?sig=1", nil)
	imgs.On("PresignedURL", mock.Anything, "products/p1/b.png", imageURLTTL).
		Return("https://bucket.s3.amazonaws.com/products/p1/b.png?sig=2", nil)

	urls, err := newService(prods, new(mockProfileStore), imgs).
		ImageURLs(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://bucket.s3.amazonaws.com/products/p1/a.jpg?sig=1",
		"https://bucket.s3.amazonaws.com/products/p1/b.png?sig=2",
	}, urls)
	imgs.AssertExpectations(t)
}

func TestImageURLs_NotConfigured(t *testing.T) {
	_, err := newService(new(mockProductStore), new(mockProfileStore), nil).
		ImageURLs(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestUploadImage_NotConfigured(t *testing.T) {
	_, err := newService(new(mockProductStore), new(mockProfileStore), nil).
		UploadImage(context.Background(), "p1", "photo.jpg", bytes.NewReader(nil))
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestGet_StorageUninitialized(t *testing.T) {
	svc := NewService(ServiceDeps{})
	_, err := svc.Get(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrStorageUninitialized)
}

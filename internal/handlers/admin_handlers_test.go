package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ElkinVA/MyBiz-Project/internal/catalog"
	"github.com/ElkinVA/MyBiz-Project/internal/handlers"
	"github.com/ElkinVA/MyBiz-Project/internal/models"
)

// These tests cover the request validation layer, which rejects bad input
// before any store call happens.

func newAdminHandlers() *handlers.Handlers {
	gin.SetMode(gin.TestMode)
	return &handlers.Handlers{Log: zap.NewNop()}
}

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.POST("/x", handler)
	req := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func putJSON(t *testing.T, handler gin.HandlerFunc, id, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.PUT("/x/:id", handler)
	req := httptest.NewRequest(http.MethodPut, "/x/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateProductRejectsBadInput(t *testing.T) {
	h := newAdminHandlers()

	// Missing required fields.
	w := postJSON(t, h.AdminCreateProduct, `{"name": "Thing"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Zero price fails the gt=0 rule.
	w = postJSON(t, h.AdminCreateProduct, `{"categoryId": 1, "name": "Thing", "price": 0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A discount above the list price never reaches the store.
	w = postJSON(t, h.AdminCreateProduct,
		`{"categoryId": 1, "name": "Thing", "price": 50, "discountPrice": 80}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "discountPrice")
}

func TestUpdateProductRejectsBadInput(t *testing.T) {
	h := newAdminHandlers()

	w := putJSON(t, h.AdminUpdateProduct, "abc", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "non-numeric id")

	w = putJSON(t, h.AdminUpdateProduct, "0", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "id below 1")

	w = putJSON(t, h.AdminUpdateProduct, "1", `{"price": 50, "discountPrice": 80}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "discount above price")

	w = putJSON(t, h.AdminUpdateProduct, "1", `{"rating": 7}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "rating above 5")
}

func TestUpdateProductDiscountCheckedAgainstStoredRow(t *testing.T) {
	h := newAdminHandlers()
	fake := &fakeCatalogAdmin{product: &models.Product{ID: 1, Price: 50}}
	h.CatalogAdmin = fake

	// A discount sent on its own is checked against the stored price.
	w := putJSON(t, h.AdminUpdateProduct, "1", `{"discountPrice": 80}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, fake.updated, "invalid patch must not reach the store")

	w = putJSON(t, h.AdminUpdateProduct, "1", `{"discountPrice": 40}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, fake.updated, 1)

	// Lowering the price below a stored discount is just as invalid.
	d := 45.0
	fake.product.DiscountPrice = &d
	w = putJSON(t, h.AdminUpdateProduct, "1", `{"price": 40}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Clearing the discount in the same request makes the lower price fine.
	w = putJSON(t, h.AdminUpdateProduct, "1", `{"price": 40, "discountPrice": 0}`)
	assert.Equal(t, http.StatusOK, w.Code)

	// An unknown product surfaces as 404, not a skipped check.
	w = putJSON(t, h.AdminUpdateProduct, "2", `{"discountPrice": 10}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePromotionRejectsBadDates(t *testing.T) {
	h := newAdminHandlers()

	w := postJSON(t, h.AdminCreatePromotion, `{"title": "Sale", "startDate": "15-06-2026"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "startDate")

	w = postJSON(t, h.AdminCreatePromotion,
		`{"title": "Sale", "startDate": "2026-06-15", "endDate": "2026-06-01"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "endDate")
}

// fakeCatalogAdmin records writes and can simulate a taken slug.
type fakeCatalogAdmin struct {
	created  []models.Category
	updated  []catalog.ProductPatch
	product  *models.Product
	takenErr error
}

func (f *fakeCatalogAdmin) AllCategories(context.Context) ([]models.Category, error) {
	return nil, nil
}

func (f *fakeCatalogAdmin) CreateCategory(_ context.Context, c *models.Category) error {
	if f.takenErr != nil {
		return f.takenErr
	}
	c.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *c)
	return nil
}

func (f *fakeCatalogAdmin) UpdateCategory(context.Context, int64, catalog.CategoryPatch) error {
	return nil
}
func (f *fakeCatalogAdmin) DeleteCategory(context.Context, int64) error { return nil }
func (f *fakeCatalogAdmin) AllProducts(context.Context) ([]models.Product, error) {
	return nil, nil
}

func (f *fakeCatalogAdmin) ProductByID(_ context.Context, id int64) (*models.Product, error) {
	if f.product != nil && f.product.ID == id {
		return f.product, nil
	}
	return nil, catalog.ErrNotFound
}

func (f *fakeCatalogAdmin) CreateProduct(context.Context, *models.Product) error { return nil }

func (f *fakeCatalogAdmin) UpdateProduct(_ context.Context, _ int64, patch catalog.ProductPatch) error {
	f.updated = append(f.updated, patch)
	return nil
}
func (f *fakeCatalogAdmin) DeleteProduct(context.Context, int64) error { return nil }

func TestCreateCategoryGeneratesSlugFromName(t *testing.T) {
	h := newAdminHandlers()
	fake := &fakeCatalogAdmin{}
	h.CatalogAdmin = fake

	w := postJSON(t, h.AdminCreateCategory, `{"name": "Garden Tools"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, fake.created, 1)
	assert.Equal(t, "garden-tools", fake.created[0].Slug)
	assert.True(t, fake.created[0].IsActive, "active unless the request says otherwise")

	// An explicit slug wins over the derived one.
	w = postJSON(t, h.AdminCreateCategory, `{"name": "Garden Tools", "slug": "tools"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tools", fake.created[1].Slug)
}

func TestCreateCategoryDuplicateSlugIsConflict(t *testing.T) {
	h := newAdminHandlers()
	h.CatalogAdmin = &fakeCatalogAdmin{takenErr: catalog.ErrDuplicateSlug}

	w := postJSON(t, h.AdminCreateCategory, `{"name": "Electronics"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateCategoryRequiresName(t *testing.T) {
	h := newAdminHandlers()
	w := postJSON(t, h.AdminCreateCategory, `{"description": "no name"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginRequiresWellFormedBody(t *testing.T) {
	h := newAdminHandlers()

	w := postJSON(t, h.AdminLogin, `{"email": "not-an-email", "password": "x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, h.AdminLogin, `{"email": "a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "password is required")
}

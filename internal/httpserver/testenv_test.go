package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/omashasarra/hasbani-backend/internal/config"
	"github.com/omashasarra/hasbani-backend/internal/hash"
	"github.com/omashasarra/hasbani-backend/internal/middleware"
	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/service"
	"github.com/omashasarra/hasbani-backend/internal/tokens"
	"github.com/omashasarra/hasbani-backend/internal/upload"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	DB      *gorm.DB
	Uploads *upload.Store
	Secret  []byte

	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Admin   *AdminHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open in-memory db")
	require.NoError(t, config.Migrate(db))

	uploads, err := upload.NewStore(t.TempDir())
	require.NoError(t, err)

	r := &repo.GormRepo{DB: db}
	secret := []byte("test_secret")

	e := echo.New()
	e.Validator = NewValidator()

	return &testEnv{
		T:       t,
		E:       e,
		DB:      db,
		Uploads: uploads,
		Secret:  secret,
		Auth:    &AuthHTTP{Svc: &service.AuthService{Repo: r, Secret: secret}},
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Repo: r, Uploads: uploads}},
		Admin:   &AdminHTTP{Svc: &service.AdminService{Repo: r}},
	}
}

// newTestServer registers the full route table so requests can be driven
// through the real middleware chain with ServeHTTP.
func newTestServer(t *testing.T) (*testEnv, *echo.Echo) {
	env := newTestEnv(t)
	Register(env.E, &Deps{
		Auth:      env.Auth,
		Catalog:   env.Catalog,
		Admin:     env.Admin,
		Health:    &HealthHTTP{Database: "test_db", Environment: "test"},
		AuthMW:    middleware.NewAuthMiddleware(env.Secret),
		UploadDir: env.Uploads.Dir(),
	})
	return env, env.E
}

func (env *testEnv) seedAdmin(email, password string, role models.Role) models.Admin {
	env.T.Helper()
	pwHash, err := hash.HashPassword(password)
	require.NoError(env.T, err)
	admin := models.Admin{Email: email, PasswordHash: pwHash, Role: role}
	require.NoError(env.T, env.DB.Create(&admin).Error)
	return admin
}

func (env *testEnv) token(admin models.Admin) string {
	env.T.Helper()
	tok, err := tokens.Issue(env.Secret, admin.ID, admin.Role)
	require.NoError(env.T, err)
	return tok
}

func (env *testEnv) jsonCtx(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// multipartCtx builds a multipart form request; fileName == "" means no file
// part at all.
func (env *testEnv) multipartCtx(method, path string, fields map[string]string, fileName, fileContent string) (*httptest.ResponseRecorder, echo.Context) {
	env.T.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(env.T, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(env.T, err)
		_, err = io.WriteString(fw, fileContent)
		require.NoError(env.T, err)
	}
	require.NoError(env.T, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func httpErr(t *testing.T, err error) *echo.HTTPError {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T", err)
	return he
}

// createProductViaHandler drives the real multipart create handler and
// returns the new product id.
func (env *testEnv) createProductViaHandler(categoryID, translations, fileName string) uint {
	env.T.Helper()
	fields := map[string]string{}
	if categoryID != "" {
		fields["category_id"] = categoryID
	}
	if translations != "" {
		fields["translations"] = translations
	}
	rec, c := env.multipartCtx(http.MethodPost, "/products/create", fields, fileName, "fake image bytes")
	require.NoError(env.T, env.Catalog.CreateProduct(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		ProductID uint `json:"productId"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(env.T, resp.ProductID)
	return resp.ProductID
}

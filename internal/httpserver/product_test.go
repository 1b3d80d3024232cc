package httpserver

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/transport"
)

func getProduct(t *testing.T, env *testEnv, id, lang string) (*httpResult, *transport.ProductDetail) {
	t.Helper()
	rec, c := env.jsonCtx(http.MethodGet, "/products/"+id+"/"+lang, nil)
	c.SetParamNames("id", "lang")
	c.SetParamValues(id, lang)
	err := env.Catalog.GetProduct(c)
	if err != nil {
		return &httpResult{Err: err}, nil
	}
	var detail transport.ProductDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return &httpResult{Code: rec.Code}, &detail
}

type httpResult struct {
	Code int
	Err  error
}

func TestCreateProductRequiresImage(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.multipartCtx(http.MethodPost, "/products/create", map[string]string{
		"translations": `[{"language":"en","name":"p","description":"d"}]`,
	}, "", "")
	he := httpErr(t, env.Catalog.CreateProduct(c))
	require.Equal(t, http.StatusBadRequest, he.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateAndGetProductRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	catID := createCategory(t, env, []map[string]string{{"language": "en", "name": "Sweets"}})

	pid := env.createProductViaHandler(uitoa(catID),
		`[{"language":"en","name":"Baklava","description":"flaky"},{"language":"ar","name":"بقلاوة","description":"هش"}]`,
		"baklava.png")

	res, detail := getProduct(t, env, uitoa(pid), "en")
	require.NoError(t, res.Err)
	require.Equal(t, http.StatusOK, res.Code)
	require.Equal(t, pid, detail.ID)
	require.Equal(t, "Baklava", detail.Name)
	require.Equal(t, "flaky", detail.Description)
	require.NotNil(t, detail.Category)
	require.Equal(t, "Sweets", *detail.Category)

	// stored under <sanitized-original>_<timestamp><ext>
	require.True(t, strings.HasPrefix(detail.Image, "baklava.png_"))
	require.True(t, strings.HasSuffix(detail.Image, ".png"))
	require.FileExists(t, filepath.Join(env.Uploads.Dir(), detail.Image))

	resAr, detailAr := getProduct(t, env, uitoa(pid), "ar")
	require.NoError(t, resAr.Err)
	require.Equal(t, "بقلاوة", detailAr.Name)
}

func TestGetProductMissingTranslationIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	pid := env.createProductViaHandler("",
		`[{"language":"en","name":"only english","description":""}]`, "p.png")

	res, _ := getProduct(t, env, uitoa(pid), "ar")
	he := httpErr(t, res.Err)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestGetProductUnknownID(t *testing.T) {
	env := newTestEnv(t)

	res, _ := getProduct(t, env, "999", "en")
	he := httpErr(t, res.Err)
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestListProductsJoinsBothLanguages(t *testing.T) {
	env := newTestEnv(t)
	catID := createCategory(t, env, []map[string]string{
		{"language": "en", "name": "Sweets"},
		{"language": "ar", "name": "حلويات"},
	})
	env.createProductViaHandler(uitoa(catID),
		`[{"language":"en","name":"Baklava","description":"flaky"},{"language":"ar","name":"بقلاوة","description":"هش"}]`,
		"baklava.png")
	env.createProductViaHandler(uitoa(catID),
		`[{"language":"en","name":"Maamoul","description":"date-filled"}]`, "maamoul.png")

	rec, c := env.jsonCtx(http.MethodGet, "/products/ar", nil)
	c.SetParamNames("lang")
	c.SetParamValues("ar")
	require.NoError(t, env.Catalog.ListProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var rows []transport.ProductRow
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 2)

	// both languages present regardless of the requested one
	require.Equal(t, "Baklava", *rows[0].EnName)
	require.Equal(t, "بقلاوة", *rows[0].ArName)
	require.Equal(t, "حلويات", *rows[0].Category)

	// missing translation is a null field, not a missing row
	require.Equal(t, "Maamoul", *rows[1].EnName)
	require.Nil(t, rows[1].ArName)
	require.Nil(t, rows[1].ArDescription)
}

func TestModifyProductReplacesImage(t *testing.T) {
	env := newTestEnv(t)
	pid := env.createProductViaHandler("",
		`[{"language":"en","name":"p","description":"d"}]`, "old.png")

	var before models.Product
	require.NoError(t, env.DB.First(&before, pid).Error)
	oldPath := filepath.Join(env.Uploads.Dir(), before.Image)
	require.FileExists(t, oldPath)

	rec, c := env.multipartCtx(http.MethodPost, "/products/modify/"+uitoa(pid), map[string]string{
		"translations": `[{"language":"en","name":"p2","description":"d2"}]`,
	}, "new.png", "new image bytes")
	c.SetParamNames("id")
	c.SetParamValues(uitoa(pid))
	require.NoError(t, env.Catalog.ModifyProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var after models.Product
	require.NoError(t, env.DB.First(&after, pid).Error)
	require.NotEqual(t, before.Image, after.Image)
	require.True(t, strings.HasPrefix(after.Image, "new.png_"))
	require.NoFileExists(t, oldPath)
	require.FileExists(t, filepath.Join(env.Uploads.Dir(), after.Image))
}

func TestModifyProductJSONUpdatesTranslationsByLanguage(t *testing.T) {
	env := newTestEnv(t)
	pid := env.createProductViaHandler("",
		`[{"language":"en","name":"old name","description":"old desc"}]`, "p.png")

	rec, c := env.jsonCtx(http.MethodPost, "/products/modify/"+uitoa(pid), map[string]any{
		"translations": `[{"language":"en","name":"new name","description":"new desc"},{"language":"fr","name":"jamais","description":""}]`,
	})
	c.SetParamNames("id")
	c.SetParamValues(uitoa(pid))
	require.NoError(t, env.Catalog.ModifyProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var en models.ProductTranslation
	require.NoError(t, env.DB.Where("product_id = ? AND language = ?", pid, "en").First(&en).Error)
	require.Equal(t, "new name", en.Name)
	require.Equal(t, "new desc", en.Description)

	// a language never created stays absent: update-by-key, no insert
	var frCount int64
	require.NoError(t, env.DB.Model(&models.ProductTranslation{}).
		Where("product_id = ? AND language = ?", pid, "fr").Count(&frCount).Error)
	require.Zero(t, frCount)
}

func TestModifyProductNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.jsonCtx(http.MethodPost, "/products/modify/42", map[string]any{
		"translations": []map[string]string{},
	})
	c.SetParamNames("id")
	c.SetParamValues("42")
	he := httpErr(t, env.Catalog.ModifyProduct(c))
	require.Equal(t, http.StatusNotFound, he.Code)
}

func TestDeleteProductRemovesRowsAndFile(t *testing.T) {
	env := newTestEnv(t)
	pid := env.createProductViaHandler("",
		`[{"language":"en","name":"p","description":"d"}]`, "p.png")

	var product models.Product
	require.NoError(t, env.DB.First(&product, pid).Error)
	imagePath := filepath.Join(env.Uploads.Dir(), product.Image)
	require.FileExists(t, imagePath)

	rec, c := env.jsonCtx(http.MethodDelete, "/products/delete/"+uitoa(pid), nil)
	c.SetParamNames("id")
	c.SetParamValues(uitoa(pid))
	require.NoError(t, env.Catalog.DeleteProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoFileExists(t, imagePath)
	var productCount, trCount int64
	require.NoError(t, env.DB.Model(&models.Product{}).Count(&productCount).Error)
	require.NoError(t, env.DB.Model(&models.ProductTranslation{}).
		Where("product_id = ?", pid).Count(&trCount).Error)
	require.Zero(t, productCount)
	require.Zero(t, trCount)

	// second delete: the product is gone, so NotFound rather than 500
	_, c2 := env.jsonCtx(http.MethodDelete, "/products/delete/"+uitoa(pid), nil)
	c2.SetParamNames("id")
	c2.SetParamValues(uitoa(pid))
	he := httpErr(t, env.Catalog.DeleteProduct(c2))
	require.Equal(t, http.StatusNotFound, he.Code)
}

package http_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/MercadoLocal-api/internal/application/dto"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\nfake")

func multipartRequest(t *testing.T, method, target, token string, fields map[string]string, fileField, filename string, file []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", token)
	return req
}

func TestBusiness_Multipart_ConLogo_SeSirveLaImagen(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "logo@example.com")
	selectRole(t, s, token, "emprendedor")

	req := multipartRequest(t, http.MethodPost, "/api/dashboard/business", token,
		map[string]string{"name": "Café Ñandú", "whatsapp": " 51911222333 "}, "logo", "logo.png", pngBytes)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created dto.BusinessCreatedResponse
	decode(t, resp, &created)
	assert.Equal(t, "51911222333", created.Business.WhatsApp)
	require.NotEmpty(t, created.Business.LogoURL)

	u, err := url.Parse(created.Business.LogoURL)
	require.NoError(t, err)
	assert.Contains(t, u.Path, "/imagenes/logos/")

	img := s.do(t, http.MethodGet, u.Path, "", nil)
	require.Equal(t, fiber.StatusOK, img.StatusCode)
	defer img.Body.Close()
	var got bytes.Buffer
	_, err = got.ReadFrom(img.Body)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, got.Bytes())
}

func TestBusiness_Multipart_ArchivoNoImagen_400SinNegocio(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "pdf@example.com")
	selectRole(t, s, token, "emprendedor")

	req := multipartRequest(t, http.MethodPost, "/api/dashboard/business", token,
		map[string]string{"name": "Tienda"}, "logo", "contrato.pdf", []byte("%PDF"))
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	flow := getFlow(t, s, token)
	assert.Equal(t, "business_required", flow.Step)
}

func TestBusiness_GetMine_SinNegocio_EstadoVacioConCTA(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "vacio@example.com")
	selectRole(t, s, token, "emprendedor")

	resp := s.do(t, http.MethodGet, "/api/dashboard/business", token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out dto.FlowResponse
	decode(t, resp, &out)
	assert.Equal(t, dto.ScreenEmpty, out.State)
	assert.Equal(t, "/dashboard/business/new", out.CTA)
}

func TestProducts_SinNegocio_409ConRedirect(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "prod@example.com")
	selectRole(t, s, token, "emprendedor")

	resp := s.do(t, http.MethodGet, "/api/dashboard/products", token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var body dto.ErrorResponse
	decode(t, resp, &body)
	assert.Equal(t, "NO_BUSINESS", body.Code)
	assert.Equal(t, "/dashboard/business/new", body.Redirect)
}

func TestProducts_CrearMultipart_ApareceEnElDashboard(t *testing.T) {
	s := newTestServer(t)
	token := s.login(t, "vende@example.com")
	selectRole(t, s, token, "emprendedor")
	resp := s.do(t, http.MethodPost, "/api/dashboard/business", token, dto.CreateBusinessRequest{Name: "Huerta"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req := multipartRequest(t, http.MethodPost, "/api/dashboard/products", token,
		map[string]string{"name": "Tomates", "price": "4.50", "stock": "10"}, "image", "tomate.png", pngBytes)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var product dto.ProductResponse
	decode(t, resp, &product)
	assert.Equal(t, "4.5", product.Price.String())
	require.NotNil(t, product.Stock)
	assert.Equal(t, 10, *product.Stock)
	assert.Contains(t, product.ImageURL, "/imagenes/productos/")

	req = multipartRequest(t, http.MethodPost, "/api/dashboard/products", token,
		map[string]string{"name": "Lechuga", "price": "abc"}, "", "", nil)
	resp, err = s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	flow := getFlow(t, s, token)
	require.NotNil(t, flow.Summary)
	assert.Equal(t, 1, flow.Summary.TotalProducts)
}

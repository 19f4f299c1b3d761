package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lotolabs-arg/StoreFlow/internal/application/report"
	"github.com/lotolabs-arg/StoreFlow/internal/application/session"
	"github.com/lotolabs-arg/StoreFlow/internal/application/usecase"
	"github.com/lotolabs-arg/StoreFlow/internal/domain/entity"
	"github.com/lotolabs-arg/StoreFlow/internal/infrastructure/memory"
	apphttp "github.com/lotolabs-arg/StoreFlow/internal/interfaces/http"
	pkgjwt "github.com/lotolabs-arg/StoreFlow/pkg/jwt"
)

// noopGenerator satisface el puerto del reporte; estas rutas no lo ejercitan.
type noopGenerator struct{}

func (noopGenerator) GenerateInventoryReport(context.Context, *report.Document) ([]byte, error) {
	return []byte("%PDF"), nil
}

// buildRouterApp arma la app completa sobre repositorios en memoria y devuelve
// la app junto con los usuarios sembrados.
func buildRouterApp(t *testing.T) (*fiber.App, *entity.User, *entity.User) {
	t.Helper()

	userRepo := memory.NewUserRepository()
	productRepo := memory.NewProductRepository()
	configRepo := memory.NewGlobalConfigRepository()

	admin, err := entity.NewUser("admin", "1234", entity.RoleAdmin)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(admin))

	seller, err := entity.NewUser("vendedor", "1234", entity.RoleSeller)
	require.NoError(t, err)
	require.NoError(t, userRepo.Save(seller))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LoginUC:          usecase.NewLoginUser(userRepo, session.NewContext()),
		ChangePasswordUC: usecase.NewChangeUserPassword(userRepo),
		RegisterEntryUC:  usecase.NewRegisterProductEntry(productRepo),
		UpdateProductUC:  usecase.NewUpdateProductDetails(productRepo),
		AdjustStockUC:    usecase.NewAdjustProductStock(productRepo),
		ListProductsUC:   usecase.NewListProducts(productRepo),
		UpdateConfigUC:   usecase.NewUpdateGlobalConfig(configRepo),
		InventoryReport:  report.NewInventoryReportUseCase(productRepo, configRepo, noopGenerator{}),
		UserRepo:         userRepo,
		ConfigRepo:       configRepo,
		JWT: apphttp.JWTSettings{
			Secret:     testJWTSecret,
			ExpMinutes: testExpMin,
			Issuer:     testIssuer,
		},
	})
	return app, admin, seller
}

func bearerFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID(), u.Username(), string(u.Role()), testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

// La ruta del margen corta en el middleware: un SELLER recibe 403 antes de que
// el handler parsee el body o el caso de uso toque datos.
func TestRouter_ConfigMargin_SellerCortadoPorElMiddleware(t *testing.T) {
	app, _, seller := buildRouterApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/config/margin",
		strings.NewReader(`{"new_margin":"0.45"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, seller))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "rol sin permiso",
		"debe responder el middleware, no el caso de uso")
}

func TestRouter_ConfigMargin_AdminActualiza(t *testing.T) {
	app, admin, _ := buildRouterApp(t)

	req := httptest.NewRequest(http.MethodPut, "/api/config/margin",
		strings.NewReader(`{"new_margin":"0.45"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", bearerFor(t, admin))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// El margen quedó aplicado: GET /api/config lo refleja.
	getReq := httptest.NewRequest(http.MethodGet, "/api/config", nil)
	getReq.Header.Set("Authorization", bearerFor(t, admin))
	getResp, err := app.Test(getReq, -1)
	require.NoError(t, err)
	defer getResp.Body.Close()

	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var cfg struct {
		DefaultProfitMargin decimal.Decimal `json:"default_profit_margin"`
	}
	require.NoError(t, json.NewDecoder(getResp.Body).Decode(&cfg))
	assert.True(t, decimal.RequireFromString("0.45").Equal(cfg.DefaultProfitMargin))
}

func TestRouter_AuthMe_DevuelveLosClaims(t *testing.T) {
	app, admin, _ := buildRouterApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", bearerFor(t, admin))

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, admin.ID(), body["id"])
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "ADMIN", body["role"])
}

package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/Inventario-consola/internal/application/analytics"
	"github.com/jhoicas/Inventario-consola/internal/application/auth"
	"github.com/jhoicas/Inventario-consola/internal/application/dto"
	"github.com/jhoicas/Inventario-consola/internal/application/importer"
	"github.com/jhoicas/Inventario-consola/internal/application/report"
	"github.com/jhoicas/Inventario-consola/internal/application/usecase"
	"github.com/jhoicas/Inventario-consola/internal/domain"
	"github.com/jhoicas/Inventario-consola/internal/domain/entity"
	"github.com/jhoicas/Inventario-consola/internal/domain/repository/repositorytest"
	apphttp "github.com/jhoicas/Inventario-consola/internal/interfaces/http"
)

type fakeExporter struct {
	ext string
	err error
}

func (f fakeExporter) Export(doc *report.Document) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(doc.Title), nil
}
func (f fakeExporter) Extension() string   { return f.ext }
func (f fakeExporter) ContentType() string { return "application/octet-stream" }

type fixture struct {
	app         *fiber.App
	items       *repositorytest.Items
	consumables *repositorytest.Consumables
	movements   *repositorytest.Movements
	users       *repositorytest.Users
	adminID     int64
}

func newFixture(t *testing.T, pdfErr error) *fixture {
	t.Helper()
	f := &fixture{
		items: &repositorytest.Items{},
		consumables: &repositorytest.Consumables{Data: []*entity.Consumable{
			{ID: 1, Name: "Tóner", Stock: 1, MinStock: 4},
			{ID: 2, Name: "Papel", Stock: 50, MinStock: 10},
		}},
		movements: &repositorytest.Movements{},
		users:     &repositorytest.Users{},
	}
	f.adminID = f.users.Add(&entity.User{Name: "Admin", Email: "admin@inst.edu.pe", Role: entity.RoleAdmin}, "admin123")
	refs := &repositorytest.References{CategoryList: []entity.Category{{ID: 1, Name: "Cómputo"}}}

	reportUC := report.NewUseCase(f.items, f.consumables, f.movements, report.Settings{
		Institution: "Instituto", CurrencySymbol: "S/.", Location: time.UTC,
	}).WithClock(func() time.Time { return time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC) })

	f.app = fiber.New()
	apphttp.Router(f.app, apphttp.RouterDeps{
		AuthUC:        auth.NewAuthUseCase(f.users, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		ItemUC:        usecase.NewItemUseCase(f.items),
		ConsumableUC:  usecase.NewConsumableUseCase(f.consumables),
		MovementUC:    usecase.NewMovementUseCase(f.movements),
		UserUC:        usecase.NewUserUseCase(f.users),
		ReferenceUC:   usecase.NewReferenceUseCase(refs),
		DashboardUC:   appanalytics.NewDashboardUseCase(f.items, f.consumables, f.movements),
		ReportUC:      reportUC,
		ExcelExporter: fakeExporter{ext: "xlsx"},
		PDFExporter:   fakeExporter{ext: "pdf", err: pdfErr},
		ImportUC: importer.NewUseCase(f.items, f.consumables,
			importer.Decoders{".csv": importer.CSVDecoder{}},
			importer.Settings{Concurrency: 2, Defaults: importer.Defaults{CategoryID: 1, LaboratoryID: 1}}, nil),
		JWTSecret: testJWTSecret,
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, role string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		req.Header.Set("Authorization", tokenFor(t, f.adminID, role))
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRouter_LoginYPerfil(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.do(t, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: "admin@inst.edu.pe", Password: "admin123"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	login := decode[dto.LoginResponse](t, resp)
	assert.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/perfil", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Admin", decode[dto.UserResponse](t, resp).Name)
}

func TestRouter_LoginCredencialesInvalidas(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodPost, "/api/login", "", dto.LoginRequest{Email: "admin@inst.edu.pe", Password: "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_ItemValidacionNoLlamaAlGateway(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodPost, "/api/items", entity.RoleAdmin, map[string]any{"nombre": "Proyector"})

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "codigo")
	assert.Empty(t, f.items.Codes())
}

func TestRouter_ItemCrearYObtener(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodPost, "/api/items", entity.RoleWarehouse, map[string]any{
		"codigo": "EQ-1", "nombre": "Proyector", "categoria_id": 1, "laboratorio_id": 1, "valor": "1500",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.ItemResponse](t, resp)
	assert.Equal(t, entity.ItemStateActive, created.State)
	assert.Equal(t, "1500.00", created.Value)

	resp = f.do(t, http.MethodGet, "/api/items/99", entity.RoleAuditor, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = f.do(t, http.MethodGet, "/api/items/abc", entity.RoleAuditor, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_RBAC(t *testing.T) {
	f := newFixture(t, nil)

	resp := f.do(t, http.MethodPost, "/api/items", entity.RoleInstructor, map[string]any{})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "docente no escribe items")

	resp = f.do(t, http.MethodGet, "/api/usuarios", entity.RoleWarehouse, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "usuarios solo admin")

	resp = f.do(t, http.MethodGet, "/api/consumibles", entity.RoleInstructor, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "todos los roles leen")

	resp = f.do(t, http.MethodGet, "/api/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_ConsumiblesFiltroStock(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodGet, "/api/consumibles?stock_status=critico", entity.RoleAuditor, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.ConsumableListResponse](t, resp)
	require.Len(t, out.Data, 1)
	assert.Equal(t, "Tóner", out.Data[0].Name)
	assert.Equal(t, 1, out.LowStock)
}

func TestRouter_MovimientoSinObjetivo(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodPost, "/api/movimientos", entity.RoleWarehouse, map[string]any{"tipo": "salida", "cantidad": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, f.movements.Created)

	resp = f.do(t, http.MethodPost, "/api/movimientos", entity.RoleWarehouse, map[string]any{"consumible_id": 1, "tipo": "salida", "cantidad": 1})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, f.movements.Created)
}

func TestRouter_UsuarioNoSeEliminaASiMismo(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodDelete, fmt.Sprintf("/api/usuarios/%d", f.adminID), entity.RoleAdmin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_ReporteExcelDescarga(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodGet, "/api/reportes/consumibles/excel", entity.RoleAuditor, nil)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, `attachment; filename="Reporte_Consumibles_2024-05-02.xlsx"`, resp.Header.Get("Content-Disposition"))
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Reporte de Consumibles", string(body))
}

func TestRouter_ReportePDFFallido(t *testing.T) {
	f := newFixture(t, errors.New("fuente no encontrada"))
	resp := f.do(t, http.MethodGet, "/api/reportes/items/pdf", entity.RoleAdmin, nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "EXPORT_FAILED", decode[dto.ErrorResponse](t, resp).Code)
}

func TestRouter_ReporteEntidadDesconocida(t *testing.T) {
	f := newFixture(t, nil)
	resp := f.do(t, http.MethodGet, "/api/reportes/facturas/estadisticas", entity.RoleAdmin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_ReporteGatewayCaido(t *testing.T) {
	f := newFixture(t, nil)
	f.movements.Err = domain.ErrUnavailable
	resp := f.do(t, http.MethodGet, "/api/reportes/movimientos/estadisticas", entity.RoleAdmin, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "GATEWAY_UNAVAILABLE", decode[dto.ErrorResponse](t, resp).Code)
}

func upload(t *testing.T, f *fixture, path, filename, content string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("archivo", filename)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", tokenFor(t, f.adminID, entity.RoleWarehouse))
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRouter_ImportarCSV(t *testing.T) {
	f := newFixture(t, nil)
	csv := "codigo,nombre\nA-1,Monitor\n,Sin código\nA-3,Teclado\n"

	resp := upload(t, f, "/api/importar/items/preview", "items.csv", csv)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, decode[dto.ImportPreviewResponse](t, resp).Total)
	assert.Empty(t, f.items.Codes(), "la vista previa no crea registros")

	resp = upload(t, f, "/api/importar/items", "items.csv", csv)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ImportResultResponse](t, resp)
	assert.Equal(t, 2, out.Imported)
	assert.Equal(t, 1, out.Failed)
	require.Len(t, out.Failures, 1)
	assert.Equal(t, 2, out.Failures[0].Row)
}

func TestRouter_ImportarArchivoIlegible(t *testing.T) {
	f := newFixture(t, nil)
	resp := upload(t, f, "/api/importar/consumibles", "datos.txt", "hola")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "PARSE_ERROR", decode[dto.ErrorResponse](t, resp).Code)
}

package serverhttp

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"orderform-service/internal/config"
	"orderform-service/internal/convert/model"
	"orderform-service/internal/mapstore"
)

func testRouter() http.Handler {
	cfg := config.Config{Host: "127.0.0.1", Port: 0, AllowOrigins: []string{"*"}, MaxUploadMB: 16}
	store := mapstore.New(model.DefaultLaoraMapping())
	return NewRouter(cfg, zerolog.Nop(), store)
}

func coupangXLSX(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	set := func(col int, row int, v string) {
		cell, err := excelize.CoordinatesToCellName(col+1, row+1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellStr(sheet, cell, v))
	}
	for c := 0; c < 31; c++ {
		set(c, 0, "h")
	}
	set(2, 1, "ORD-1")        // C: 주문번호
	set(26, 1, "홍길동")         // AA
	set(29, 1, "서울시")         // AD
	set(27, 1, "01012345678") // AB
	set(15, 1, "셔츠")          // P
	set(22, 1, "3")           // W
	set(30, 1, "메모")          // AE
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestConvertCoupangCSV(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("source", "쿠팡.xlsx")
	require.NoError(t, err)
	_, err = fw.Write(coupangXLSX(t))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("format", "csv"))
	require.NoError(t, mw.WriteField("csv_encoding", "utf-8"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/convert/coupang", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := rec.Body.String()
	assert.Contains(t, out, "ORD-1")
	assert.Contains(t, out, `="01012345678"`) // phone guarded for Excel
	assert.Contains(t, out, "셔츠")
}

func TestConvertLaoraSourceMissing(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/convert/laora", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMappingRoundTrip(t *testing.T) {
	r := testRouter()

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mapping/laora", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"주문번호": "A"`)

	put := httptest.NewRequest(http.MethodPut, "/mapping/laora",
		strings.NewReader(`{"주문번호":"c","수량":"??","없는필드":"B"}`))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, put)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"주문번호": "C"`)
	assert.Contains(t, rec.Body.String(), `"수량": "G"`) // invalid value fell back to default
	assert.NotContains(t, rec.Body.String(), "없는필드")
}

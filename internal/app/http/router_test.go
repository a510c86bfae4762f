package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quote-crm/backend/internal/app/config"
	"quote-crm/backend/internal/domain/quote"
	"quote-crm/backend/internal/domain/quote/book"
	"quote-crm/backend/internal/domain/quote/importer"
	pdfgen "quote-crm/backend/internal/domain/quote/pdf/gofpdf"
	"quote-crm/backend/internal/infra/storage"
)

type fixture struct {
	router http.Handler
	book   *book.Book
	store  *storage.Store
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()
	store := storage.New(storage.NewMemory())
	b, err := book.Open(context.Background(), store.Load, store.Save,
		book.WithClock(func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) }),
		book.WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, err)
	return &fixture{router: NewRouter(cfg, b, pdfgen.New("")), book: b, store: store}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("q%d", n)
	}
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, config.Config{})
	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","quotes":0}`, rec.Body.String())
}

func TestListQuotes_EmptyBookIsEmptyArray(t *testing.T) {
	f := newFixture(t, config.Config{})
	rec := f.do(t, http.MethodGet, "/v1/quotes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreateUpdateAndList(t *testing.T) {
	f := newFixture(t, config.Config{})

	rec := f.do(t, http.MethodPost, "/v1/quotes", map[string]any{"title": "Cabling", "customer": "Acme", "value": 900, "status": "sent"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode[quote.Quote](t, rec)
	assert.Equal(t, "q1", created.ID)
	assert.Equal(t, quote.StatusSent, created.Status)

	created.Title = "Cabling v2"
	rec = f.do(t, http.MethodPut, "/v1/quotes/q1", created)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodGet, "/v1/quotes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]quote.Quote](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, "Cabling v2", list[0].Title)

	persisted, err := f.store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, list, persisted)
}

func TestGetQuote_NotFound(t *testing.T) {
	f := newFixture(t, config.Config{})
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodGet, "/v1/quotes/missing", nil).Code)
	assert.Equal(t, http.StatusNotFound, f.do(t, http.MethodPut, "/v1/quotes/missing", quote.Quote{}).Code)
}

func TestImport_JSONRows(t *testing.T) {
	f := newFixture(t, config.Config{})

	rows := []map[string]any{
		{"ID": "a", "Customer": "X"},
		{"Customer": "Acme", "Value": "150.5", "Status": "Sent"},
	}
	rec := f.do(t, http.MethodPost, "/v1/quotes/import", rows)
	require.Equal(t, http.StatusOK, rec.Code)
	res := decode[book.ImportResult](t, rec)
	assert.Equal(t, book.ImportResult{Rows: 2, Created: 2, Total: 2}, res)

	q, err := f.book.Get("q1")
	require.NoError(t, err)
	assert.Equal(t, 150.5, q.Value)
	assert.Equal(t, quote.GBP, q.Currency)
}

func TestImport_MultipartCSV(t *testing.T) {
	f := newFixture(t, config.Config{})
	_, err := f.book.Import(context.Background(), []importer.Row{{"id": "a", "customer": "X"}})
	require.NoError(t, err)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "quotes.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("id,customer\na,Y\nb,Z\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	list := f.book.List()
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, "Y", list[0].Customer)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "Z", list[1].Customer)
}

func TestImport_BadFileLeavesStateUntouched(t *testing.T) {
	f := newFixture(t, config.Config{})
	_, err := f.book.Import(context.Background(), []importer.Row{{"id": "a"}})
	require.NoError(t, err)
	before := f.book.List()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "quotes.xlsx")
	require.NoError(t, err)
	_, err = fw.Write([]byte("definitely not a workbook"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, before, f.book.List())
}

func TestQuotePDF(t *testing.T) {
	f := newFixture(t, config.Config{})
	_, err := f.book.Save(context.Background(), quote.Quote{Customer: "Acme", Title: "Rack"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/v1/quotes/q1/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Acme_quote.pdf", downloadName(t, rec))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-"))
}

func TestQuotePDF_NonASCIIFileName(t *testing.T) {
	f := newFixture(t, config.Config{})
	_, err := f.book.Save(context.Background(), quote.Quote{Customer: "Müller GmbH"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/v1/quotes/q1/pdf", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	header := rec.Header().Get("Content-Disposition")
	assert.Contains(t, header, "filename*=utf-8''")
	assert.NotContains(t, header, "ü")
	assert.Equal(t, "Müller GmbH_quote.pdf", downloadName(t, rec))
}

func downloadName(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	disposition, params, err := mime.ParseMediaType(rec.Header().Get("Content-Disposition"))
	require.NoError(t, err)
	require.Equal(t, "attachment", disposition)
	return params["filename"]
}

func TestApprovalFlow(t *testing.T) {
	f := newFixture(t, config.Config{})
	_, err := f.book.Save(context.Background(), quote.Quote{Customer: "Acme"})
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/v1/quotes/q1/approval/decision", map[string]any{"approved": true})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodPost, "/v1/quotes/q1/approval", map[string]any{"approver": "Dana"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, quote.ApprovalRequested, decode[quote.Quote](t, rec).Approval.State)

	rec = f.do(t, http.MethodPost, "/v1/quotes/q1/approval/decision", map[string]any{"approved": true, "note": "fine"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, quote.ApprovalApproved, decode[quote.Quote](t, rec).Approval.State)
}

func TestInternalToken(t *testing.T) {
	f := newFixture(t, config.Config{InternalToken: "s3cret"})

	assert.Equal(t, http.StatusUnauthorized, f.do(t, http.MethodGet, "/v1/quotes", nil).Code)
	assert.Equal(t, http.StatusOK, f.do(t, http.MethodGet, "/health", nil).Code)
}

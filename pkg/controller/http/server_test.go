package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
	controller "github.com/secmon-lab/tally/pkg/controller/http"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/repository"
	"github.com/secmon-lab/tally/pkg/usecase"
	"github.com/xuri/excelize/v2"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return ctxlog.With(context.Background(), logger)
}

func newTestServer(t *testing.T) *controller.Server {
	t.Helper()

	fixedNow := time.Date(2025, 9, 2, 8, 30, 15, 0, time.UTC)
	timesheetUC := usecase.NewTimesheet(model.DefaultLayout(),
		usecase.WithClock(func() time.Time { return fixedNow }))
	userUC := usecase.NewUserUseCase(repository.NewMemory(model.SeedUsers()...))

	server, err := controller.NewServer(testContext(), ":0", timesheetUC, userUC)
	gt.NoError(t, err).Required()
	return server
}

func buildSheet(t *testing.T, name string, rows [][]any) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	gt.NoError(t, f.SetSheetName("Sheet1", name)).Required()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		gt.NoError(t, err).Required()
		values := row
		gt.NoError(t, f.SetSheetRow(name, cell, &values)).Required()
	}

	var buf bytes.Buffer
	gt.NoError(t, f.Write(&buf)).Required()
	return buf.Bytes()
}

// multipartBody builds a form with the given file fields
func multipartBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for field, data := range files {
		part, err := mw.CreateFormFile(field, field+".xlsx")
		gt.NoError(t, err).Required()
		_, err = part.Write(data)
		gt.NoError(t, err).Required()
	}
	gt.NoError(t, mw.Close()).Required()
	return &body, mw.FormDataContentType()
}

func TestHealthAndIndex(t *testing.T) {
	server := newTestServer(t)

	t.Run("Health", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusOK)
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Equal(t, resp["status"], "healthy")
	})

	t.Run("Index", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusOK)
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Equal(t, resp["message"], controller.IndexMessage)
	})

	t.Run("CORS preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/process-timesheet", nil)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusNoContent)
		gt.Equal(t, rec.Header().Get("Access-Control-Allow-Origin"), "*")
	})
}

func TestProcessTimesheet(t *testing.T) {
	server := newTestServer(t)

	roster := buildSheet(t, "Sheet1", [][]any{
		{"人员名称", "部门"},
		{"Alice", "Eng"},
		{"Bob", "Ops"},
	})
	raw := buildSheet(t, "工时投入排名", [][]any{
		{"导出时间 2025-09-01"},
		{"人员名称", "登记工时(小时)", "工作项数"},
		{"Alice", 8, 4},
		{"Bob", 5.5, 2},
	})

	t.Run("Returns the report workbook", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string][]byte{
			controller.FieldRoster:   roster,
			controller.FieldRawHours: raw,
		})
		req := httptest.NewRequest(http.MethodPost, "/process-timesheet", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusOK)
		gt.Equal(t, rec.Header().Get("Content-Type"), controller.XLSXContentType)
		gt.Equal(t, rec.Header().Get("Content-Disposition"),
			controller.ContentDisposition("工时统计-20250902083015.xlsx"))

		f, err := excelize.OpenReader(rec.Body)
		gt.NoError(t, err).Required()
		defer f.Close()

		rows, err := f.GetRows("工时投入排名")
		gt.NoError(t, err).Required()
		gt.Equal(t, rows, [][]string{
			{"人员名称", "工时", "项数", "部门"},
			{"Alice", "8", "4", "Eng"},
			{"Bob", "5.5", "2", "Ops"},
		})
	})

	t.Run("Missing raw upload is a client error", func(t *testing.T) {
		body, contentType := multipartBody(t, map[string][]byte{
			controller.FieldRoster: roster,
		})
		req := httptest.NewRequest(http.MethodPost, "/process-timesheet", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusBadRequest)
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.S(t, resp["error"]).Contains(controller.FieldRawHours)
	})

	t.Run("Missing header names file and columns", func(t *testing.T) {
		badRoster := buildSheet(t, "Sheet1", [][]any{
			{"姓名", "部门"},
			{"Alice", "Eng"},
		})
		body, contentType := multipartBody(t, map[string][]byte{
			controller.FieldRoster:   badRoster,
			controller.FieldRawHours: raw,
		})
		req := httptest.NewRequest(http.MethodPost, "/process-timesheet", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusBadRequest)
		var resp map[string]string
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.S(t, resp["error"]).Contains("roster")
		gt.S(t, resp["error"]).Contains("人员名称")
	})

	t.Run("Not a multipart request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process-timesheet", strings.NewReader("{}"))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		server.Handler.ServeHTTP(rec, req)

		gt.Equal(t, rec.Code, http.StatusBadRequest)
	})
}

func TestContentDisposition(t *testing.T) {
	gt.Equal(t,
		controller.ContentDisposition("report 1.xlsx"),
		"attachment; filename*=UTF-8''report%201.xlsx")
}

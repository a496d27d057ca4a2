package http

import (
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
	"github.com/secmon-lab/tally/pkg/usecase"
	"github.com/secmon-lab/tally/pkg/utils/apperr"
)

// Multipart form fields of POST /process-timesheet
const (
	FieldRoster   = "staff_file"
	FieldRawHours = "raw_file"
)

// XLSXContentType is the media type of the generated report
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const maxUploadMemory = 32 << 20

// TimesheetHandler serves report generation from uploaded workbooks
type TimesheetHandler struct {
	uc usecase.TimesheetUseCase
}

// NewTimesheetHandler creates a new timesheet handler
func NewTimesheetHandler(uc usecase.TimesheetUseCase) *TimesheetHandler {
	return &TimesheetHandler{uc: uc}
}

// HandleProcess accepts the roster and raw hours uploads and responds with the report workbook
func (h *TimesheetHandler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	reqID := types.NewRequestID()
	ctx := model.WithRequestID(r.Context(), reqID)
	logger := ctxlog.From(ctx).With("request_id", reqID)
	ctx = ctxlog.With(ctx, logger)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, goerr.Wrap(err, "invalid multipart form"), http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			logger.Warn("Failed to remove multipart files", "error", err)
		}
	}()

	workDir, err := os.MkdirTemp("", "tally-"+reqID.String()+"-")
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, goerr.Wrap(err, "failed to create work directory"), http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			logger.Warn("Failed to remove work directory", "error", err, "dir", workDir)
		}
	}()

	rosterPath, err := saveUpload(r, FieldRoster, workDir)
	if err != nil {
		writeError(w, err, uploadErrorStatus(err))
		return
	}
	rawPath, err := saveUpload(r, FieldRawHours, workDir)
	if err != nil {
		writeError(w, err, uploadErrorStatus(err))
		return
	}

	report, outPath, err := h.uc.GenerateFile(ctx, rosterPath, rawPath, workDir)
	if err != nil {
		if goerr.HasTag(err, model.ErrTagInvalidInput) {
			logger.Info("Rejected timesheet upload", "error", err)
			writeError(w, err, http.StatusBadRequest)
			return
		}
		apperr.Handle(ctx, err)
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	out, err := os.Open(outPath)
	if err != nil {
		apperr.Handle(ctx, err)
		writeError(w, goerr.Wrap(err, "failed to open report"), http.StatusInternalServerError)
		return
	}
	defer out.Close()

	w.Header().Set("Content-Type", XLSXContentType)
	w.Header().Set("Content-Disposition", ContentDisposition(report.FileName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, out); err != nil {
		logger.Error("Failed to send report", "error", err, "file", report.FileName)
	}
}

// ContentDisposition returns an attachment header value for a UTF-8 file name
func ContentDisposition(fileName string) string {
	return "attachment; filename*=UTF-8''" + url.PathEscape(fileName)
}

// saveUpload stores the uploaded form file under dir with a generated name
func saveUpload(r *http.Request, field, dir string) (string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", goerr.Wrap(err, "missing upload field "+field,
			goerr.V("field", field),
			goerr.T(model.ErrTagInvalidInput))
	}
	defer file.Close()

	path := filepath.Join(dir, types.NewRequestID().String()+filepath.Ext(header.Filename))
	if err := copyUpload(file, path); err != nil {
		return "", goerr.Wrap(err, "failed to store upload", goerr.V("field", field))
	}
	return path, nil
}

func copyUpload(src multipart.File, path string) error {
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

func uploadErrorStatus(err error) int {
	if goerr.HasTag(err, model.ErrTagInvalidInput) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

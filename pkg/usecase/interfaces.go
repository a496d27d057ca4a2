package usecase

import (
	"context"
	"io"

	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
)

// TimesheetUseCase defines the interface for report generation
type TimesheetUseCase interface {
	// Generate writes the report workbook to out
	Generate(ctx context.Context, roster, raw io.Reader, out io.Writer) (*model.Report, error)

	// GenerateFile writes the report workbook into outDir and returns its path
	GenerateFile(ctx context.Context, rosterPath, rawPath, outDir string) (*model.Report, string, error)
}

// UserManagement defines the interface for user list operations
type UserManagement interface {
	ListUsers(ctx context.Context) ([]*model.User, error)
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	CreateUser(ctx context.Context, name, email string) (*model.User, error)
	UpdateUser(ctx context.Context, id types.UserID, patch model.UserPatch) (*model.User, error)
	DeleteUser(ctx context.Context, id types.UserID) error
}

var (
	_ TimesheetUseCase = (*Timesheet)(nil)
	_ UserManagement   = (*UserUseCase)(nil)
)

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/tally/pkg/domain/model"
	"github.com/secmon-lab/tally/pkg/domain/types"
	"github.com/secmon-lab/tally/pkg/usecase"
	"github.com/secmon-lab/tally/pkg/utils/apperr"
)

// UserHandler serves the user list API
type UserHandler struct {
	uc usecase.UserManagement
}

// NewUserHandler creates a new user handler
func NewUserHandler(uc usecase.UserManagement) *UserHandler {
	return &UserHandler{uc: uc}
}

type userRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HandleList handles GET /users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.uc.ListUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	writeJSON(w, r, http.StatusOK, users)
}

// HandleCreate handles POST /users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req userRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	user, err := h.uc.CreateUser(r.Context(), req.Name, req.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusCreated, user)
}

// HandleGet handles GET /users/{id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	user, err := h.uc.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

// HandleUpdate handles PUT /users/{id}. Omitted fields keep their value.
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	var patch model.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	user, err := h.uc.UpdateUser(r.Context(), id, patch)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, user)
}

// HandleDelete handles DELETE /users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := userIDParam(w, r)
	if !ok {
		return
	}

	if err := h.uc.DeleteUser(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if goerr.HasTag(err, model.ErrTagUserNotFound) {
		writeJSON(w, r, http.StatusNotFound, map[string]string{
			"message": "User not found",
		})
		return
	}
	apperr.Handle(r.Context(), err)
	writeError(w, err, http.StatusInternalServerError)
}

func userIDParam(w http.ResponseWriter, r *http.Request) (types.UserID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := types.ParseUserID(raw)
	if err != nil {
		// Non-integer IDs never match a route
		writeJSON(w, r, http.StatusNotFound, map[string]string{
			"message": "Not Found",
		})
		return 0, false
	}
	return id, true
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listTodos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.listTodos").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	todos, err := h.services.TodoService.GetAll(ctx, ownerID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.listTodos").Msg("error listing todos")
		http.Error(w, todoErrorMessage(status), status)
		return
	}

	utils.WriteJSON(w, todos, http.StatusOK)
}

func (h *Handler) getTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.getTodo").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	id, ok := todoIDFromURL(r)
	if !ok {
		log.Error().Str("func", "*Handler.getTodo").Str("id", chi.URLParam(r, "id")).Msg("invalid todo id in url")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	todo, err := h.services.TodoService.GetByID(ctx, id, ownerID)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getTodo").Int64("id", id).Msg("error getting todo")
		http.Error(w, todoErrorMessage(status), status)
		return
	}

	utils.WriteJSON(w, todo, http.StatusOK)
}

func (h *Handler) createTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.createTodo").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	var todo models.Todo
	if err := json.NewDecoder(r.Body).Decode(&todo); err != nil {
		log.Err(err).Str("func", "*Handler.createTodo").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// The server assigns the ID and the owner is always the caller.
	todo.ID = 0
	todo.OwnerID = ownerID

	created, err := h.services.TodoService.Create(ctx, todo)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.createTodo").Msg("error creating todo")
		http.Error(w, todoErrorMessage(status), status)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.updateTodo").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	id, ok := todoIDFromURL(r)
	if !ok {
		log.Error().Str("func", "*Handler.updateTodo").Str("id", chi.URLParam(r, "id")).Msg("invalid todo id in url")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	var update models.TodoUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateTodo").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// The target row comes from the URL and the token, never from the body.
	update.ID = id
	update.OwnerID = ownerID

	if err := h.services.TodoService.Update(ctx, update); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.updateTodo").Int64("id", id).Msg("error updating todo")
		http.Error(w, todoErrorMessage(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Str("func", "*Handler.deleteTodo").Msg("no user ID in context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	id, ok := todoIDFromURL(r)
	if !ok {
		log.Error().Str("func", "*Handler.deleteTodo").Str("id", chi.URLParam(r, "id")).Msg("invalid todo id in url")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.TodoService.Delete(ctx, id, ownerID); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.deleteTodo").Int64("id", id).Msg("error deleting todo")
		http.Error(w, todoErrorMessage(status), status)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// todoIDFromURL extracts the {id} route parameter. Only positive integers
// identify a todo.
func todoIDFromURL(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

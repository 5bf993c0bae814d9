package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/repository"
	"colorsrest/internal/server/service"
)

func (r *Router) handleListColors(w http.ResponseWriter, req *http.Request) {
	r.logger.Info("all colors requested")
	colors, err := r.services.Colors.List(req.Context())
	if err != nil {
		r.internalError(w, "list colors", err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (r *Router) handleGetColorByID(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Not Found")
		return
	}
	c, err := r.services.Colors.Get(req.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Not Found")
			return
		}
		r.internalError(w, "get color", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (r *Router) handleGetColorByName(w http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	c, err := r.services.Colors.GetByName(req.Context(), name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeMessage(w, http.StatusNotFound, "Not Found")
			return
		}
		r.internalError(w, "get color by name", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (r *Router) handleAddColor(w http.ResponseWriter, req *http.Request) {
	var candidate models.Color
	if err := r.decodeJSON(w, req, &candidate); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid json")
		return
	}
	created, err := r.services.Colors.Add(req.Context(), candidate)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, verr.Fields)
		case errors.Is(err, repository.ErrConflict):
			writeMessage(w, http.StatusBadRequest, "You can't give an Id")
		default:
			r.internalError(w, "add color", err)
		}
		return
	}
	r.logger.Info("color created",
		zap.Int("id", created.Id),
		zap.String("nom", created.Nom),
		zap.String("user", getClaims(req.Context()).Subject),
	)
	w.Header().Set("Location", fmt.Sprintf("/api/colors/%d", created.Id))
	writeJSON(w, http.StatusCreated, created)
}

// handleDeleteColor answers 200 when a record was deleted and 204 when there
// was nothing to delete. Neither response discloses more than that.
func (r *Router) handleDeleteColor(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(req, "id"))
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	existed, err := r.services.Colors.Delete(req.Context(), id)
	if err != nil {
		r.internalError(w, "delete color", err)
		return
	}
	if existed {
		r.logger.Info("color deleted",
			zap.Int("id", id),
			zap.String("user", getClaims(req.Context()).Subject),
		)
		w.WriteHeader(http.StatusOK)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (r *Router) internalError(w http.ResponseWriter, op string, err error) {
	r.logger.Error(op, zap.Error(err))
	writeMessage(w, http.StatusInternalServerError, "internal error")
}

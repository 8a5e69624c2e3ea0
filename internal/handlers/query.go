package handlers

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
	"github.com/GregMSThompson/pettravel-backend/internal/response"
)

type QueryService interface {
	Ask(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error)
	FollowUp(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error)
	GetQuery(ctx context.Context, id string) (*models.UserQuery, error)
	Conversation(ctx context.Context, conversationID string) ([]models.UserQuery, error)
	SubmitFeedback(ctx context.Context, id string, req dto.FeedbackRequest) error
}

// queryHandlers serves the assistant endpoints.
type queryHandlers struct {
	ResponseHandler response.ResponseHandler
	QuerySvc        QueryService
}

func NewQueryHandlers(deps *Deps) *queryHandlers {
	return &queryHandlers{
		ResponseHandler: deps.ResponseHandler,
		QuerySvc:        deps.QuerySvc,
	}
}

func (h *queryHandlers) QueryRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Ask)
	r.Post("/follow-up", h.FollowUp)
	r.Get("/conversation/{conversationId}", h.Conversation)
	r.Get("/{id}", h.GetQuery)
	r.Post("/{id}/feedback", h.SubmitFeedback)
	return r
}

func (h *queryHandlers) Ask(w http.ResponseWriter, r *http.Request) {
	var body dto.QueryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.QuerySvc.Ask(r.Context(), body, clientIP(r), r.Header.Get("X-Session-Id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, resp)
}

func (h *queryHandlers) FollowUp(w http.ResponseWriter, r *http.Request) {
	var body dto.QueryCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	resp, err := h.QuerySvc.FollowUp(r.Context(), body, clientIP(r), r.Header.Get("X-Session-Id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, resp)
}

func (h *queryHandlers) GetQuery(w http.ResponseWriter, r *http.Request) {
	query, err := h.QuerySvc.GetQuery(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, query)
}

func (h *queryHandlers) Conversation(w http.ResponseWriter, r *http.Request) {
	queries, err := h.QuerySvc.Conversation(r.Context(), chi.URLParam(r, "conversationId"))
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, http.StatusOK, queries)
}

func (h *queryHandlers) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	var body dto.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.ResponseHandler.HandleError(w, r, errs.NewValidationError("invalid request body"))
		return
	}

	if err := h.QuerySvc.SubmitFeedback(r.Context(), chi.URLParam(r, "id"), body); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}

	h.ResponseHandler.WriteSuccess(w, http.StatusOK, nil)
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

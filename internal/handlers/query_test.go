package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/pettravel-backend/internal/dto"
	"github.com/GregMSThompson/pettravel-backend/internal/errs"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type stubQueryService struct {
	askReq      dto.QueryCreateRequest
	askIP       string
	askSession  string
	followUpReq dto.QueryCreateRequest
	feedbackID  string
	feedback    dto.FeedbackRequest
	resp        *dto.QueryResponse
	err         error
}

func (s *stubQueryService) Ask(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error) {
	s.askReq = req
	s.askIP = ip
	s.askSession = sessionID
	return s.resp, s.err
}

func (s *stubQueryService) FollowUp(ctx context.Context, req dto.QueryCreateRequest, ip, sessionID string) (*dto.QueryResponse, error) {
	s.followUpReq = req
	return s.resp, s.err
}

func (s *stubQueryService) GetQuery(ctx context.Context, id string) (*models.UserQuery, error) {
	return &models.UserQuery{ID: id}, s.err
}

func (s *stubQueryService) Conversation(ctx context.Context, conversationID string) ([]models.UserQuery, error) {
	return nil, s.err
}

func (s *stubQueryService) SubmitFeedback(ctx context.Context, id string, req dto.FeedbackRequest) error {
	s.feedbackID = id
	s.feedback = req
	return s.err
}

func TestAskForwardsRequestMetadata(t *testing.T) {
	svc := &stubQueryService{resp: &dto.QueryResponse{ID: "q1", ResponseText: "answer"}}
	resp := &stubResponseHandler{}
	h := NewQueryHandlers(&Deps{ResponseHandler: resp, QuerySvc: svc})

	body := `{"queryText":"can my dog fly?","destinationCountryId":"jp"}`
	req := httptest.NewRequest(http.MethodPost, "/queries", strings.NewReader(body))
	req.RemoteAddr = "10.0.0.9:51234"
	req.Header.Set("X-Session-Id", "sess-7")

	rr := httptest.NewRecorder()
	h.Ask(rr, req)

	if svc.askReq.QueryText != "can my dog fly?" || svc.askReq.DestinationCountryID != "jp" {
		t.Fatalf("request not forwarded: %+v", svc.askReq)
	}
	if svc.askIP != "10.0.0.9" {
		t.Fatalf("client ip mismatch: %q", svc.askIP)
	}
	if svc.askSession != "sess-7" {
		t.Fatalf("session id mismatch: %q", svc.askSession)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected a 200 success, got %d", resp.writeSuccessStatus)
	}
}

func TestAskBadBody(t *testing.T) {
	svc := &stubQueryService{}
	resp := &stubResponseHandler{}
	h := NewQueryHandlers(&Deps{ResponseHandler: resp, QuerySvc: svc})

	req := httptest.NewRequest(http.MethodPost, "/queries", strings.NewReader(`{broken`))
	rr := httptest.NewRecorder()
	h.Ask(rr, req)

	if !resp.handleErrorCalled {
		t.Fatal("expected a handled error")
	}
	if _, ok := resp.handleError.(*errs.ValidationError); !ok {
		t.Fatalf("expected a validation error, got %v", resp.handleError)
	}
}

func TestFollowUpForwardsBody(t *testing.T) {
	svc := &stubQueryService{resp: &dto.QueryResponse{ID: "q2"}}
	resp := &stubResponseHandler{}
	h := NewQueryHandlers(&Deps{ResponseHandler: resp, QuerySvc: svc})

	body := `{"queryText":"what about cats?","conversationId":"conv-1"}`
	req := httptest.NewRequest(http.MethodPost, "/queries/follow-up", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.FollowUp(rr, req)

	if svc.followUpReq.ConversationID != "conv-1" {
		t.Fatalf("conversation id not forwarded: %+v", svc.followUpReq)
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected a success response")
	}
}

func TestSubmitFeedbackRoutesByID(t *testing.T) {
	svc := &stubQueryService{}
	resp := &stubResponseHandler{}
	h := NewQueryHandlers(&Deps{ResponseHandler: resp, QuerySvc: svc})

	r := h.QueryRoutes()
	req := httptest.NewRequest(http.MethodPost, "/q-55/feedback", strings.NewReader(`{"rating":5}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if svc.feedbackID != "q-55" {
		t.Fatalf("feedback id mismatch: %q", svc.feedbackID)
	}
	if svc.feedback.Rating == nil || *svc.feedback.Rating != 5 {
		t.Fatalf("rating not forwarded: %+v", svc.feedback)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/GregMSThompson/pettravel-backend/internal/middleware"
	"github.com/GregMSThompson/pettravel-backend/internal/models"
)

type stubUserService struct {
	called          bool
	uid, email      string
	first, lastName string
	err             error
}

func (s *stubUserService) CreateUser(ctx context.Context, uid, email, first, last string) error {
	s.called = true
	s.uid = uid
	s.email = email
	s.first = first
	s.lastName = last
	return s.err
}

func (s *stubUserService) GetUser(ctx context.Context, uid string) (*models.User, error) {
	return &models.User{UID: uid}, s.err
}

func (s *stubUserService) UpdateUser(ctx context.Context, uid, first, last string) (*models.User, error) {
	return &models.User{UID: uid, FirstName: first, LastName: last}, s.err
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UIDKey, "uid-123")
	ctx = context.WithValue(ctx, middleware.EmailKey, "jane@example.com")
	return req.WithContext(ctx)
}

func TestCreateUserSuccess(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := authedRequest(http.MethodPost, "/users", `{"firstname":"Jane","lastname":"Doe"}`)
	rr := httptest.NewRecorder()
	h.CreateUser(rr, req)

	if !userSvc.called {
		t.Fatal("expected CreateUser to be called on service")
	}
	if userSvc.uid != "uid-123" || userSvc.email != "jane@example.com" {
		t.Fatalf("identity mismatch: uid %q email %q", userSvc.uid, userSvc.email)
	}
	if userSvc.first != "Jane" || userSvc.lastName != "Doe" {
		t.Fatalf("name mismatch: %q %q", userSvc.first, userSvc.lastName)
	}
	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusCreated {
		t.Fatalf("expected a 201 success, got status %d", resp.writeSuccessStatus)
	}
}

func TestCreateUserServiceError(t *testing.T) {
	boom := errors.New("store down")
	userSvc := &stubUserService{err: boom}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := authedRequest(http.MethodPost, "/users", `{"firstname":"Jane"}`)
	rr := httptest.NewRecorder()
	h.CreateUser(rr, req)

	if !resp.handleErrorCalled || resp.handleError != boom {
		t.Fatalf("expected the service error to be handled, got %v", resp.handleError)
	}
}

func TestCreateUserBadBody(t *testing.T) {
	userSvc := &stubUserService{}
	resp := &stubResponseHandler{}

	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         userSvc,
	})

	req := authedRequest(http.MethodPost, "/users", `{not json`)
	rr := httptest.NewRecorder()
	h.CreateUser(rr, req)

	if userSvc.called {
		t.Fatal("service must not be called on a malformed body")
	}
	if !resp.handleErrorCalled {
		t.Fatal("expected a handled error")
	}
}

func TestGetMe(t *testing.T) {
	resp := &stubResponseHandler{}
	h := NewUserHandlers(&Deps{
		ResponseHandler: resp,
		UserSvc:         &stubUserService{},
	})

	req := authedRequest(http.MethodGet, "/users/me", "")
	rr := httptest.NewRecorder()
	h.GetMe(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected a 200 success, got %d", resp.writeSuccessStatus)
	}
	user, ok := resp.writeSuccessData.(*models.User)
	if !ok || user.UID != "uid-123" {
		t.Fatalf("unexpected payload: %#v", resp.writeSuccessData)
	}
}

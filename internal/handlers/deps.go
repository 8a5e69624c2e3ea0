package handlers

import (
	"log/slog"

	"firebase.google.com/go/v4/auth"

	"github.com/GregMSThompson/pettravel-backend/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	Firebase        *auth.Client
	UserSvc         UserService
	TravelSvc       TravelService
	PetSvc          PetService
	PlanSvc         PlanService
	QuerySvc        QueryService
}

package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/GregMSThompson/pettravel-backend/internal/assistant"
	"github.com/GregMSThompson/pettravel-backend/internal/bootstrap"
	"github.com/GregMSThompson/pettravel-backend/internal/config"
	"github.com/GregMSThompson/pettravel-backend/internal/handlers"
	"github.com/GregMSThompson/pettravel-backend/internal/response"
	"github.com/GregMSThompson/pettravel-backend/internal/router"
	"github.com/GregMSThompson/pettravel-backend/internal/services"
	"github.com/GregMSThompson/pettravel-backend/internal/store"
)

func exitOnError(message string, err error, log *slog.Logger) {
	if err != nil {
		log.Error(message, "error", err)
		os.Exit(1)
	}
}

func main() {
	// bootstrap
	cfg := config.New()
	bs, err := bootstrap.Run(cfg)
	exitOnError("bootstrap failed", err, bs.Log)
	defer bs.Close()

	// stores
	ustore := store.NewUserStore(bs.Firestore)
	cstore := store.NewCountryStore(bs.Firestore)
	ptstore := store.NewPetTypeStore(bs.Firestore)
	rstore := store.NewRequirementStore(bs.Firestore)
	pstore := store.NewPetStore(bs.Firestore)
	plstore := store.NewTravelPlanStore(bs.Firestore)
	qstore := store.NewQueryStore(bs.Firestore)

	// assistant pipeline
	limiter := assistant.NewRateLimiter(cfg.AIRateLimitCalls, cfg.AIRateLimitWindow)
	invoker := assistant.NewInvoker(bs.VertexAdapter, limiter, cfg.VertexModel,
		cfg.AITemperature, cfg.AIMaxTokens, cfg.AIMaxRetries)
	assembler := assistant.NewAssembler(cstore, ptstore, rstore, qstore)
	pipeline := assistant.NewService(assembler, invoker, assistant.NewValidator())

	// services
	userv := services.NewUserService(ustore)
	tvserv := services.NewTravelService(cstore, ptstore, rstore)
	pserv := services.NewPetService(pstore, ptstore)
	plserv := services.NewPlanService(plstore, pstore, rstore)
	qserv := services.NewQueryService(qstore, pipeline)

	// response handler
	rh := response.New(bs.Log)

	// dependancies
	deps := new(handlers.Deps)
	deps.Log = bs.Log
	deps.ResponseHandler = rh
	deps.Firebase = bs.Firebase
	deps.UserSvc = userv
	deps.TravelSvc = tvserv
	deps.PetSvc = pserv
	deps.PlanSvc = plserv
	deps.QuerySvc = qserv

	// router
	r := router.NewRouter(deps)
	err = http.ListenAndServe(":8080", r)
	exitOnError("server start failed", err, bs.Log)
}

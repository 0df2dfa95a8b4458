// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muhindakevin/backend-sub002/internal/accountdelivery"
	"github.com/muhindakevin/backend-sub002/internal/accountrepo"
	"github.com/muhindakevin/backend-sub002/internal/accountservice"
	"github.com/muhindakevin/backend-sub002/internal/creditdelivery"
	"github.com/muhindakevin/backend-sub002/internal/creditservice"
	"github.com/muhindakevin/backend-sub002/internal/driftevents"
	"github.com/muhindakevin/backend-sub002/internal/ledgerrepo"
	"github.com/muhindakevin/backend-sub002/internal/middleware"
	"github.com/muhindakevin/backend-sub002/internal/postingdelivery"
	"github.com/muhindakevin/backend-sub002/internal/postingrepo"
	"github.com/muhindakevin/backend-sub002/internal/postingservice"
	"github.com/muhindakevin/backend-sub002/internal/projector"
	"github.com/muhindakevin/backend-sub002/internal/reconciledelivery"
	"github.com/muhindakevin/backend-sub002/internal/reconcilejob"
	"github.com/muhindakevin/backend-sub002/internal/reconcileservice"
	"github.com/muhindakevin/backend-sub002/pkg/configpkg"
	"github.com/muhindakevin/backend-sub002/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB           *sql.DB
	Engine       *gin.Engine
	Config       configpkg.Config
	ReconcileJob *reconcilejob.Job
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)
	accountRepo := accountrepo.NewRepoPGS(conn)
	postingRepo := postingrepo.NewRepoPGS(conn, config.LockTimeout)
	balanceProjector := projector.New(ledgerRepo, accountRepo)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	var publisher reconcileservice.Publisher = driftevents.NopPublisher{}
	if config.KafkaBrokers != "" {
		brokers := strings.Split(config.KafkaBrokers, ",")
		publisher = driftevents.NewKafkaPublisher(brokers, config.DriftTopic)
	}

	postingService := postingservice.New(postingRepo)
	accountService := accountservice.New(accountRepo, ledgerRepo)
	reconcileService := reconcileservice.New(accountRepo, balanceProjector, postingRepo, publisher)
	creditService := creditservice.New(accountRepo, ledgerRepo)

	postingHandler := postingdelivery.NewHandler(postingService)
	accountHandler := accountdelivery.NewHandler(accountService)
	reconcileHandler := reconciledelivery.NewHandler(reconcileService)
	creditHandler := creditdelivery.NewHandler(creditService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(tokenMaker))

	authRoutes.POST("/postings/contributions", postingHandler.CreateContribution)
	authRoutes.POST("/postings/fine-issuances", postingHandler.CreateFineIssuance)
	authRoutes.POST("/postings/fine-payments", postingHandler.CreateFinePayment)
	authRoutes.POST("/postings/fine-waivers", postingHandler.CreateFineWaiver)
	authRoutes.POST("/postings/loan-disbursements", postingHandler.CreateLoanDisbursement)
	authRoutes.POST("/postings/loan-payments", postingHandler.CreateLoanPayment)
	authRoutes.POST("/postings/reversals", postingHandler.CreateReversal)

	authRoutes.GET("/accounts/:id", accountHandler.Get)
	authRoutes.GET("/accounts/:id/entries", accountHandler.ListEntries)
	authRoutes.GET("/owners/:owner_id/accounts", accountHandler.ListByOwner)

	authRoutes.POST("/accounts/:id/reconciliations", reconcileHandler.Reconcile)
	authRoutes.POST("/accounts/:id/repairs", reconcileHandler.Repair)
	authRoutes.POST("/reconciliations", reconcileHandler.ReconcileAll)

	authRoutes.GET("/members/:id/credit-score", creditHandler.Get)

	server := &Server{
		DB:           conn,
		Engine:       engine,
		Config:       config,
		ReconcileJob: reconcilejob.New(reconcileService, config.ReconcileInterval, logger),
	}

	return server, nil
}

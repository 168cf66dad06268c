package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/capsule-admin/campaign-governance-service/config"
	"github.com/capsule-admin/campaign-governance-service/pkg/constants"
	"github.com/capsule-admin/campaign-governance-service/pkg/database"
	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
	"github.com/capsule-admin/campaign-governance-service/pkg/handlers"
	"github.com/capsule-admin/campaign-governance-service/pkg/identity"
	"github.com/capsule-admin/campaign-governance-service/pkg/livesync"
	"github.com/capsule-admin/campaign-governance-service/pkg/logger"
	"github.com/capsule-admin/campaign-governance-service/pkg/models"
	repositories "github.com/capsule-admin/campaign-governance-service/pkg/repository"
	"github.com/capsule-admin/campaign-governance-service/pkg/service"
	"github.com/capsule-admin/campaign-governance-service/pkg/suggest"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"path/filepath"
)

func main() {
	configFile := flag.String("config", "config/deployment.yaml", "Path to the deployment configuration file")
	flag.Parse()

	envFiles, err := filepath.Glob("config/*.env")
	if err == nil && len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Log.DebugEnabled)

	if err := database.Init(cfg.MongoDB.URI, cfg.MongoDB.Database); err != nil {
		logger.Error(err, "Failed to initialize the document store.")
		log.Fatalf("Initialization failed: %v", err)
	}
	defer func() {
		if err := database.Disconnect(); err != nil {
			logger.Error(err, "Failed to disconnect from the document store.")
		}
	}()

	// Identity bootstrap: custom token when the hosting environment injected
	// one, anonymous otherwise. A failure here is terminal.
	session := identity.NewSession(identity.NewClient(cfg), cfg.Identity.InitialToken)
	if err := session.Start(); err != nil {
		log.Fatalf("Initialization failed: %v", err)
	}

	deploymentId := cfg.Deployment.Id
	if deploymentId == "" {
		deploymentId = constants.DefaultDeploymentId
	}

	handler := newHandler(session, deploymentId, suggest.NewClient(cfg))

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	serverAddr := fmt.Sprintf("%s:%s", cfg.Addr.Host, cfg.Addr.Port)
	logger.Info("Campaign governance service starting on: " + serverAddr)

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Error(err, "Failed to start listener.")
		log.Fatalf("Initialization failed: %v", err)
	}

	server := &http.Server{Handler: enableCORS(router, cfg.Auth.CORSAllowedOrigins)}
	if err := server.Serve(ln); err != nil {
		logger.Error(err, "Failed to serve requests.")
	}
}

// newHandler wires the per-request collection bindings. Each factory
// re-derives its binding from the current identity so an identity change
// never leaves a handler writing to a stale path.
func newHandler(session *identity.Session, deploymentId string, suggestClient *suggest.Client) *handlers.Handler {

	unresolved := func() error {
		return errors.NewClientError(errors.ErrorMessage{
			Code:        errors.ErrIdentityUnresolved.Code,
			Message:     errors.ErrIdentityUnresolved.Message,
			Description: errors.ErrIdentityUnresolved.Description,
		}, http.StatusServiceUnavailable)
	}

	ruleRepo := func() *repositories.RuleRepository {
		db := database.GetMongoDBInstance()
		path := repositories.RulesCollectionPath(deploymentId, session.UserID())
		return repositories.NewRuleRepository(db.Database, path)
	}
	violationRepo := func() *repositories.ViolationRepository {
		db := database.GetMongoDBInstance()
		path := repositories.ViolationsCollectionPath(deploymentId, session.UserID())
		return repositories.NewViolationRepository(db.Database, path)
	}

	return &handlers.Handler{
		Session: session,
		Suggest: suggestClient,
		Rules: func() (handlers.RuleManager, error) {
			repo := ruleRepo()
			if repo == nil {
				return nil, unresolved()
			}
			return service.NewRuleService(repo, session.UserID()), nil
		},
		Violations: func() (handlers.ViolationManager, error) {
			repo := violationRepo()
			if repo == nil {
				return nil, unresolved()
			}
			return service.NewViolationService(repo, session.UserID()), nil
		},
		RuleSource: func() (livesync.Source[models.Rule], error) {
			repo := ruleRepo()
			if repo == nil {
				return nil, unresolved()
			}
			return livesync.NewCollectionSource[models.Rule](repo.Collection), nil
		},
		ViolationSource: func() (livesync.Source[models.Violation], error) {
			repo := violationRepo()
			if repo == nil {
				return nil, unresolved()
			}
			return livesync.NewCollectionSource[models.Violation](repo.Collection), nil
		},
	}
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", allowedOrigin(allowedOrigins, r.Header.Get("Origin")))
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowedOrigin echoes the request origin when the configuration lists it,
// falling back to a wildcard when no list is configured.
func allowedOrigin(allowedOrigins []string, origin string) string {
	if len(allowedOrigins) == 0 {
		return "*"
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return allowed
		}
	}
	return allowedOrigins[0]
}

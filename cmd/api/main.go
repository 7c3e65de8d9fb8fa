package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/trackforge/timetracker-backend/internal/config"
	appHTTP "github.com/trackforge/timetracker-backend/internal/handler/http"
	"github.com/trackforge/timetracker-backend/internal/handler/http/middleware"
	"github.com/trackforge/timetracker-backend/internal/pkg/database"
	"github.com/trackforge/timetracker-backend/internal/pkg/email"
	"github.com/trackforge/timetracker-backend/internal/pkg/storage"
	"github.com/trackforge/timetracker-backend/internal/pkg/token"
	"github.com/trackforge/timetracker-backend/internal/repository/postgresql"
	authService "github.com/trackforge/timetracker-backend/internal/service/auth"
	employeeService "github.com/trackforge/timetracker-backend/internal/service/employee"
	projectService "github.com/trackforge/timetracker-backend/internal/service/project"
	provisioningService "github.com/trackforge/timetracker-backend/internal/service/provisioning"
	screenshotService "github.com/trackforge/timetracker-backend/internal/service/screenshot"
	worksessionService "github.com/trackforge/timetracker-backend/internal/service/worksession"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	projectRepo := postgresql.NewProjectRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	workSessionRepo := postgresql.NewWorkSessionRepository(db)
	screenshotRepo := postgresql.NewScreenshotRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	apiTokenRepo := postgresql.NewAPITokenRepository(db)

	signer, err := token.NewSigner(cfg.Activation.Secret, cfg.Activation.TokenTTL, cfg.Activation.SessionTTL)
	if err != nil {
		log.Fatal("Failed to initialize token signer:", err)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(accountRepo, employeeRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	workSessionSvc := worksessionService.NewWorkSessionService(db, workSessionRepo, employeeRepo)
	screenshotSvc := screenshotService.NewScreenshotService(screenshotRepo, workSessionRepo, fileStorage)
	provisioningSvc := provisioningService.NewProvisioningService(
		db,
		accountRepo,
		employeeRepo,
		projectRepo,
		signer,
		emailService,
		cfg.App.BaseURL,
	)

	tokenGate := middleware.NewAPITokenGate(apiTokenRepo, cfg.API.ProtectedPrefixes, cfg.API.ExemptPaths)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, provisioningSvc)
	workSessionHandler := appHTTP.NewWorkSessionHandler(workSessionSvc)
	screenshotHandler := appHTTP.NewScreenshotHandler(screenshotSvc)
	activationHandler := appHTTP.NewActivationHandler(provisioningSvc, signer)

	router := appHTTP.NewRouter(
		cfg,
		tokenGate,
		authHandler,
		projectHandler,
		employeeHandler,
		workSessionHandler,
		screenshotHandler,
		activationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/chronotec/timeclock-backend-go/internal/config"
	appHTTP "github.com/chronotec/timeclock-backend-go/internal/handler/http"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/database"
	"github.com/chronotec/timeclock-backend-go/internal/pkg/storage"
	"github.com/chronotec/timeclock-backend-go/internal/repository/postgresql"
	employeeService "github.com/chronotec/timeclock-backend-go/internal/service/employee"
	justificationService "github.com/chronotec/timeclock-backend-go/internal/service/justification"
	punchService "github.com/chronotec/timeclock-backend-go/internal/service/punch"
	reportService "github.com/chronotec/timeclock-backend-go/internal/service/report"
	scheduleService "github.com/chronotec/timeclock-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	punchRepo := postgresql.NewPunchRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	justificationRepo := postgresql.NewJustificationRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	txManager := postgresql.NewTxManager(db)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	// Tokens are issued by the external identity platform; this service only
	// verifies them.
	tokenAuth := jwtauth.New("HS256", []byte(cfg.JWT.Secret), nil)

	loc := cfg.BusinessLocation()

	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, loc)
	reportSvc := reportService.NewReportService(punchRepo, scheduleRepo, justificationRepo, employeeRepo, loc)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, employeeRepo)
	justificationSvc := justificationService.NewJustificationService(txManager, justificationRepo, punchRepo, employeeRepo, fileStorage, loc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	justificationHandler := appHTTP.NewJustificationHandler(justificationSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		cfg,
		tokenAuth,
		punchHandler,
		reportHandler,
		scheduleHandler,
		justificationHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

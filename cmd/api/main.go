package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/obraflow/obraflow-backend-go/internal/config"
	appHTTP "github.com/obraflow/obraflow-backend-go/internal/handler/http"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/cron"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/database"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/holidayapi"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/jwt"
	"github.com/obraflow/obraflow-backend-go/internal/repository/postgresql"
	absenceService "github.com/obraflow/obraflow-backend-go/internal/service/absence"
	punchService "github.com/obraflow/obraflow-backend-go/internal/service/punch"
	scheduleService "github.com/obraflow/obraflow-backend-go/internal/service/schedule"
	timesheetService "github.com/obraflow/obraflow-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone:", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), int32(cfg.Database.MaxConns), int32(cfg.Database.MinConns))
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	holidayClient := holidayapi.NewClient(cfg.HolidayAPI.BaseURL, cfg.HolidayAPI.Timeout)

	timesheetSvc := timesheetService.NewTimesheetService(
		employeeRepo,
		workScheduleRepo,
		punchRepo,
		absenceRepo,
		holidayClient,
		location,
	)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, employeeRepo)

	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayClient)

	scheduler := cron.NewScheduler()
	timesheetJobs := cron.NewTimesheetJobs(
		employeeRepo,
		workScheduleRepo,
		punchRepo,
		holidayClient,
		holidayClient,
		location,
	)
	timesheetJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		timesheetHandler,
		punchHandler,
		absenceHandler,
		scheduleHandler,
		holidayHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/obraflow/obraflow-backend-go/internal/handler/http/middleware"
	"github.com/obraflow/obraflow-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	timesheetHandler TimesheetHandler,
	punchHandler PunchHandler,
	absenceHandler AbsenceHandler,
	scheduleHandler ScheduleHandler,
	holidayHandler HolidayHandler,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "obraflow-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.GetPayrollAudit)
				r.Get("/{employeeID}", timesheetHandler.GetEmployeeTimesheet)
			})

			r.Route("/punches", func(r chi.Router) {
				r.Put("/", punchHandler.Upsert)
				r.Delete("/", punchHandler.Delete)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Put("/", absenceHandler.Upsert)
				r.Delete("/{absenceID}", absenceHandler.Delete)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Route("/{employeeID}", func(r chi.Router) {
					r.Get("/", scheduleHandler.Get)
					r.Put("/", scheduleHandler.Upsert)
					r.Delete("/rules/{weekday}", scheduleHandler.DeleteRule)
				})
			})

			r.Get("/holidays/{year}", holidayHandler.ListByYear)
		})
	})
	return r
}

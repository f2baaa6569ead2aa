package http

import (
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the transport settings of the API.
type RouterConfig struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	LogLevel       slog.Level
}

type Handlers struct {
	Auth         AuthHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Employee     EmployeeHandler
	Payroll      PayrollHandler
	Dashboard    DashboardHandler
	Notification NotificationHandler
	Report       ReportHandler
}

func NewRouter(cfg RouterConfig, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	verifier := jwtauth.Verifier(JWTService.JWTAuth())
	authRequired := middleware.AuthRequired(JWTService)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/signup", h.Auth.Signup)

			r.Group(func(r chi.Router) {
				r.Use(verifier, authRequired)
				r.Post("/logout", h.Auth.Logout)
				r.Get("/me", h.Auth.Me)
			})
		})

		// Authenticated by the short-lived SSE token in the query string
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(verifier, authRequired)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Post("/breaks/start", h.Attendance.StartBreak)
				r.Post("/breaks/end", h.Attendance.EndBreak)
				r.Get("/my", h.Attendance.GetMyAttendance)
				r.Get("/today", h.Attendance.Today)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Attendance.List)
					r.Get("/employees/{code}", h.Attendance.GetEmployeeAttendance)
					r.Get("/export", h.Report.ExportAttendance)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)
				r.Get("/my", h.Leave.GetMyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Leave.ListRequests)
					r.Get("/pending", h.Leave.ListPending)
					r.Get("/{id}", h.Leave.GetRequest)
					r.Post("/{id}/decision", h.Leave.Decide)
				})
			})

			r.With(middleware.RequireAdmin).Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}/profile", h.Employee.UpdateProfile)
				r.Put("/{id}/salary", h.Employee.UpdateSalary)
			})

			r.Put("/profile", h.Employee.UpdateMyProfile)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", h.Payroll.GetMyPayroll)
				r.Get("/my/payslip", h.Payroll.GetMyPayslip)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", h.Payroll.List)
					r.Get("/{code}/payslip", h.Payroll.GetPayslip)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", h.Dashboard.GetMyDashboard)
				r.With(middleware.RequireAdmin).Get("/", h.Dashboard.GetAdminDashboard)
			})

			r.Get("/notifications", h.Notification.List)
			r.Get("/notifications/unread-count", h.Notification.UnreadCount)
			r.Get("/notifications/sse-token", h.Notification.GetSSEToken)
			r.Post("/notifications/read", h.Notification.MarkAsRead)
			r.Post("/notifications/read-all", h.Notification.MarkAllAsRead)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Route not found")
	})

	return r
}

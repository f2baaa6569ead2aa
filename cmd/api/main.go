package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dayflow-hris/hris-backend-go/internal/config"
	"github.com/dayflow-hris/hris-backend-go/internal/fixtures"
	appHTTP "github.com/dayflow-hris/hris-backend-go/internal/handler/http"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/clock"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/cron"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hris/hris-backend-go/internal/pkg/sse"
	"github.com/dayflow-hris/hris-backend-go/internal/repository/memory"
	attendanceService "github.com/dayflow-hris/hris-backend-go/internal/service/attendance"
	serviceAuth "github.com/dayflow-hris/hris-backend-go/internal/service/auth"
	dashboardService "github.com/dayflow-hris/hris-backend-go/internal/service/dashboard"
	employeeService "github.com/dayflow-hris/hris-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hris/hris-backend-go/internal/service/leave"
	notificationService "github.com/dayflow-hris/hris-backend-go/internal/service/notification"
	payrollService "github.com/dayflow-hris/hris-backend-go/internal/service/payroll"
	reportService "github.com/dayflow-hris/hris-backend-go/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level, err := config.ParseLogLevel(cfg.App.LogLevel)
	if err != nil {
		return err
	}
	logFormat := httplog.SchemaECS.Concise(!cfg.IsProduction())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hris"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	loc, err := clock.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone: %w", err)
	}
	clk := clock.New(loc)

	employeeRepo := memory.NewEmployeeRepository()
	credentialRepo := memory.NewCredentialRepository()
	sessionRepo := memory.NewSessionRepository()
	attendanceRepo := memory.NewAttendanceRepository()
	leaveRequestRepo := memory.NewLeaveRequestRepository()
	notificationRepo := memory.NewNotificationRepository()

	seed, err := fixtures.ReadSeed(cfg.App.SeedFile)
	if err != nil {
		return err
	}
	if err := fixtures.Load(ctx, seed, fixtures.Repositories{
		Employees:   employeeRepo,
		Credentials: credentialRepo,
		Attendance:  attendanceRepo,
		Leaves:      leaveRequestRepo,
	}, clk); err != nil {
		return fmt.Errorf("failed to load seed data: %w", err)
	}

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, clk)
	hub := sse.NewHub()
	notifService := notificationService.NewNotificationService(notificationRepo, hub, clk, notificationService.Config{})
	defer notifService.Stop()

	authService := serviceAuth.NewAuthService(credentialRepo, sessionRepo, employeeRepo, JWTService, clk)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, clk)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo, notifService, clk)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, clk)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, clk)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, leaveRequestRepo, employeeRepo, clk)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)

	scheduler := cron.NewScheduler()
	cron.NewAuthJobs(JWTService, clk, cfg.Cron.RevokedTokenSweepInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		AllowedOrigins: cfg.App.CORSAllowedOrigins,
		Logger:         logger,
		LogLevel:       level,
	}, JWTService, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authService),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, dashboardSvc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Employee:     appHTTP.NewEmployeeHandler(employeeSvc),
		Payroll:      appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:    appHTTP.NewDashboardHandler(dashboardSvc),
		Notification: appHTTP.NewNotificationHandler(notifService, JWTService),
		Report:       appHTTP.NewReportHandler(reportSvc),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Open SSE streams end when the signal context is cancelled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

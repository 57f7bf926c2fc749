package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/workpulse-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/workpulse-hr/attendance-backend-go/internal/handler/http"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/database"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/workpulse-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/workpulse-hr/attendance-backend-go/internal/service/auth"
	reportService "github.com/workpulse-hr/attendance-backend-go/internal/service/report"
	shiftService "github.com/workpulse-hr/attendance-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	// The stats cache is optional; without REDIS_ADDR stats are always computed.
	var cache *redis.Client
	if cfg.Redis.Addr != "" {
		cache = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	txManager := postgresql.NewTxManager(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	shiftResolver := shiftService.NewResolver(shiftRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		txManager,
		attendanceRepo,
		shiftRepo,
		shiftResolver,
		cfg.Attendance,
		loc,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, cache, loc)
	authSvc := authService.NewAuthService(employeeRepo, JWTService)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, loc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		attendanceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/permission"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var (
	seedEmail    string
	seedPassword string
	seedName     string
	seedDemo     bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with an admin account",
	Long:  `Create the admin account. With --demo, also create a staff account with attendance and permission rows for the current month.`,
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "admin@example.com", "admin email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "password123", "admin password")
	seedCmd.Flags().StringVar(&seedName, "name", "Administrator", "admin name")
	seedCmd.Flags().BoolVar(&seedDemo, "demo", false, "also seed a staff account with sample data")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{MaxConns: 2})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)

	return postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		if _, _, err := ensureUser(txCtx, userRepo, seedName, seedEmail, seedPassword, user.RoleAdmin); err != nil {
			return err
		}
		if !seedDemo {
			return nil
		}

		staff, created, err := ensureUser(txCtx, userRepo, "Demo Staff", "staff@example.com", seedPassword, user.RoleStaff)
		if err != nil || !created {
			return err
		}
		return seedMonth(txCtx, attendanceRepo, permissionRepo, staff.ID, time.Now())
	})
}

// ensureUser creates the account unless the email is already registered.
// created reports whether a new row was written.
func ensureUser(ctx context.Context, repo user.UserRepository, name, email, password string, role user.Role) (u user.User, created bool, err error) {
	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		slog.Info("User already exists", "email", email)
		return existing, false, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, false, fmt.Errorf("hash password: %w", err)
	}

	u, err = repo.Create(ctx, user.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       user.StatusActive,
	})
	if err != nil {
		return user.User{}, false, fmt.Errorf("create %s: %w", email, err)
	}

	slog.Info("Seeded user", "email", email, "role", role)
	return u, true, nil
}

// seedMonth writes one attendance row per elapsed day of now's month, cycling
// through the statuses, and one permission of each type.
func seedMonth(ctx context.Context, attendanceRepo attendance.AttendanceRepository, permissionRepo permission.PermissionRepository, userID int64, now time.Time) error {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	for day := 0; day < now.Day(); day++ {
		date := first.AddDate(0, 0, day)
		status := attendance.Statuses[day%len(attendance.Statuses)]

		record := attendance.Attendance{UserID: userID, Date: date, Status: status}
		if status == attendance.StatusPresent || status == attendance.StatusLate {
			in := date.Add(8 * time.Hour)
			out := date.Add(17 * time.Hour)
			if status == attendance.StatusLate {
				in = in.Add(45 * time.Minute)
			}
			record.TimeIn, record.TimeOut = &in, &out
		}

		if _, err := attendanceRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("seed attendance %s: %w", date.Format(time.DateOnly), err)
		}
	}

	for i, t := range permission.Types {
		note := fmt.Sprintf("demo %s", t)
		if _, err := permissionRepo.Create(ctx, permission.Permission{
			UserID:     userID,
			Type:       t,
			Tanggal:    first.AddDate(0, 0, i),
			Keterangan: &note,
		}); err != nil {
			return fmt.Errorf("seed permission %s: %w", t, err)
		}
	}

	slog.Info("Seeded demo month", "user_id", userID, "month", first.Format("2006-01"))
	return nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"dcn-community/cmd/seed_initial_data/internal/seedmodels"
	"dcn-community/internal/config"
	"dcn-community/internal/database"
	"dcn-community/internal/domain"
	"dcn-community/internal/logger"
	"dcn-community/internal/repository"

	"go.uber.org/zap"
)

const defaultSeedFilePath = "configs/seed_data/initial_data.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	seedFilePath := defaultSeedFilePath
	if len(os.Args) > 1 {
		seedFilePath = os.Args[1]
	}

	log.Info("Starting initial data seeding process...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.MigrateUp(db.DB); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	log.Info("Loading seed data from file", zap.String("path", seedFilePath))
	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}
	var seed seedmodels.SeedData
	if err := json.Unmarshal(byteValue, &seed); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}

	adminRepo := repository.NewAdminDatabaseAdapter(db)
	kontributorRepo := repository.NewKontributorDatabaseAdapter(db)

	seeded, err := seedAdmins(ctx, adminRepo, seed.Admins)
	if err != nil {
		log.Fatal("Failed to seed admins", zap.Error(err))
	}
	log.Info("Admins seeded", zap.Int("count", seeded))

	created, skipped, err := seedKontributor(ctx, kontributorRepo, seed.Kontributor)
	if err != nil {
		log.Fatal("Failed to seed contributors", zap.Error(err))
	}
	log.Info("Contributors seeded", zap.Int("created", created), zap.Int("skipped", skipped))
	log.Info("Initial data seeding process completed.")
}

// seedAdmins upserts every admin by email so reruns refresh role and permissions.
func seedAdmins(ctx context.Context, repo domain.AdminRepository, admins []seedmodels.SeedAdmin) (int, error) {
	count := 0
	for _, sa := range admins {
		email := strings.TrimSpace(sa.Email)
		if email == "" {
			logger.Get().Warn("Skipping admin without email", zap.String("nama", sa.Nama))
			continue
		}
		role := sa.Role
		if role != domain.RoleSuperAdmin {
			role = domain.RoleAdmin
		}
		if err := repo.Upsert(ctx, domain.NewAdmin(email, sa.Nama, role, sa.Permissions)); err != nil {
			return count, fmt.Errorf("admin %s: %w", email, err)
		}
		count++
	}
	return count, nil
}

// seedKontributor creates contributors whose NIM is not registered yet.
func seedKontributor(ctx context.Context, repo domain.KontributorRepository, list []seedmodels.SeedKontributor) (int, int, error) {
	created, skipped := 0, 0
	for _, sk := range list {
		existing, err := repo.GetByNIM(ctx, sk.NIM)
		if err != nil {
			return created, skipped, fmt.Errorf("kontributor %s: %w", sk.NIM, err)
		}
		if existing != nil {
			skipped++
			continue
		}
		k := domain.NewKontributor(sk.NIM, sk.Nama, sk.Email)
		if err := k.Validate(); err != nil {
			logger.Get().Warn("Skipping invalid contributor", zap.String("nim", sk.NIM), zap.Error(err))
			skipped++
			continue
		}
		if err := repo.Create(ctx, k); err != nil {
			return created, skipped, fmt.Errorf("kontributor %s: %w", sk.NIM, err)
		}
		created++
	}
	return created, skipped, nil
}

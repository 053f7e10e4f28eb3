package bootstrap

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/siteproof-backend/config"
	projectdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	projectrepo "github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/repository"
	proofdomain "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	proofrepo "github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/repository"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/memory"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/postgres"
)

// Storage is the opened backend shared by every request.
type Storage struct {
	Projects projectdomain.Repository
	Proofs   proofdomain.Repository
	// DB is nil for the memory backend.
	DB    *sql.DB
	close func()
}

// MemoryStorage returns empty in-process stores.
func MemoryStorage() *Storage {
	return &Storage{
		Projects: memory.NewProjectStore(),
		Proofs:   memory.NewProofStore(),
		close:    func() {},
	}
}

// OpenStorage opens the configured backend. For SQL backends the embedded
// migrations are applied before returning.
func OpenStorage(ctx context.Context, cfg *config.DatabaseConfig, log logrus.FieldLogger) (*Storage, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("using in-memory storage; data is lost on restart")
		return MemoryStorage(), nil
	}

	db, closeDB, err := OpenDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		closeDB()
		return nil, err
	}
	log.WithFields(logrus.Fields{"driver": cfg.Driver, "migrations": len(applied)}).Info("database ready")

	return &Storage{
		Projects: projectrepo.NewProjectRepository(db),
		Proofs:   proofrepo.NewProofRepository(db),
		DB:       db,
		close:    closeDB,
	}, nil
}

func (s *Storage) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

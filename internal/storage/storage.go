package storage

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/budget"
	"github.com/carson-networks/finance-tracker/internal/storage/expense"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Storage bundles the database handle with read-side table access. Table
// fields are interfaces so tests can swap in mocks.
type Storage struct {
	DB       *sql.DB
	Budgets  budget.ITable
	Expenses expense.ITable
	Users    user.ITable
}

// NewStorage opens the postgres connection described by env.
func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		logrus.WithError(err).Fatal("sql.Open")
	}

	reader := NewReader(db)
	return &Storage{
		DB:       db,
		Budgets:  reader.Budgets,
		Expenses: reader.Expenses,
		Users:    reader.Users,
	}
}

// Write begins a transaction and returns a Writer scoped to it. The caller
// (the operator) is responsible for Commit or Rollback.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	w := NewWriter(tx)
	return &w, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/CemWebDev/python-todo-backend/internal/config"
	"github.com/CemWebDev/python-todo-backend/internal/logger"
)

// Storages bundles the repositories of whichever backend the DSN selected,
// together with the connection that backs them.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository

	backend backend
}

// NewStorages connects to the backend addressed by cfg.DB.DSN:
//   - mongodb:// → MongoDB collections, indexes ensured;
//   - postgres:// → PostgreSQL via pgx, migrations applied;
//   - sqlite:// or file: → SQLite, migrations applied.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	driver, err := cfg.DB.Driver()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedDSN, err)
	}

	log.Debug().Str("driver", driver).Msg("creating storages")

	switch driver {
	case config.DriverMongo:
		mongoDB, err := NewConnectMongo(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository: NewMongoUserRepository(mongoDB.Users(), log),
			TodoRepository: NewMongoTodoRepository(mongoDB.Todos(), log),
			backend:        mongoDB,
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		var db *DB
		if driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
			_ = db.Close(ctx)
			return nil, err
		}

		return NewSQLStorages(db, log), nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDSN, driver)
}

// NewSQLStorages wires the SQL repositories over an already connected DB.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewSQLUserRepository(db, log),
		TodoRepository: NewSQLTodoRepository(db, log),
		backend:        db,
	}
}

// Ping checks that the backing store is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Ping(ctx)
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}
	return s.backend.Close(ctx)
}

// backend is a live connection to one of the storage engines.
type backend interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

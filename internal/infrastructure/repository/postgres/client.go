package postgres

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/quizplease/statsboard/internal/platform/logging"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/quizplease/statsboard/internal/usecase"
)

// Client lazily establishes a single shared connection pool to the results
// store. The first successful connect is memoized for the process lifetime;
// a failed attempt is not, so the next interaction retries with a fresh
// connect instead of pinning the failure.
type Client struct {
	dsn    string
	dbName string
	logger *logging.Logger

	mu sync.Mutex
	db *sqlx.DB
}

func NewClient(dsn, dbName string, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	return &Client{dsn: dsn, dbName: dbName, logger: logger}
}

func (c *Client) DB(ctx context.Context) (*sqlx.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := otelsqlx.Connect("postgres", c.dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(c.dbName),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, connectError(err)
	}

	c.logger.InfoContext(ctx, "results store connected", "database", c.dbName)
	c.db = db
	return db, nil
}

// connectError carries the unavailability sentinel so callers that cannot
// degrade (chart and export downloads) answer 503 instead of 500.
func connectError(err error) error {
	return errors.Mark(errors.Wrap(err, "connect to results store"), usecase.ErrStoreUnavailable)
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

// Command migrate applies the blueprints schema to DATABASE_URL.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"vibecraft/internal/infra"
	"vibecraft/internal/sqlinline"
)

const dropBlueprintsSchema = `drop table if exists blueprints;`

func main() {
	_ = godotenv.Load()

	var (
		dsnFlag  string
		dropFlag bool
	)
	flag.StringVar(&dsnFlag, "dsn", "", "database url (defaults to DATABASE_URL)")
	flag.BoolVar(&dropFlag, "drop", false, "drop the blueprints table before applying the schema")
	flag.Parse()

	dsn := strings.TrimSpace(dsnFlag)
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if dsn == "" {
		exitWithError(errors.New("DATABASE_URL or -dsn is required"))
	}

	logger := infra.NewLogger(os.Getenv("APP_ENV")).With().Str("cmd", "migrate").Logger()

	stmts, err := plan(dropFlag)
	if err != nil {
		exitWithError(err)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		exitWithError(fmt.Errorf("open database: %w", err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := apply(ctx, db, stmts); err != nil {
		exitWithError(err)
	}
	logger.Info().Int("statements", len(stmts)).Bool("drop", dropFlag).Msg("schema applied")
}

type step struct {
	marker string
	sql    string
}

// plan lists the statements to run in order.
func plan(drop bool) ([]step, error) {
	var steps []step
	if drop {
		steps = append(steps, step{marker: "drop", sql: dropBlueprintsSchema})
	}
	marker, body, err := infra.ExtractMarker(sqlinline.QCreateBlueprintsSchema)
	if err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	steps = append(steps, step{marker: marker, sql: body})
	return steps, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// apply runs steps in one transaction.
func apply(ctx context.Context, db txBeginner, steps []step) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := run(ctx, tx, steps); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func run(ctx context.Context, ex execer, steps []step) error {
	for _, s := range steps {
		if _, err := ex.ExecContext(ctx, s.sql); err != nil {
			return fmt.Errorf("apply %s: %w", s.marker, err)
		}
	}
	return nil
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

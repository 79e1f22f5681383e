package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/murkotick/storefront-graph/internal/pkg/logger"
)

// migrate applies the placement journal DDL to a Cloud Spanner database
// (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/storefront
//	go run ./cmd/migrate
func main() {
	ddlPath := flag.String("ddl", "migrations/001_placement_journal.sql", "DDL file to apply")
	flag.Parse()

	log := logger.New(logger.Options{Service: "migrate", Env: os.Getenv("APP_ENV"), Level: os.Getenv("LOG_LEVEL")})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	if db == "" {
		fatal(log, "SPANNER_DATABASE is required")
	}

	stmts, err := readDDLStatements(*ddlPath)
	if err != nil {
		fatal(log, "read DDL", "error", err)
	}
	if len(stmts) == 0 {
		fatal(log, "no DDL statements found", "path", *ddlPath)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		fatal(log, "database admin client", "error", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		fatal(log, "update database DDL", "error", err)
	}
	if err := op.Wait(ctx); err != nil {
		fatal(log, "wait for DDL", "error", err)
	}

	log.Info("applied DDL", "statements", len(stmts), "database", db)
}

func fatal(log *slog.Logger, msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}

// readDDLStatements splits the file on ";" and drops blank statements and
// "--" comment lines.
func readDDLStatements(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitDDL(string(b)), nil
}

func splitDDL(sql string) []string {
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}

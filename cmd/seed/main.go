package main

import (
	"context"
	"flag"
	"os"

	"github.com/RoyceAzure/lab/bookshop/internal/config"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/seed"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// 開發用: 套用 migration 並匯入書籍目錄
func main() {
	file := flag.String("file", "docs/books.yaml", "catalog seed yaml")
	migrateOnly := flag.Bool("migrate-only", false, "only run migrations")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	cf := config.GetConfig()

	if err := seed.RunDBMigration(cf.DbSource()); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	if *migrateOnly {
		return
	}

	catalog, err := config.LoadCatalogSeed(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("failed to load catalog")
	}

	conn, err := db.GetDbConn(db.ConnConfig{
		DbName:  cf.DbName,
		Host:    cf.DbHost,
		Port:    cf.DbPort,
		User:    cf.DbUser,
		Pas:     cf.DbPas,
		SSLMode: cf.DbSSLMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	n, err := seed.SeedCatalog(context.Background(), db.NewStore(conn), catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
	log.Info().Int("books", n).Msg("seed completed")
}

package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoyceAzure/lab/bookshop/internal/config"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/migrations"
	repoModel "github.com/RoyceAzure/lab/bookshop/internal/infra/repository/db/model"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RunDBMigration 套用內嵌的 migration, 沒有變更不算錯誤
func RunDBMigration(dbSource string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, dbSource)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	version, dirty, _ := m.Version()
	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("db migration applied")
	return nil
}

func toRepoBook(b config.SeedBook) (*repoModel.Book, error) {
	price, err := decimal.NewFromString(b.Price)
	if err != nil {
		return nil, fmt.Errorf("seed book %s: invalid price %q: %w", b.ISBN, b.Price, err)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("seed book %s: negative price", b.ISBN)
	}
	return &repoModel.Book{
		ISBN:    b.ISBN,
		Author:  b.Author,
		Title:   b.Title,
		Price:   price,
		Subject: b.Subject,
	}, nil
}

/*
SeedCatalog 同一個 transaction 寫入所有書籍
已存在的 isbn 略過, 重複執行不會改變資料
*/
func SeedCatalog(ctx context.Context, store db.IStore, catalog *config.CatalogSeed) (int, error) {
	if catalog == nil || len(catalog.Books) == 0 {
		return 0, nil
	}

	books := make([]*repoModel.Book, 0, len(catalog.Books))
	for _, b := range catalog.Books {
		book, err := toRepoBook(b)
		if err != nil {
			return 0, err
		}
		books = append(books, book)
	}

	err := store.ExecTx(ctx, func(tx db.IStore) error {
		for _, book := range books {
			if err := tx.CreateBookIfNotExists(ctx, book); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info().Int("books", len(books)).Msg("catalog seeded")
	return len(books), nil
}

package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	pgxvector "github.com/pgvector/pgvector-go/pgx"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/openai"
	"github.com/ribslabs/giftwise/internal/adapters/outbound/postgres"
	"github.com/ribslabs/giftwise/internal/domain"
)

// giftloader ingests gifts from a CSV file into the catalog. Required columns:
// name, brief_description, full_description, price_range, categories. Optional:
// occasions, recipient_types, purchase_url, has_affiliate_commission,
// popularity_score. List columns hold comma-separated values.
func main() {
	_ = godotenv.Load()

	var (
		file   = flag.String("file", "", "path to the CSV file containing gifts")
		dryRun = flag.Bool("dry-run", false, "validate the CSV without writing to the catalog")
	)
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: giftloader -file gifts.csv [-dry-run]")
		os.Exit(2)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	ctx := context.Background()

	embedder := newEmbedder()
	catalog, db, err := newCatalog(ctx)
	if err != nil {
		logger.Fatalf("failed to connect to catalog: %v", err)
	}
	defer db.Close() //nolint:errcheck

	created, updated, errCount, err := loadGifts(ctx, logger, *file, embedder, catalog, *dryRun)
	if err != nil {
		logger.Fatalf("load failed: %v", err)
	}

	logger.Printf("Summary: %d created, %d updated, %d errors", created, updated, errCount)
	if errCount > 0 {
		os.Exit(1)
	}
}

func newEmbedder() domain.EmbeddingProvider {
	retryCli := retryablehttp.NewClient()
	retryCli.RetryMax = 3
	retryCli.Logger = nil

	client := openai.NewAPIClient(
		getenv("OPENAI_BASE_URL", "https://api.openai.com"),
		os.Getenv("OPENAI_API_KEY"),
		retryCli.StandardClient(),
	)
	dimensions, _ := strconv.Atoi(getenv("EMBEDDING_DIMENSIONS", "1536"))
	return openai.NewEmbeddingProviderAdapter(
		client,
		getenv("EMBEDDING_MODEL", "text-embedding-3-small"),
		dimensions,
	)
}

func newCatalog(ctx context.Context) (domain.GiftCatalog, *sql.DB, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		getenv("DB_HOST", "localhost"),
		getenv("DB_PORT", "5432"),
		os.Getenv("DB_NAME"),
	)

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, nil, err
	}
	cfg.AfterConnect = func(ctx context.Context, pgconn *pgx.Conn) error {
		return pgxvector.RegisterTypes(ctx, pgconn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	db := sql.OpenDB(stdlib.GetPoolConnector(pool))
	catalog := postgres.NewGiftCatalog(db)
	if err := catalog.HealthCheck(ctx); err != nil {
		return nil, nil, err
	}
	return catalog, db, nil
}

func loadGifts(ctx context.Context, logger *log.Logger, path string, embedder domain.EmbeddingProvider, catalog domain.GiftCatalog, dryRun bool) (created, updated, errCount int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, 0, err
	}
	defer f.Close() //nolint:errcheck

	rows, err := readGiftRows(csv.NewReader(f))
	if err != nil {
		return 0, 0, 0, err
	}
	if len(rows) == 0 {
		return 0, 0, 0, nil
	}

	gifts := make([]domain.Gift, len(rows))
	texts := make([]string, len(rows))
	for i, row := range rows {
		gifts[i] = row.toGift()
		texts[i] = gifts[i].EmbeddingText()
	}

	results, err := embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("failed to embed gifts: %w", err)
	}

	for i := range gifts {
		gift := gifts[i]
		gift.Embedding = results[i].Vector

		existing, found, err := catalog.FindGiftByName(ctx, gift.Name)
		if err != nil {
			return created, updated, errCount, fmt.Errorf("failed to look up %q: %w", gift.Name, err)
		}
		if found {
			gift.ID = existing.ID
		}

		if err := gift.Validate(embedder.Dimensions()); err != nil {
			logger.Printf("row %d (%s): %v", rows[i].line, gift.Name, err)
			errCount++
			continue
		}

		action := "Created"
		if found {
			action = "Updated"
		}
		if dryRun {
			logger.Printf("[dry-run] %s: %s", action, gift.Name)
		} else {
			if err := catalog.UpsertGift(ctx, gift); err != nil {
				return created, updated, errCount, fmt.Errorf("failed to upsert %q: %w", gift.Name, err)
			}
			logger.Printf("%s: %s", action, gift.Name)
		}

		if found {
			updated++
		} else {
			created++
		}
	}

	return created, updated, errCount, nil
}

type giftRow struct {
	line   int
	fields map[string]string
}

func (r giftRow) toGift() domain.Gift {
	popularity := 0.5
	if v, err := strconv.ParseFloat(r.fields["popularity_score"], 64); err == nil {
		popularity = v
	}

	return domain.Gift{
		ID:                     uuid.New(),
		Name:                   strings.TrimSpace(r.fields["name"]),
		BriefDescription:       strings.TrimSpace(r.fields["brief_description"]),
		FullDescription:        strings.TrimSpace(r.fields["full_description"]),
		PriceRange:             domain.PriceRange(strings.ToLower(strings.TrimSpace(r.fields["price_range"]))),
		Categories:             parseList(r.fields["categories"]),
		Occasions:              parseList(r.fields["occasions"]),
		RecipientTypes:         parseList(r.fields["recipient_types"]),
		PopularityScore:        popularity,
		PurchaseURL:            strings.TrimSpace(r.fields["purchase_url"]),
		HasAffiliateCommission: parseBool(r.fields["has_affiliate_commission"]),
	}
}

var requiredColumns = []string{"name", "brief_description", "full_description", "price_range", "categories"}

func readGiftRows(reader *csv.Reader) ([]giftRow, error) {
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	header := records[0]
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing required column %q", required)
		}
	}

	rows := make([]giftRow, 0, len(records)-1)
	for i, record := range records[1:] {
		fields := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx < len(record) {
				fields[name] = record[idx]
			}
		}
		if strings.TrimSpace(fields["name"]) == "" {
			continue
		}
		rows = append(rows, giftRow{line: i + 2, fields: fields})
	}
	return rows, nil
}

func parseList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "y", "1":
		return true
	}
	return false
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

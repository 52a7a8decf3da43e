package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/ribslabs/giftwise/internal/domain"
	"github.com/ribslabs/giftwise/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	giftFields = []string{
		"id",
		"name",
		"brief_description",
		"full_description",
		"price_range",
		"categories",
		"occasions",
		"recipient_types",
		"embedding",
		"popularity_score",
		"purchase_url",
		"has_affiliate_commission",
	}
)

// GiftCatalog implements the domain.GiftCatalog interface using PostgreSQL
// with the pgvector extension as the storage backend.
type GiftCatalog struct {
	sb squirrel.StatementBuilderType
}

// NewGiftCatalog creates a new instance of GiftCatalog.
func NewGiftCatalog(br squirrel.BaseRunner) GiftCatalog {
	return GiftCatalog{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// SearchSimilar returns gifts whose embeddings are cosine-similar to the query
// vector, ordered by descending similarity. Rows below the threshold are
// filtered in the store.
func (gc GiftCatalog) SearchSimilar(ctx context.Context, embedding []float64, limit int, threshold float64) ([]domain.ScoredGift, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
		attribute.Float64("threshold", threshold),
	))
	defer span.End()

	vec := pgvector.NewVector(toFloat32Truncated(embedding))
	qry := gc.sb.
		Select(giftFields...).
		Column(squirrel.Expr("1 - (embedding <=> ?) AS score", vec)).
		From("gifts").
		Where(squirrel.Expr("1 - (embedding <=> ?) >= ?", vec, threshold)).
		OrderByClause(squirrel.Expr("embedding <=> ?", vec)).
		Limit(uint64(limit))

	rows, err := qry.QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var scored []domain.ScoredGift
	for rows.Next() {
		var (
			gr    giftRow
			score float64
		)
		if err := rows.Scan(append(gr.scanDest(), &score)...); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		gift, err := gr.toGift()
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		scored = append(scored, domain.ScoredGift{Gift: gift, Score: score})
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return scored, nil
}

// GetGift retrieves a gift by its ID.
func (gc GiftCatalog) GetGift(ctx context.Context, id uuid.UUID) (domain.Gift, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var gr giftRow
	err := gc.sb.
		Select(giftFields...).
		From("gifts").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(gr.scanDest()...)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Gift{}, false, nil
		}
		return domain.Gift{}, false, err
	}

	gift, err := gr.toGift()
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, false, err
	}
	return gift, true, nil
}

// GetGifts retrieves multiple gifts by id. Unresolvable ids are silently omitted.
func (gc GiftCatalog) GetGifts(ctx context.Context, ids []uuid.UUID) ([]domain.Gift, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("ids", len(ids)),
	))
	defer span.End()

	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := gc.sb.
		Select(giftFields...).
		From("gifts").
		Where(squirrel.Eq{"id": ids}).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var gifts []domain.Gift
	for rows.Next() {
		var gr giftRow
		if err := rows.Scan(gr.scanDest()...); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		gift, err := gr.toGift()
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		gifts = append(gifts, gift)
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return gifts, nil
}

// GetPopular returns gifts ordered by popularity score, used as the fallback
// listing when similarity search comes back empty. The popularity score
// doubles as the relevance score.
func (gc GiftCatalog) GetPopular(ctx context.Context, limit int) ([]domain.ScoredGift, error) {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.Int("limit", limit),
	))
	defer span.End()

	rows, err := gc.sb.
		Select(giftFields...).
		From("gifts").
		OrderBy("popularity_score DESC").
		Limit(uint64(limit)).
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var scored []domain.ScoredGift
	for rows.Next() {
		var gr giftRow
		if err := rows.Scan(gr.scanDest()...); telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		gift, err := gr.toGift()
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		scored = append(scored, domain.ScoredGift{Gift: gift, Score: gift.PopularityScore})
	}
	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return scored, nil
}

// TotalCount returns the number of gifts in the catalog.
func (gc GiftCatalog) TotalCount(ctx context.Context) (int, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var count int
	err := gc.sb.
		Select("COUNT(*)").
		From("gifts").
		QueryRowContext(spanCtx).
		Scan(&count)
	if telemetry.RecordErrorAndStatus(span, err) {
		return 0, err
	}

	return count, nil
}

// UpsertGift inserts or updates a gift by id.
func (gc GiftCatalog) UpsertGift(ctx context.Context, gift domain.Gift) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := gc.sb.
		Insert("gifts").
		Columns(giftFields...).
		Values(
			gift.ID,
			gift.Name,
			gift.BriefDescription,
			gift.FullDescription,
			gift.PriceRange,
			encodeList(gift.Categories),
			encodeList(gift.Occasions),
			encodeList(gift.RecipientTypes),
			pgvector.NewVector(toFloat32Truncated(gift.Embedding)),
			gift.PopularityScore,
			gift.PurchaseURL,
			gift.HasAffiliateCommission,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			brief_description = EXCLUDED.brief_description,
			full_description = EXCLUDED.full_description,
			price_range = EXCLUDED.price_range,
			categories = EXCLUDED.categories,
			occasions = EXCLUDED.occasions,
			recipient_types = EXCLUDED.recipient_types,
			embedding = EXCLUDED.embedding,
			popularity_score = EXCLUDED.popularity_score,
			purchase_url = EXCLUDED.purchase_url,
			has_affiliate_commission = EXCLUDED.has_affiliate_commission,
			updated_at = now()`).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// FindGiftByName retrieves a gift by its exact name.
func (gc GiftCatalog) FindGiftByName(ctx context.Context, name string) (domain.Gift, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var gr giftRow
	err := gc.sb.
		Select(giftFields...).
		From("gifts").
		Where(squirrel.Eq{"name": name}).
		QueryRowContext(spanCtx).
		Scan(gr.scanDest()...)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Gift{}, false, nil
		}
		return domain.Gift{}, false, err
	}

	gift, err := gr.toGift()
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Gift{}, false, err
	}
	return gift, true, nil
}

// HealthCheck verifies catalog connectivity.
func (gc GiftCatalog) HealthCheck(ctx context.Context) error {
	var one int
	return gc.sb.
		Select("1").
		QueryRowContext(ctx).
		Scan(&one)
}

// giftRow is the scan target for a full gifts row. The list columns are JSONB
// and the embedding column is a pgvector value.
type giftRow struct {
	gift       domain.Gift
	categories []byte
	occasions  []byte
	recipients []byte
	embedding  pgvector.Vector
}

func (gr *giftRow) scanDest() []any {
	return []any{
		&gr.gift.ID,
		&gr.gift.Name,
		&gr.gift.BriefDescription,
		&gr.gift.FullDescription,
		&gr.gift.PriceRange,
		&gr.categories,
		&gr.occasions,
		&gr.recipients,
		&gr.embedding,
		&gr.gift.PopularityScore,
		&gr.gift.PurchaseURL,
		&gr.gift.HasAffiliateCommission,
	}
}

func (gr *giftRow) toGift() (domain.Gift, error) {
	gift := gr.gift
	if err := decodeList(gr.categories, &gift.Categories); err != nil {
		return domain.Gift{}, fmt.Errorf("decode categories: %w", err)
	}
	if err := decodeList(gr.occasions, &gift.Occasions); err != nil {
		return domain.Gift{}, fmt.Errorf("decode occasions: %w", err)
	}
	if err := decodeList(gr.recipients, &gift.RecipientTypes); err != nil {
		return domain.Gift{}, fmt.Errorf("decode recipient_types: %w", err)
	}
	gift.Embedding = toFloat64(gr.embedding.Slice())
	return gift, nil
}

func encodeList(v []string) []byte {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return b
}

func decodeList(b []byte, dst *[]string) error {
	if len(b) == 0 {
		return nil
	}
	return json.Unmarshal(b, dst)
}

func toFloat32Truncated(input []float64) []float32 {
	f32 := make([]float32, len(input))
	for i, v := range input {
		f32[i] = float32(v)
	}
	if len(f32) > 1536 {
		f32 = f32[:1536]
	}
	return f32
}

func toFloat64(input []float32) []float64 {
	if len(input) == 0 {
		return nil
	}
	f64 := make([]float64, len(input))
	for i, v := range input {
		f64[i] = float64(v)
	}
	return f64
}

// InitGiftCatalog is a Symbiont initializer for the Postgres GiftCatalog.
type InitGiftCatalog struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the GiftCatalog in the dependency container.
func (igc InitGiftCatalog) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.GiftCatalog](NewGiftCatalog(igc.DB))
	return ctx, nil
}

package completions

import (
	"context"
	"time"

	"github.com/2beens/fitcoach/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, record CompletionRecord) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client.id", record.ClientID),
		attribute.String("kind", string(record.Kind)),
	)

	_, err = r.db.Exec(ctx, `
		INSERT INTO completion (id, client_id, kind, reference, completed_at, photo_ref)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		record.ID, record.ClientID,
		string(record.Kind), record.Reference,
		record.CompletedAt, record.PhotoRef,
	)
	return err
}

// ListByClient lists all client completions, newest first.
func (r *Repo) ListByClient(ctx context.Context, clientID string) (_ []CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client.id", clientID))

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, kind, reference, completed_at, photo_ref
		FROM completion
		WHERE client_id = $1
		ORDER BY completed_at DESC
	`, clientID)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

// ListForDay lists client completions with completed_at in [from, to), newest first.
func (r *Repo) ListForDay(ctx context.Context, clientID string, from, to time.Time) (_ []CompletionRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.completions.listforday")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("client.id", clientID),
		attribute.String("from", from.String()),
	)

	rows, err := r.db.Query(ctx, `
		SELECT id, client_id, kind, reference, completed_at, photo_ref
		FROM completion
		WHERE client_id = $1
		  AND completed_at >= $2
		  AND completed_at < $3
		ORDER BY completed_at DESC
	`, clientID, from, to)
	if err != nil {
		return nil, err
	}
	return collectRecords(rows)
}

func collectRecords(rows pgx.Rows) ([]CompletionRecord, error) {
	defer rows.Close()

	records := make([]CompletionRecord, 0)
	for rows.Next() {
		var (
			record CompletionRecord
			kind   string
		)
		if err := rows.Scan(
			&record.ID, &record.ClientID,
			&kind, &record.Reference,
			&record.CompletedAt, &record.PhotoRef,
		); err != nil {
			return nil, err
		}
		record.Kind = Kind(kind)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

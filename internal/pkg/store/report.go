package store

import (
	"context"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/store/xpgx"
)

const defaultListLimit = 50

type ListReportsOpts struct {
	Country     *string
	Stakeholder *domain.Stakeholder
	Limit       uint64
}

var reportColumns = []string{
	"id", "country", "stakeholder", "start_year", "end_year",
	"summary", "plain_text", "payload", "created_at",
}

func insertReportQuery(r *domain.Report) sq.InsertBuilder {
	return builder().Insert(tableReports).
		Columns(reportColumns[:len(reportColumns)-1]...).
		Values(r.ID, r.Country, string(r.Stakeholder), r.StartYear, r.EndYear, r.Summary, r.PlainText, r.Payload).
		Suffix("on conflict (id) do nothing")
}

func listReportsQuery(opts ListReportsOpts) sq.SelectBuilder {
	query := builder().Select(reportColumns...).
		From(tableReports).
		OrderBy("created_at desc")

	if opts.Country != nil {
		query = query.Where(sq.Eq{"country": *opts.Country})
	}
	if opts.Stakeholder != nil {
		query = query.Where(sq.Eq{"stakeholder": string(*opts.Stakeholder)})
	}

	limit := opts.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	return query.Limit(limit)
}

func getReportQuery(id uuid.UUID) sq.SelectBuilder {
	return builder().Select(reportColumns...).
		From(tableReports).
		Where(sq.Eq{"id": id})
}

// InsertReport stores r, assigning an ID when it has none.
func (s *store) InsertReport(ctx context.Context, r *domain.Report) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}

	if _, err := s.pool.Execx(ctx, insertReportQuery(r)); err != nil {
		logger.Errorf(ctx, "insert report %s: %s", r.ID, err.Error())
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *store) ListReports(ctx context.Context, opts ListReportsOpts) ([]*domain.Report, error) {
	selected, err := xpgx.Select[domain.Report](ctx, s.pool, listReportsQuery(opts))
	if err != nil {
		logger.Error(ctx, err.Error())
		return nil, wrapErr(err)
	}
	return selected, nil
}

func (s *store) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	selected, err := xpgx.Get[domain.Report](ctx, s.pool, getReportQuery(id))
	if err != nil {
		return nil, wrapErr(err)
	}
	return selected, nil
}

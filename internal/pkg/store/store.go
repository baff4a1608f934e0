package store

import (
	"context"
	"github.com/google/uuid"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	InsertReport(ctx context.Context, report *domain.Report) error
	ListReports(ctx context.Context, opts ListReportsOpts) ([]*domain.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

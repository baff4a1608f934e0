package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
)

func TestInsertReportQuery(t *testing.T) {
	r := &domain.Report{
		ID:          uuid.New(),
		Country:     "Peru",
		Stakeholder: domain.StakeholderEnvironmentalNGO,
		StartYear:   2015,
		EndYear:     2022,
		Payload:     []byte(`{}`),
	}

	sql, args, err := insertReportQuery(r).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.HasPrefix(sql, "INSERT INTO recommendation_reports (id,country,stakeholder,start_year,end_year,summary,plain_text,payload) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)") {
		t.Fatalf("sql: %s", sql)
	}
	if !strings.HasSuffix(sql, "on conflict (id) do nothing") {
		t.Fatalf("sql: %s", sql)
	}
	if len(args) != 8 || args[1] != "Peru" || args[2] != "environmental_ngo" {
		t.Fatalf("args: %v", args)
	}
}

func TestListReportsQuery(t *testing.T) {
	country := "Brazil"
	sh := domain.StakeholderPolicyGovernance

	cases := []struct {
		name     string
		opts     ListReportsOpts
		wantSQL  string
		wantArgs int
	}{
		{
			name:    "defaults",
			opts:    ListReportsOpts{},
			wantSQL: "SELECT id, country, stakeholder, start_year, end_year, summary, plain_text, payload, created_at FROM recommendation_reports ORDER BY created_at desc LIMIT 50",
		},
		{
			name:     "filtered",
			opts:     ListReportsOpts{Country: &country, Stakeholder: &sh, Limit: 5},
			wantSQL:  "SELECT id, country, stakeholder, start_year, end_year, summary, plain_text, payload, created_at FROM recommendation_reports WHERE country = $1 AND stakeholder = $2 ORDER BY created_at desc LIMIT 5",
			wantArgs: 2,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sql, args, err := listReportsQuery(tc.opts).ToSql()
			if err != nil {
				t.Fatalf("ToSql: %v", err)
			}
			if sql != tc.wantSQL {
				t.Fatalf("sql:\n got %s\nwant %s", sql, tc.wantSQL)
			}
			if len(args) != tc.wantArgs {
				t.Fatalf("args: %v", args)
			}
		})
	}
}

func TestGetReportQuery(t *testing.T) {
	id := uuid.New()
	sql, args, err := getReportQuery(id).ToSql()
	if err != nil {
		t.Fatalf("ToSql: %v", err)
	}
	if !strings.HasSuffix(sql, "WHERE id = $1") || len(args) != 1 || args[0] != id {
		t.Fatalf("sql=%s args=%v", sql, args)
	}
}

func TestWrapErr(t *testing.T) {
	if err := wrapErr(fmt.Errorf("scan: %w", pgx.ErrNoRows)); !errors.Is(err, constants.ErrDBNotFound) {
		t.Fatalf("got %v", err)
	}
	other := errors.New("other")
	if err := wrapErr(other); err != other {
		t.Fatalf("got %v", err)
	}
}

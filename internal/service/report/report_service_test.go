package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/store"
)

type memStore struct {
	reports map[uuid.UUID]*domain.Report
}

func (m *memStore) InsertReport(_ context.Context, r *domain.Report) error {
	m.reports[r.ID] = r
	return nil
}

func (m *memStore) ListReports(context.Context, store.ListReportsOpts) ([]*domain.Report, error) {
	out := make([]*domain.Report, 0, len(m.reports))
	for _, r := range m.reports {
		out = append(out, r)
	}
	return out, nil
}

func (m *memStore) GetReport(_ context.Context, id uuid.UUID) (*domain.Report, error) {
	r, ok := m.reports[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return r, nil
}

func sampleResponse() *domain.RecommendationResponse {
	return &domain.RecommendationResponse{
		Success: true,
		Data: domain.RecommendationData{
			Country:     "Peru",
			Stakeholder: domain.StakeholderPolicyGovernance,
			Summary:     "<p>Loss is <b>rising</b>.</p>",
			Recommendations: []domain.Recommendation{{
				Text: domain.RecommendationText{
					Objective:               "Cut illegal logging",
					SpecificActions:         []string{" Expand patrols. ", "Fund satellite alerts"},
					ImplementationTimeframe: "2 years",
					RequiredResources:       []string{"rangers", "funding"},
				},
			}},
		},
	}
}

func TestFormatActions(t *testing.T) {
	got := FormatActions([]string{"Plant trees.", "  Monitor fires ", "Stop logging..", ""})
	want := []string{"Plant trees", "Monitor fires", "Stop logging.", ""}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %q, want %q", got, want)
		}
	}
}

func TestFormatResources(t *testing.T) {
	if got := FormatResources([]string{"rangers", "drones", "funding"}); got != "rangers, drones, funding" {
		t.Fatalf("got %q", got)
	}
	if got := FormatResources(nil); got != "" {
		t.Fatalf("got %q", got)
	}
}

func TestPlainText(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain   text\n\n here", "plain text\nhere"},
		{"<p>Reduce <b>illegal</b> logging.</p><ul><li>One</li><li>Two</li></ul>", "Reduce illegal logging.\nOne\nTwo"},
		{"R&amp;D budget<br>doubled", "R&D budget\ndoubled"},
		{"<script>alert(1)</script>Safe", "Safe"},
	}
	for _, tc := range cases {
		if got := PlainText(tc.in); got != tc.want {
			t.Errorf("PlainText(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleResponse())

	for _, want := range []string{
		"Peru (policy_governance)",
		"Loss is rising.",
		"Recommendation 1",
		"Objective: Cut illegal logging",
		"  1. Expand patrols\n",
		"  2. Fund satellite alerts\n",
		"Timeframe: 2 years",
		"Resources: rangers, funding",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Expected Impact") {
		t.Fatalf("empty section rendered:\n%s", got)
	}
}

func TestArchive(t *testing.T) {
	st := &memStore{reports: map[uuid.UUID]*domain.Report{}}
	s := NewReportService(st)
	rc := domain.RecommendationContext{
		Country:     "Peru",
		Stakeholder: domain.StakeholderPolicyGovernance,
		DataRange:   domain.DataRange{StartYear: 2010, EndYear: 2020},
	}

	r, err := s.Archive(context.Background(), rc, sampleResponse())
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if r.ID == uuid.Nil || r.Summary != "Loss is rising." || r.StartYear != 2010 {
		t.Fatalf("report: %+v", r)
	}
	if !strings.Contains(string(r.Payload), `"Specific Actions"`) {
		t.Fatalf("payload: %s", r.Payload)
	}

	got, err := s.Get(context.Background(), r.ID)
	if err != nil || got != r {
		t.Fatalf("Get: %v %v", got, err)
	}
}

func TestDisabledArchive(t *testing.T) {
	s := NewReportService(nil)
	if s.Enabled() {
		t.Fatal("enabled without store")
	}
	_, err := s.Archive(context.Background(), domain.RecommendationContext{}, sampleResponse())
	if !errors.Is(err, constants.ErrStoreDisabled) {
		t.Fatalf("err: %v", err)
	}
}

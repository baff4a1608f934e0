package report

import (
	"context"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/ougirez/forestwatch/internal/pkg/logger"
	"github.com/ougirez/forestwatch/internal/pkg/store"
	"strconv"
	"strings"
)

type Service struct {
	store store.Store
}

// NewReportService builds the archive. With a nil store reports are still
// rendered but not persisted.
func NewReportService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) Enabled() bool {
	return s.store != nil
}

// Archive keeps a generated recommendation answer together with its plain-text rendering.
func (s *Service) Archive(ctx context.Context, rc domain.RecommendationContext, resp *domain.RecommendationResponse) (*domain.Report, error) {
	if s.store == nil {
		return nil, constants.ErrStoreDisabled
	}

	payload, err := sonic.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("sonic.Marshal: %w", err)
	}

	r := &domain.Report{
		ID:          uuid.New(),
		Country:     rc.Country,
		Stakeholder: rc.Stakeholder,
		StartYear:   rc.DataRange.StartYear,
		EndYear:     rc.DataRange.EndYear,
		Summary:     PlainText(resp.Data.Summary),
		PlainText:   Render(resp),
		Payload:     payload,
	}
	if err := s.store.InsertReport(ctx, r); err != nil {
		return nil, fmt.Errorf("store.InsertReport: %w", err)
	}

	logger.Infof(ctx, "archived report %s for %s/%s", r.ID, r.Country, r.Stakeholder)
	return r, nil
}

func (s *Service) List(ctx context.Context, opts store.ListReportsOpts) ([]*domain.Report, error) {
	if s.store == nil {
		return nil, constants.ErrStoreDisabled
	}
	return s.store.ListReports(ctx, opts)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	if s.store == nil {
		return nil, constants.ErrStoreDisabled
	}
	return s.store.GetReport(ctx, id)
}

// FormatActions trims each action and drops one trailing period.
func FormatActions(actions []string) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, strings.TrimSuffix(strings.TrimSpace(a), "."))
	}
	return out
}

func FormatResources(resources []string) string {
	return strings.Join(resources, ", ")
}

const blockTags = "p, div, li, h1, h2, h3, h4, h5, h6, tr, br"

// PlainText flattens generated markup to text, one block per line.
func PlainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return collapse(s)
	}
	doc.Find("script, style").Remove()
	doc.Find(blockTags).Each(func(_ int, sel *goquery.Selection) {
		sel.AfterHtml("\n")
	})
	return collapse(doc.Text())
}

func collapse(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.Join(strings.Fields(l), " "); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// Render lays a recommendation answer out as a plain-text report. Empty
// sections are left out.
func Render(resp *domain.RecommendationResponse) string {
	var b strings.Builder

	d := resp.Data
	fmt.Fprintf(&b, "%s (%s)\n", d.Country, d.Stakeholder)
	if d.GeneratedAt != "" {
		fmt.Fprintf(&b, "Generated at %s\n", d.GeneratedAt)
	}
	if summary := PlainText(d.Summary); summary != "" {
		b.WriteString("\n" + summary + "\n")
	}

	for i, rec := range d.Recommendations {
		t := rec.Text
		fmt.Fprintf(&b, "\nRecommendation %d\n", i+1)
		section(&b, "Objective", t.Objective)
		if len(t.SpecificActions) > 0 {
			b.WriteString("Specific Actions:\n")
			for j, a := range FormatActions(t.SpecificActions) {
				b.WriteString("  " + strconv.Itoa(j+1) + ". " + PlainText(a) + "\n")
			}
		}
		section(&b, "Timeframe", t.ImplementationTimeframe)
		if len(t.RequiredResources) > 0 {
			section(&b, "Resources", FormatResources(t.RequiredResources))
		}
		section(&b, "Expected Impact", t.ExpectedMeasurableImpact)
		section(&b, "Supporting Evidence", t.SupportingEvidenceFromData)
	}

	return strings.TrimRight(b.String(), "\n")
}

func section(b *strings.Builder, title, body string) {
	if body = PlainText(body); body == "" {
		return
	}
	b.WriteString(title + ": " + body + "\n")
}

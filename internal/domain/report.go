package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is an archived recommendation answer. Generated text cannot be
// reproduced, so the raw payload is kept next to its plain-text form.
type Report struct {
	ID          uuid.UUID   `db:"id" json:"id"`
	Country     string      `db:"country" json:"country"`
	Stakeholder Stakeholder `db:"stakeholder" json:"stakeholder"`
	StartYear   Year        `db:"start_year" json:"startYear"`
	EndYear     Year        `db:"end_year" json:"endYear"`
	Summary     string      `db:"summary" json:"summary"`
	PlainText   string      `db:"plain_text" json:"plainText"`
	Payload     []byte      `db:"payload" json:"-"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

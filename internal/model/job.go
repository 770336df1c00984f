package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// JobFormat enumerates work formats.
type JobFormat string

const (
	// JobFormatRemote is fully remote work.
	JobFormatRemote JobFormat = "remote"
	// JobFormatOffice is on-site work.
	JobFormatOffice JobFormat = "office"
	// JobFormatHybrid mixes remote and on-site work.
	JobFormatHybrid JobFormat = "hybrid"
)

// AccessibilityFeatures is the fixed vocabulary a job's Features are drawn from.
var AccessibilityFeatures = []string{
	"Без звонков",
	"Только текст",
	"Пандус / Лифт",
	"Ассистент",
	"Тихая зона",
	"Удобный график",
	"Поддерживающая команда",
	"Домашний офис",
}

// IsKnownFeature reports whether feature belongs to the accessibility vocabulary.
func IsKnownFeature(feature string) bool {
	return slices.Contains(AccessibilityFeatures, feature)
}

// GeoPoint is a latitude/longitude pair for the map view.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Job represents a posting in the catalog. Postings are append-only: once in
// the catalog a job is never mutated or deleted.
type Job struct {
	ID                uuid.UUID
	Title             string
	Company           string
	Location          string
	Format            JobFormat
	Salary            int
	EmploymentType    string
	Requirements      string
	Experience        string
	Description       string
	Address           string
	Tags              []string
	Features          []string
	EmployerID        uuid.UUID
	Coordinates       *GeoPoint
	ManagerContact    string
	CallCenterContact string
	CreatedAt         time.Time
}

// CatalogStore defines storage operations for job postings.
type CatalogStore interface {
	Add(job Job) (Job, error)
	List() []Job
	GetByID(id uuid.UUID) (Job, error)
	GetByEmployerID(employerID uuid.UUID) []Job
}

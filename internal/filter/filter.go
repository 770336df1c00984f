// Package filter derives the visible subset of the job catalog from filter
// criteria. Apply is a pure function: it never reorders, never mutates its
// input and always produces the same subsequence for the same arguments.
package filter

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/inclusive-jobs/server/internal/model"
)

// FormatAll matches every work format.
const FormatAll = "all"

// Criteria is the set of filter parameters applied to the catalog.
// The three criteria compose with logical AND.
type Criteria struct {
	// Format is "all" or an exact JobFormat value.
	Format string
	// MinSalary keeps jobs with salary >= MinSalary; 0 means no floor.
	MinSalary int
	// Features keeps jobs whose feature set contains every requested feature.
	Features []string
}

// Apply returns the jobs matching the criteria, preserving catalog order.
func Apply(jobs []model.Job, criteria Criteria) []model.Job {
	requested := mapset.NewThreadUnsafeSet(criteria.Features...)

	result := make([]model.Job, 0, len(jobs))
	for _, job := range jobs {
		if !matchesFormat(job, criteria.Format) {
			continue
		}
		if job.Salary < criteria.MinSalary {
			continue
		}
		if !requested.IsSubset(mapset.NewThreadUnsafeSet(job.Features...)) {
			continue
		}
		result = append(result, job)
	}

	return result
}

func matchesFormat(job model.Job, format string) bool {
	if format == "" || format == FormatAll {
		return true
	}
	return job.Format == model.JobFormat(format)
}

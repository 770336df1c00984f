package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusive-jobs/server/internal/model"
)

func validJob() model.Job {
	return model.Job{
		Title:       "Оператор чата",
		Company:     "TengriSoft",
		Location:    "Алматы",
		Format:      model.JobFormatRemote,
		Salary:      250000,
		Description: "Поддержка клиентов в текстовом чате",
		Features:    []string{"Без звонков", "Только текст"},
		EmployerID:  uuid.New(),
	}
}

func TestCatalogRepository_Add(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.Job)
		wantField string
	}{
		{name: "valid job", mutate: func(*model.Job) {}},
		{
			name:      "missing title",
			mutate:    func(j *model.Job) { j.Title = "" },
			wantField: "title",
		},
		{
			name:      "missing company",
			mutate:    func(j *model.Job) { j.Company = "" },
			wantField: "company",
		},
		{
			name:      "missing description",
			mutate:    func(j *model.Job) { j.Description = "" },
			wantField: "description",
		},
		{
			name:      "negative salary",
			mutate:    func(j *model.Job) { j.Salary = -1 },
			wantField: "salary",
		},
		{
			name:      "unknown format",
			mutate:    func(j *model.Job) { j.Format = "freelance" },
			wantField: "format",
		},
		{
			name:      "feature outside vocabulary",
			mutate:    func(j *model.Job) { j.Features = []string{"Причудливый офис"} },
			wantField: "features",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCatalogRepository()

			job := validJob()
			tt.mutate(&job)

			saved, err := repo.Add(job)

			if tt.wantField != "" {
				var validationErr *model.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, saved.ID)
			assert.False(t, saved.CreatedAt.IsZero())
		})
	}
}

func TestCatalogRepository_List_PreservesInsertionOrder(t *testing.T) {
	repo := NewCatalogRepository()

	titles := []string{"Оператор чата", "Бухгалтер", "Модератор контента"}
	for _, title := range titles {
		job := validJob()
		job.Title = title
		_, err := repo.Add(job)
		require.NoError(t, err)
	}

	listed := repo.List()
	require.Len(t, listed, 3)
	for i, title := range titles {
		assert.Equal(t, title, listed[i].Title)
	}
}

func TestCatalogRepository_GetByEmployerID(t *testing.T) {
	repo := NewCatalogRepository()

	employerID := uuid.New()
	mine := validJob()
	mine.EmployerID = employerID
	_, err := repo.Add(mine)
	require.NoError(t, err)

	_, err = repo.Add(validJob())
	require.NoError(t, err)

	jobs := repo.GetByEmployerID(employerID)
	require.Len(t, jobs, 1)
	assert.Equal(t, employerID, jobs[0].EmployerID)
}

func TestCatalogRepository_GetByID_NotFound(t *testing.T) {
	repo := NewCatalogRepository()

	_, err := repo.GetByID(uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)
}

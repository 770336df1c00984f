package handler

import (
	"time"

	"github.com/inclusive-jobs/server/internal/model"
)

// Responses mirror the browser client's camelCase field names.

type userResponse struct {
	ID                  string     `json:"id"`
	Type                string     `json:"type"`
	FullName            string     `json:"fullName"`
	Phone               string     `json:"phone,omitempty"`
	Email               string     `json:"email"`
	Subscription        string     `json:"subscription"`
	SubscriptionEndDate *time.Time `json:"subscriptionEndDate,omitempty"`
	HealthNeeds         string     `json:"healthNeeds,omitempty"`
	CompanyName         string     `json:"companyName,omitempty"`
	CompanyDescription  string     `json:"companyDescription,omitempty"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:                  user.ID.String(),
		Type:                string(user.Type),
		FullName:            user.FullName,
		Phone:               user.Phone,
		Email:               user.Email,
		Subscription:        string(user.Subscription),
		SubscriptionEndDate: user.SubscriptionEndDate,
		HealthNeeds:         user.HealthNeeds,
		CompanyName:         user.CompanyName,
		CompanyDescription:  user.CompanyDescription,
	}
}

type geoPointResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type jobResponse struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	Company           string            `json:"company"`
	Location          string            `json:"location,omitempty"`
	Format            string            `json:"format"`
	Salary            int               `json:"salary"`
	EmploymentType    string            `json:"employmentType,omitempty"`
	Requirements      string            `json:"requirements,omitempty"`
	Experience        string            `json:"experience,omitempty"`
	Description       string            `json:"description"`
	Address           string            `json:"address,omitempty"`
	Tags              []string          `json:"tags,omitempty"`
	Features          []string          `json:"features"`
	EmployerID        string            `json:"employerId"`
	Coordinates       *geoPointResponse `json:"coordinates,omitempty"`
	ManagerContact    string            `json:"managerContact,omitempty"`
	CallCenterContact string            `json:"callCenterContact,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

func toJobResponse(job model.Job) jobResponse {
	response := jobResponse{
		ID:                job.ID.String(),
		Title:             job.Title,
		Company:           job.Company,
		Location:          job.Location,
		Format:            string(job.Format),
		Salary:            job.Salary,
		EmploymentType:    job.EmploymentType,
		Requirements:      job.Requirements,
		Experience:        job.Experience,
		Description:       job.Description,
		Address:           job.Address,
		Tags:              job.Tags,
		Features:          job.Features,
		EmployerID:        job.EmployerID.String(),
		ManagerContact:    job.ManagerContact,
		CallCenterContact: job.CallCenterContact,
		CreatedAt:         job.CreatedAt,
	}
	if job.Coordinates != nil {
		response.Coordinates = &geoPointResponse{Lat: job.Coordinates.Lat, Lng: job.Coordinates.Lng}
	}

	return response
}

func toJobResponses(jobs []model.Job) []jobResponse {
	responses := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job))
	}

	return responses
}

type resumeResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	Skills           []string  `json:"skills,omitempty"`
	Experience       string    `json:"experience,omitempty"`
	Description      string    `json:"description,omitempty"`
	FileKey          string    `json:"fileKey,omitempty"`
	GeneratedContent string    `json:"generatedContent,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func toResumeResponse(resume model.Resume) resumeResponse {
	return resumeResponse{
		ID:               resume.ID.String(),
		UserID:           resume.UserID.String(),
		FullName:         resume.FullName,
		Skills:           resume.Skills,
		Experience:       resume.Experience,
		Description:      resume.Description,
		FileKey:          resume.FileKey,
		GeneratedContent: resume.GeneratedContent,
		CreatedAt:        resume.CreatedAt,
	}
}

type applicationResponse struct {
	ID        string    `json:"id"`
	JobID     string    `json:"jobId"`
	UserID    string    `json:"userId"`
	ResumeID  string    `json:"resumeId"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func toApplicationResponse(application model.Application) applicationResponse {
	return applicationResponse{
		ID:        application.ID.String(),
		JobID:     application.JobID.String(),
		UserID:    application.UserID.String(),
		ResumeID:  application.ResumeID.String(),
		Status:    string(application.Status),
		CreatedAt: application.CreatedAt,
	}
}

func toApplicationResponses(applications []model.Application) []applicationResponse {
	responses := make([]applicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, toApplicationResponse(application))
	}

	return responses
}

type chatTurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toChatTurnResponse(turn model.ChatTurn) chatTurnResponse {
	return chatTurnResponse{
		Role:      string(turn.Role),
		Content:   turn.Content,
		CreatedAt: turn.CreatedAt,
	}
}

func toChatTurnResponses(turns []model.ChatTurn) []chatTurnResponse {
	responses := make([]chatTurnResponse, 0, len(turns))
	for _, turn := range turns {
		responses = append(responses, toChatTurnResponse(turn))
	}

	return responses
}

type forumPostResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toForumPostResponse(post model.ForumPost) forumPostResponse {
	return forumPostResponse{
		ID:        post.ID.String(),
		UserID:    post.UserID.String(),
		Author:    post.Author,
		Content:   post.Content,
		CreatedAt: post.CreatedAt,
	}
}

func toForumPostResponses(posts []model.ForumPost) []forumPostResponse {
	responses := make([]forumPostResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, toForumPostResponse(post))
	}

	return responses
}

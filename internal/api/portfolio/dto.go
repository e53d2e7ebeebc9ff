package portfolio

import "PortfolioBackend/internal/entity"

type ChatRequest struct {
	Message string                   `json:"message" validate:"required"`
	History []map[string]interface{} `json:"history" validate:"omitempty"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ProfileResponse struct {
	Name     string            `json:"name"`
	Title    string            `json:"title"`
	Tag      string            `json:"tag"`
	Skills   entity.SkillSet   `json:"skills"`
	Projects []ProjectResponse `json:"projects"`
	About    []string          `json:"about"`
	Contact  entity.Contact    `json:"contact"`
}

type ProjectResponse struct {
	Name       string   `json:"name"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

type SkillsResponse struct {
	Skills entity.SkillSet `json:"skills"`
}

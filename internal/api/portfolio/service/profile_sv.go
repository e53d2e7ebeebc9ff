package portfolioService

import (
	"PortfolioBackend/internal/api/portfolio"
	"PortfolioBackend/internal/entity"
	contextPkg "PortfolioBackend/pkg/context"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *portfolioService) GetProfile(ctx context.Context) (*portfolio.ProfileResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
	}).Debug("Building profile response")

	return &portfolio.ProfileResponse{
		Name:     s.profile.Name,
		Title:    s.profile.Title,
		Tag:      s.profile.Tag,
		Skills:   s.profile.Skills,
		Projects: projectResponses(s.profile),
		About:    s.profile.About,
		Contact:  s.profile.Contact,
	}, nil
}

func (s *portfolioService) GetSkills(ctx context.Context) (*portfolio.SkillsResponse, error) {
	return &portfolio.SkillsResponse{
		Skills: s.profile.Skills,
	}, nil
}

func (s *portfolioService) GetProjects(ctx context.Context) (*portfolio.ProjectListResponse, error) {
	projects := projectResponses(s.profile)

	return &portfolio.ProjectListResponse{
		Projects: projects,
		Total:    len(projects),
	}, nil
}

func projectResponses(p entity.Profile) []portfolio.ProjectResponse {
	projects := make([]portfolio.ProjectResponse, 0, len(p.Projects))
	for _, project := range p.Projects {
		projects = append(projects, portfolio.ProjectResponse{
			Name:       project.Name,
			Period:     project.Period,
			Highlights: project.Highlights,
		})
	}
	return projects
}

package portfolioService

import (
	"PortfolioBackend/internal/api/portfolio"
	"PortfolioBackend/internal/entity"
	redisPkg "PortfolioBackend/pkg/redis"
	"context"

	"github.com/sirupsen/logrus"
)

type IPortfolioService interface {
	GetProfile(ctx context.Context) (*portfolio.ProfileResponse, error)
	GetSkills(ctx context.Context) (*portfolio.SkillsResponse, error)
	GetProjects(ctx context.Context) (*portfolio.ProjectListResponse, error)
	Chat(ctx context.Context, req portfolio.ChatRequest) (*portfolio.ChatResponse, error)
}

type portfolioService struct {
	log     *logrus.Logger
	profile entity.Profile
	redis   redisPkg.IRedis
}

func New(
	log *logrus.Logger,
	profile entity.Profile,
	redis redisPkg.IRedis,
) IPortfolioService {
	return &portfolioService{
		log:     log,
		profile: profile,
		redis:   redis,
	}
}

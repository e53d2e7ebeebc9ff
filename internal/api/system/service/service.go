package systemService

import (
	"PortfolioBackend/internal/api/system"
	redisPkg "PortfolioBackend/pkg/redis"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ISystemService interface {
	GetStatus(ctx context.Context) (*system.StatusResponse, error)
}

type systemService struct {
	log   *logrus.Logger
	db    *sqlx.DB
	redis redisPkg.IRedis
}

func New(
	log *logrus.Logger,
	db *sqlx.DB,
	redis redisPkg.IRedis,
) ISystemService {
	return &systemService{
		log:   log,
		db:    db,
		redis: redis,
	}
}

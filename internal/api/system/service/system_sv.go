package systemService

import (
	"PortfolioBackend/internal/api/system"
	contextPkg "PortfolioBackend/pkg/context"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const queryPublicTables = `SELECT table_name
FROM information_schema.tables
WHERE table_schema = 'public'
ORDER BY table_name
LIMIT 10`

// GetStatus probes the optional backing services. The database and Redis are
// both allowed to be absent; the probe reports what it finds and never fails.
func (s *systemService) GetStatus(ctx context.Context) (*system.StatusResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	resp := &system.StatusResponse{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      "❌ Not Set",
		DatabaseName:     "❌ Not Set",
		Redis:            "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Tables:           []string{},
	}

	if os.Getenv("DATABASE_URL") != "" {
		resp.DatabaseURL = "✅ Set"
	}
	if os.Getenv("DATABASE_NAME") != "" {
		resp.DatabaseName = "✅ Set"
	}

	switch {
	case s.db == nil:
		resp.Database = "❌ Database not configured (set DATABASE_URL first)"
	default:
		if err := s.db.PingContext(ctx); err != nil {
			resp.Database = "⚠️ Configured but Error: " + truncateError(err.Error())
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Database ping failed")
			break
		}

		resp.ConnectionStatus = "Connected"

		var tables []string
		if err := s.db.SelectContext(ctx, &tables, queryPublicTables); err != nil {
			resp.Database = "⚠️ Connected but Error: " + truncateError(err.Error())
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to list public tables")
			break
		}

		resp.Tables = tables
		resp.Database = "✅ Connected & Working"
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Debug("Redis ping failed")
		} else {
			resp.Redis = "✅ Connected"
		}
	}

	return resp, nil
}

func truncateError(msg string) string {
	if len(msg) > 50 {
		return msg[:50]
	}
	return msg
}

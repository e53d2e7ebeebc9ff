package portfolio

import (
	"PortfolioBackend/pkg/response"
	"net/http"
)

var (
	ErrEmptyMessage = response.NewError(http.StatusBadRequest, "message is required")
)

package contact

import (
	"PortfolioBackend/pkg/response"
	"net/http"
)

var (
	ErrMailDelivery       = response.NewError(http.StatusBadGateway, "failed to deliver contact message")
	ErrInvalidContactData = response.NewError(http.StatusBadRequest, "invalid contact data")
)

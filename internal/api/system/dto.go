package system

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	Redis            string   `json:"redis"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

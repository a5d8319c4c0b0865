package dto

type SettingsResponse struct {
	Currency         string   `json:"currency"`
	EnabledPlatforms []string `json:"enabled_platforms"`
	CustomPlatforms  []string `json:"custom_platforms"`
}

type UpdateSettingsRequest struct {
	Currency         string   `json:"currency"`
	EnabledPlatforms []string `json:"enabled_platforms"`
	CustomPlatforms  []string `json:"custom_platforms"`
}

type CompanyResponse struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
}

type UpdateCompanyRequest struct {
	Name         *string `json:"name"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
}

package domain

// ClubInfo содержит статическую информацию о клубе (раздел "О нас")
type ClubInfo struct {
	Name        string   `json:"name"`
	Institute   string   `json:"institute"`
	Campus      string   `json:"campus"`
	Description string   `json:"description"`
	Mission     string   `json:"mission"`
	Activities  []string `json:"activities"`
}

package domain

import "time"

// ReferenceSource indica a rede de onde o criativo foi garimpado
type ReferenceSource string

const (
	ReferenceSourceInstagram ReferenceSource = "Instagram"
	ReferenceSourceTikTok    ReferenceSource = "TikTok"
)

// Valid indica se a origem é um dos valores conhecidos
func (s ReferenceSource) Valid() bool {
	return s == ReferenceSourceInstagram || s == ReferenceSourceTikTok
}

// Reference é um criativo/página salvo no acervo de espionagem da equipe
type Reference struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Niche     string          `json:"niche"`
	Source    ReferenceSource `json:"source"`
	ImageURL  string          `json:"image_url,omitempty"`
	Link      string          `json:"link"`
	CreatedAt time.Time       `json:"created_at"`
}

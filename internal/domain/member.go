package domain

import "time"

// TeamMember представляет участника команды клуба
type TeamMember struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Role        string     `json:"role"`
	Photo       string     `json:"photo"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// Draft содержит поля участника до присвоения ID (данные формы)
type Draft struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Photo       string `json:"photo"`
	Description string `json:"description"`
}

// Validate проверяет обязательные поля черновика
func (d Draft) Validate() error {
	if d.Name == "" || d.Role == "" {
		return ErrInvalidMember
	}
	return nil
}

// MemberUpdate описывает частичное обновление участника (nil означает "не менять")
type MemberUpdate struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	Photo       *string `json:"photo"`
	Description *string `json:"description"`
}

// FullUpdate строит обновление, полностью заменяющее поля участника значениями черновика
func FullUpdate(d Draft) MemberUpdate {
	return MemberUpdate{
		Name:        &d.Name,
		Role:        &d.Role,
		Photo:       &d.Photo,
		Description: &d.Description,
	}
}

// Apply применяет непустые поля обновления к участнику
func (u MemberUpdate) Apply(m *TeamMember) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Role != nil {
		m.Role = *u.Role
	}
	if u.Photo != nil {
		m.Photo = *u.Photo
	}
	if u.Description != nil {
		m.Description = *u.Description
	}
}

// DraftOf возвращает редактируемые поля участника
func DraftOf(m TeamMember) Draft {
	return Draft{
		Name:        m.Name,
		Role:        m.Role,
		Photo:       m.Photo,
		Description: m.Description,
	}
}

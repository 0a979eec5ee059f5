package models

import "time"

// ScreenType classifies a screen's role in the application flow
type ScreenType string

const (
	ScreenTypeLanding  ScreenType = "landing"
	ScreenTypeList     ScreenType = "list"
	ScreenTypeDetail   ScreenType = "detail"
	ScreenTypeForm     ScreenType = "form"
	ScreenTypeProfile  ScreenType = "profile"
	ScreenTypeSettings ScreenType = "settings"
)

// ValidScreenTypes returns the closed set of screen type tags
func ValidScreenTypes() []ScreenType {
	return []ScreenType{
		ScreenTypeLanding,
		ScreenTypeList,
		ScreenTypeDetail,
		ScreenTypeForm,
		ScreenTypeProfile,
		ScreenTypeSettings,
	}
}

// Screen represents one canvas page within a project.
// At most one screen per project should carry IsHomePage, though the
// inference engine tolerates zero or several.
type Screen struct {
	ID         string     `json:"id"` // scr_{uuid}
	ProjectID  string     `json:"project_id"`
	Name       string     `json:"name"`
	Type       ScreenType `json:"type"`
	Route      string     `json:"route"`
	IsHomePage bool       `json:"is_home_page"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

package models

type Exercise struct {
	ID      uint64 `gorm:"primarykey" json:"id"`
	HabitID uint64 `gorm:"not null;index" json:"habit_id"`

	// ExternalID is the client-assigned identifier; the exercise list is
	// replaced wholesale on habit updates, so rows themselves are ephemeral.
	ExternalID string `gorm:"type:varchar(64);not null" json:"external_id"`
	Position   int    `gorm:"not null" json:"position"`

	Name  string `gorm:"type:varchar(60);not null" json:"name"`
	Sets  int    `gorm:"not null;default:3" json:"sets"`
	Reps  int    `gorm:"not null;default:10" json:"reps"`
	Notes string `gorm:"type:varchar(140)" json:"notes"`
}

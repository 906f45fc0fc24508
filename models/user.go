package models

import "time"

// User is a platform member. The scheduling core only ever stores user IDs;
// this record exists so the HTTP layer can authenticate callers and resolve
// display fields.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	Image        string    `bson:"image,omitempty" json:"image,omitempty"`
	Timezone     string    `bson:"timezone,omitempty" json:"timezone,omitempty"`
	Skills       []string  `bson:"skills,omitempty" json:"skills,omitempty"`
	SkillsWanted []string  `bson:"skillsWanted,omitempty" json:"skillsWanted,omitempty"`
	Level        int       `bson:"level" json:"level"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicProfile strips credentials and contact detail down to what other
// members may see.
type PublicProfile struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Image        string   `json:"image,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	SkillsWanted []string `json:"skillsWanted,omitempty"`
	Level        int      `json:"level"`
}

// Public returns the member-visible view of the user.
func (u *User) Public() PublicProfile {
	return PublicProfile{
		ID:           u.ID,
		Name:         u.Name,
		Image:        u.Image,
		Skills:       u.Skills,
		SkillsWanted: u.SkillsWanted,
		Level:        u.Level,
	}
}

// UserRegistrationInput is the signup payload.
type UserRegistrationInput struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=8"`
	Timezone string   `json:"timezone,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

// UserUpdateInput carries profile fields a user may change about themselves.
type UserUpdateInput struct {
	Name         string   `json:"name,omitempty"`
	Image        string   `json:"image,omitempty"`
	Timezone     string   `json:"timezone,omitempty"`
	Skills       []string `json:"skills,omitempty"`
	SkillsWanted []string `json:"skillsWanted,omitempty"`
}

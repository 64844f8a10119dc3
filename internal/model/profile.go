package model

// Profile holds contact details learned over the course of a conversation.
// Fields are filled in as they are observed and never overwritten once set,
// so the first name and email a user gives stick for the whole session.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// Merge copies fields from other into p, keeping existing values.
func (p *Profile) Merge(other Profile) {
	if p.Name == "" && other.Name != "" {
		p.Name = other.Name
	}
	if p.Email == "" && other.Email != "" {
		p.Email = other.Email
	}
	if p.Timezone == "" && other.Timezone != "" {
		p.Timezone = other.Timezone
	}
}

package models

// ContactQuery is a public contact-form inquiry. Insert-only; admins read it.
type ContactQuery struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Package   string `json:"package,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

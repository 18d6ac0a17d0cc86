package model

// Customer identifies who a quote is prepared for.
type Customer struct {
	Name    string `json:"name" yaml:"name" binding:"required"`
	Company string `json:"company,omitempty" yaml:"company"`
	Email   string `json:"email,omitempty" yaml:"email"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
}

package domain

// Roles a user can hold
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User Model
type User struct {
	ID        uint    `gorm:"primaryKey" json:"id"`                                                  // Primary key
	Username  string  `gorm:"size:150;uniqueIndex;not null" json:"username"`                         // Unique lower-cased username
	Password  string  `gorm:"not null" json:"-"`                                                     // Hashed password
	Email     string  `gorm:"size:254" json:"email"`                                                 // Contact email
	FirstName string  `gorm:"size:150" json:"first_name"`                                            // Given name
	LastName  string  `gorm:"size:150" json:"last_name"`                                             // Family name
	Role      string  `gorm:"size:10;not null;default:customer" json:"user_type"`                    // Role: customer or admin
	Wallet    *Wallet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"wallet,omitempty"` // One-to-one relationship with Wallet
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

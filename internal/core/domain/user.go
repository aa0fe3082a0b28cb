package domain

import "errors"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

var ErrUserNotFound = errors.New("user not found")
var ErrEmployeeNotFound = errors.New("employee not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// User models an account in the directory. Role is fixed at creation and
// never changes; admin accounts are seeded at startup and are not reachable
// through the employee CRUD surface.
type User struct {
	ID           string `json:"id" bson:"_id"`
	Email        string `json:"email" bson:"email"`
	Name         string `json:"name" bson:"name"`
	Role         string `json:"role" bson:"role"`
	Age          int    `json:"age,omitempty" bson:"age,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Address      string `json:"address,omitempty" bson:"address,omitempty"`
	JoinDate     string `json:"join_date,omitempty" bson:"join_date,omitempty"` // YYYY-MM-DD
	PasswordHash string `json:"-" bson:"password_hash"`
}

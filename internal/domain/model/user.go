// Package model defines user-related domain entities.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operator roles. Each role includes the capabilities of the roles before it.
const (
	RoleViewer  = "viewer"
	RolePlanner = "planner"
	RoleAdmin   = "admin"
)

var roleRank = map[string]int{
	RoleViewer:  1,
	RolePlanner: 2,
	RoleAdmin:   3,
}

// ValidRole reports whether name is a known role.
func ValidRole(name string) bool {
	_, ok := roleRank[name]
	return ok
}

// RoleSatisfies reports whether any of the granted roles is at least as strong as required.
func RoleSatisfies(granted []string, required string) bool {
	need, ok := roleRank[required]
	if !ok {
		return false
	}
	for _, r := range granted {
		if roleRank[r] >= need {
			return true
		}
	}
	return false
}

// User represents an operator account.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // Never serialize password
	Name      string             `bson:"name" json:"name"`
	Roles     []string           `bson:"roles" json:"roles"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// HasRole checks whether the user holds required or a stronger role.
func (u *User) HasRole(required string) bool {
	return RoleSatisfies(u.Roles, required)
}

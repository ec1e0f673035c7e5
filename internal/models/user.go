package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level of an account.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole maps an arbitrary string to a known role, defaulting to student.
func NormalizeRole(s string) Role {
	if r := Role(s); r.Valid() {
		return r
	}
	return RoleStudent
}

// Interests a student can pick from. Anything else is silently dropped.
var Interests = []string{"Coding", "Dance", "Sports", "Public speaking"}

// FilterInterests keeps only entries from the allowed interest list,
// preserving input order.
func FilterInterests(in []string) []string {
	out := make([]string, 0, len(in))
	for _, candidate := range in {
		for _, allowed := range Interests {
			if candidate == allowed {
				out = append(out, candidate)
				break
			}
		}
	}
	return out
}

type User struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                string             `bson:"name" json:"name"`
	Email               string             `bson:"email" json:"email"`
	Password            string             `bson:"password" json:"-"`
	Role                Role               `bson:"role" json:"role"`
	Interests           []string           `bson:"interests" json:"interests"`
	IsVerifiedOrganizer bool               `bson:"isVerifiedOrganizer" json:"isVerifiedOrganizer"`
	CreatedAt           time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OrganizerAccount is the admin-facing projection of an organizer user.
type OrganizerAccount struct {
	ID                  primitive.ObjectID `json:"id"`
	Name                string             `json:"name"`
	Email               string             `json:"email"`
	IsVerifiedOrganizer bool               `json:"isVerifiedOrganizer"`
	CreatedAt           time.Time          `json:"createdAt"`
}

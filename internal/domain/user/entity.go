package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a marketplace account. Sellers own listings, takers buy access grants.
type User struct {
	id           uuid.UUID
	fullName     FullName
	email        Email
	passwordHash string
	role         Role
	phone        Phone
	points       int
	isActive     bool
	createdAt    time.Time
}

func NewUser(fullName FullName, email Email, passwordHash string, role Role, phone Phone, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		fullName:     fullName,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		points:       0,
		isActive:     true,
		createdAt:    now,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) FullName() FullName   { return u.fullName }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Phone() Phone         { return u.phone }
func (u *User) Points() int          { return u.points }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }

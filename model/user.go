package model

import "time"

type User struct {
	UserID    string    `firestore:"userid"`
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Password  string    `firestore:"password"`
	Role      string    `firestore:"role"` // "user" or "admin"
	CreatedAt time.Time `firestore:"createdat"`
}

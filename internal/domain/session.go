package domain

import "time"

// UserSession is an authenticated front-desk operator
type UserSession struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

package models

import "github.com/postmeapp/postme/internal/common"

// UserProfile is the display profile for a username. UserID is the
// normalized username and the primary key; Name is presently always equal
// to UserID.
type UserProfile struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// NewUserProfile builds a fresh profile for a normalized username with the
// default avatar.
func NewUserProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID: userID,
		Name:   userID,
		Avatar: common.DefaultAvatar,
	}
}

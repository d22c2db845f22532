package model

import "github.com/google/uuid"

// ActorKind 目前操作者的身分
type ActorKind string

const (
	ActorAnonymous ActorKind = "anonymous"
	ActorUser      ActorKind = "user"
	ActorAdmin     ActorKind = "admin"
)

// Actor 目前 session 的身分；同一個 client 同時最多一個
type Actor struct {
	Kind        ActorKind  `json:"kind"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	Email       string     `json:"email,omitempty"`
	DisplayName string     `json:"display_name,omitempty"`
}

func AnonymousActor() Actor {
	return Actor{Kind: ActorAnonymous}
}

func UserActor(user *User) Actor {
	id := user.ID
	return Actor{
		Kind:        ActorUser,
		UserID:      &id,
		Email:       user.Email,
		DisplayName: user.FullName,
	}
}

func AdminActor(email string) Actor {
	return Actor{Kind: ActorAdmin, Email: email, DisplayName: "Administrator"}
}

func (a Actor) IsAdmin() bool {
	return a.Kind == ActorAdmin
}

// IsUser 僅限有 user id 的一般使用者（報名需要）
func (a Actor) IsUser() bool {
	return a.Kind == ActorUser && a.UserID != nil
}

func (a Actor) IsAuthenticated() bool {
	return a.Kind == ActorUser || a.Kind == ActorAdmin
}

// AuthResponse 登入成功回應
type AuthResponse struct {
	Token string `json:"token"`
	Actor Actor  `json:"actor"`
}

package server

import (
	"DevHub/handler"
	"DevHub/socket"
)

type Handlers struct {
	Auth          *handler.Auth
	User          *handler.User
	Follow        *handler.Follow
	Project       *handler.Project
	Snippet       *handler.Snippet
	Comments      *handler.Comments
	Community     *handler.Community
	CommunityPost *handler.CommunityPost
	Notification  *handler.Notification
	Subscription  *handler.Subscription
	Support       *handler.Support
	Blog          *handler.Blog
	Upload        *handler.Upload
	WS            *socket.WSHandler
}

package handlers

import (
	connectionRepo "skillswap/database/repository/connection"
	"skillswap/services/availability"
	"skillswap/services/connection"
	"skillswap/services/notification"
	"skillswap/services/user"
)

// HandlerBundle groups all endpoint handlers behind their service
// dependencies. Everything is injected at construction; handlers never reach
// for globals. ConnectionRepo backs admin-only listing.
type HandlerBundle struct {
	Users          user.UserService
	Availability   availability.Service
	Connections    connection.Service
	Notifications  notification.NotificationService
	ConnectionRepo connectionRepo.ConnectionRepository
}

func NewHandlerBundle(
	users user.UserService,
	avail availability.Service,
	conns connection.Service,
	notifs notification.NotificationService,
	connRepo connectionRepo.ConnectionRepository,
) *HandlerBundle {
	return &HandlerBundle{
		Users:          users,
		Availability:   avail,
		Connections:    conns,
		Notifications:  notifs,
		ConnectionRepo: connRepo,
	}
}

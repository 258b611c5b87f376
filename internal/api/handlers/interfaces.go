// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	GetMe(c *gin.Context)
	GetUserByID(c *gin.Context)
	UpdateProfile(c *gin.Context)
	GetUsers(c *gin.Context)
	ToggleUserStatus(c *gin.Context)
	DeleteUser(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	ListJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
	GetJobByID(c *gin.Context)
	UpdateJob(c *gin.Context)
	DeleteJob(c *gin.Context)
	ListAllJobs(c *gin.Context)
	ApproveJob(c *gin.Context)
	RejectJob(c *gin.Context)
}

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	Apply(c *gin.Context)
	ListByJob(c *gin.Context)
	ListMine(c *gin.Context)
	Shortlist(c *gin.Context)
	Reject(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// NotificationHandlerInterface defines the methods needed by the notification routes.
type NotificationHandlerInterface interface {
	ListNotifications(c *gin.Context)
	MarkNotificationRead(c *gin.Context)
	DeleteNotification(c *gin.Context)
}

// MessageHandlerInterface defines the methods needed by the message routes.
type MessageHandlerInterface interface {
	SendMessage(c *gin.Context)
	ListMessages(c *gin.Context)
	MarkMessageRead(c *gin.Context)
	DeleteMessage(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ NotificationHandlerInterface = (*NotificationHandler)(nil)
var _ MessageHandlerInterface = (*MessageHandler)(nil)

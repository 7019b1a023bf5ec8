package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/ent/notification"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// ListNotifications handles GET /notifications: the acting reviewer's inbox,
// newest first.
func (s *Server) ListNotifications(c *gin.Context) {
	ctx := c.Request.Context()
	userID := actorFromCtx(c)
	if userID == "" {
		_ = c.Error(apperrors.ErrNotAuthenticated())
		return
	}

	query := s.client.Notification.Query().
		Where(notification.UserID(userID))

	if unreadOnly, _ := strconv.ParseBool(c.Query("unreadOnly")); unreadOnly {
		query = query.Where(notification.ReadEQ(false))
	}

	offset, limit := paginationParams(c)

	total, err := query.Clone().Count(ctx)
	if err != nil {
		logger.Error("failed to count notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	rows, err := query.
		Offset(offset).
		Limit(limit).
		Order(ent.Desc(notification.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		logger.Error("failed to list notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}

	items := make([]gin.H, 0, len(rows))
	for _, n := range rows {
		items = append(items, notificationToAPI(n))
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total_count": total})
}

// GetUnreadCount handles GET /notifications/unread-count.
func (s *Server) GetUnreadCount(c *gin.Context) {
	userID := actorFromCtx(c)
	if userID == "" {
		_ = c.Error(apperrors.ErrNotAuthenticated())
		return
	}

	count, err := s.client.Notification.Query().
		Where(
			notification.UserID(userID),
			notification.ReadEQ(false),
		).
		Count(c.Request.Context())
	if err != nil {
		logger.Error("failed to count unread notifications", zap.Error(err))
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkNotificationRead handles POST /notifications/{id}/read. Marking an
// already read notification again is a no-op.
func (s *Server) MarkNotificationRead(c *gin.Context) {
	ctx := c.Request.Context()
	userID := actorFromCtx(c)
	if userID == "" {
		_ = c.Error(apperrors.ErrNotAuthenticated())
		return
	}

	// Scoped to the recipient so one reviewer cannot touch another's inbox.
	n, err := s.client.Notification.Query().
		Where(
			notification.ID(c.Param("id")),
			notification.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			_ = c.Error(apperrors.New("NOTIFICATION_NOT_FOUND",
				"notification not found", http.StatusNotFound))
			return
		}
		logger.Error("failed to get notification", zap.Error(err))
		_ = c.Error(err)
		return
	}

	if !n.Read {
		if _, err := s.client.Notification.UpdateOneID(n.ID).
			SetRead(true).
			SetReadAt(time.Now()).
			Save(ctx); err != nil {
			logger.Error("failed to mark notification read", zap.Error(err))
			_ = c.Error(err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /notifications/read-all.
func (s *Server) MarkAllNotificationsRead(c *gin.Context) {
	userID := actorFromCtx(c)
	if userID == "" {
		_ = c.Error(apperrors.ErrNotAuthenticated())
		return
	}

	_, err := s.client.Notification.Update().
		Where(
			notification.UserID(userID),
			notification.ReadEQ(false),
		).
		SetRead(true).
		SetReadAt(time.Now()).
		Save(c.Request.Context())
	if err != nil {
		logger.Error("failed to mark all notifications read", zap.Error(err))
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func notificationToAPI(n *ent.Notification) gin.H {
	out := gin.H{
		"id":            n.ID,
		"type":          n.Type.String(),
		"title":         n.Title,
		"message":       n.Message,
		"read":          n.Read,
		"resource_type": n.ResourceType,
		"resource_id":   n.ResourceID,
		"created_at":    n.CreatedAt,
	}
	if n.ReadAt != nil {
		out["read_at"] = *n.ReadAt
	}
	return out
}

package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moneywise/moneywise/internal/domain"
)

func (s *Server) handleListNotifications(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	unreadOnly := false
	if raw := c.Query("unread"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unread must be a boolean"})
			return
		}
		unreadOnly = b
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": s.svc.Notifications(limit, unreadOnly),
		"unread_count":  s.svc.UnreadCount(),
	})
}

func (s *Server) handleUnreadCount(c *gin.Context) {
	unread := s.svc.UnreadCount()
	c.JSON(http.StatusOK, gin.H{
		"unread_count": unread,
		"badge":        domain.UnreadBadge(unread),
	})
}

func (s *Server) handleMarkRead(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	changed := s.svc.MarkAsRead(id)
	c.JSON(http.StatusOK, gin.H{
		"id":           id,
		"changed":      changed,
		"unread_count": s.svc.UnreadCount(),
	})
}

func (s *Server) handleMarkAllRead(c *gin.Context) {
	updated := s.svc.MarkAllAsRead()
	c.JSON(http.StatusOK, gin.H{
		"updated_count": updated,
		"unread_count":  s.svc.UnreadCount(),
	})
}

func (s *Server) handleToggleSidebar(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"open": s.svc.ToggleSidebar()})
}

func (s *Server) handleNav(c *gin.Context) {
	path := c.DefaultQuery("path", domain.PathDashboard)

	resp := gin.H{
		"path":    path,
		"entries": s.svc.NavEntries(path),
	}
	if item, ok := s.svc.ActiveNav(path); ok {
		resp["active"] = item
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleShell(c *gin.Context) {
	path := c.DefaultQuery("path", domain.PathDashboard)
	c.JSON(http.StatusOK, s.svc.ViewAt(path, c.Query("content")))
}

func notificationID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

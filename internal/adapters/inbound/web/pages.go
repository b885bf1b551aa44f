package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/moneywise/moneywise/internal/domain"
)

type pageData struct {
	View     domain.ShellView
	Title    string
	ReturnTo string
}

// handlePage renders the shell for the exact request path. The content region
// only names the page; real page bodies belong to other services.
func (s *Server) handlePage(c *gin.Context) {
	path := c.Request.URL.Path
	view := s.svc.ViewAt(path, "")

	title := "Page not found"
	for _, e := range view.Sidebar.Entries {
		if e.Active {
			title = e.Label
			break
		}
	}

	c.HTML(http.StatusOK, "shell.html", pageData{
		View:     view,
		Title:    title,
		ReturnTo: path,
	})
}

func (s *Server) handleUIMarkRead(c *gin.Context) {
	id, ok := notificationID(c)
	if !ok {
		c.String(http.StatusBadRequest, "invalid notification id")
		return
	}
	s.svc.MarkAsRead(id)
	c.Redirect(http.StatusSeeOther, returnTo(c))
}

func (s *Server) handleUIToggle(c *gin.Context) {
	open := s.svc.ToggleSidebar()
	s.log.Debug("sidebar toggled from page", zap.Bool("sidebar_open", open))
	c.Redirect(http.StatusSeeOther, returnTo(c))
}

// returnTo reads the return_to form value. Only same-site absolute paths are
// honored.
func returnTo(c *gin.Context) string {
	target := c.PostForm("return_to")
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return domain.PathDashboard
	}
	return target
}

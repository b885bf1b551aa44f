package application

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/moneywise/moneywise/internal/domain"
)

// Observer is told about every state change of the shell. Observers run while
// the service holds its lock and must not call back into it.
type Observer interface {
	NotificationRead(id int)
	UnreadChanged(count int)
	SidebarToggled(open bool)
	Navigated(path string)
}

// DashboardService owns one LayoutShell and dispatches user actions to it one
// at a time, so inbound adapters may call it from any goroutine.
type DashboardService struct {
	mu        sync.Mutex
	shell     *domain.LayoutShell
	router    domain.Navigator
	observers []Observer
	log       *zap.Logger
}

// NewDashboardService builds the shell from cfg. router supplies the current
// path for View and receives Navigate calls; log may be nil.
func NewDashboardService(
	cfg domain.DashboardConfig,
	router domain.Navigator,
	log *zap.Logger,
	observers ...Observer,
) (*DashboardService, error) {
	shell, err := domain.NewLayoutShell(cfg)
	if err != nil {
		return nil, fmt.Errorf("building shell: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &DashboardService{
		shell:     shell,
		router:    router,
		observers: observers,
		log:       log,
	}

	unread := shell.Notifications().UnreadCount()
	for _, o := range s.observers {
		o.UnreadChanged(unread)
	}
	s.log.Debug("dashboard shell ready",
		zap.Int("notifications", shell.Notifications().Len()),
		zap.Int("unread", unread),
		zap.String("path", router.CurrentPath()),
	)
	return s, nil
}

// View composes the shell for the router's current path.
func (s *DashboardService) View(content string) domain.ShellView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Compose(s.router.CurrentPath(), content)
}

// ViewAt composes the shell for an explicit path, leaving the router alone.
func (s *DashboardService) ViewAt(path, content string) domain.ShellView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Compose(path, content)
}

// CurrentPath returns the router's current path.
func (s *DashboardService) CurrentPath() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.router.CurrentPath()
}

// Navigate forwards a link activation to the router as is.
func (s *DashboardService) Navigate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.router.Navigate(path)
	s.log.Info("navigation requested", zap.String("path", path))
	for _, o := range s.observers {
		o.Navigated(path)
	}
}

// ToggleSidebar flips the mobile sidebar and returns the new state.
func (s *DashboardService) ToggleSidebar() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	open := s.shell.ToggleSidebar()
	s.log.Debug("sidebar toggled", zap.Bool("sidebar_open", open))
	for _, o := range s.observers {
		o.SidebarToggled(open)
	}
	return open
}

// SidebarOpen reports the mobile sidebar state.
func (s *DashboardService) SidebarOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.SidebarOpen()
}

// MarkAsRead marks one notification read. Unknown and already-read ids are
// no-ops; the result reports whether anything changed.
func (s *DashboardService) MarkAsRead(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := s.shell.SelectNotification(id)
	unread := s.shell.Notifications().UnreadCount()
	s.log.Info("notification selected",
		zap.Int("notification_id", id),
		zap.Bool("changed", changed),
		zap.Int("unread", unread),
	)
	if changed {
		for _, o := range s.observers {
			o.NotificationRead(id)
			o.UnreadChanged(unread)
		}
	}
	return changed
}

// MarkAllAsRead marks every notification read and returns how many changed.
func (s *DashboardService) MarkAllAsRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.shell.Notifications()
	unreadIDs := make([]int, 0)
	for _, n := range store.Unread() {
		unreadIDs = append(unreadIDs, n.ID)
	}
	changed := store.MarkAllAsRead()
	s.log.Info("all notifications marked read", zap.Int("changed", changed))
	if changed > 0 {
		for _, o := range s.observers {
			for _, id := range unreadIDs {
				o.NotificationRead(id)
			}
			o.UnreadChanged(0)
		}
	}
	return changed
}

// Notifications returns up to limit notifications in display order; limit
// <= 0 means all. unreadOnly filters before the limit is applied.
func (s *DashboardService) Notifications(limit int, unreadOnly bool) []domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	store := s.shell.Notifications()
	if !unreadOnly {
		return store.List(limit)
	}
	unread := store.Unread()
	if limit > 0 && limit < len(unread) {
		unread = unread[:limit]
	}
	return unread
}

// Notification looks up a single notification.
func (s *DashboardService) Notification(id int) (domain.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Notifications().Get(id)
}

// UnreadCount returns the number of unread notifications.
func (s *DashboardService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Notifications().UnreadCount()
}

// NavEntries projects the sidebar onto path.
func (s *DashboardService) NavEntries(path string) []domain.NavEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Navigation().Entries(path)
}

// ActiveNav returns the nav item highlighted for path.
func (s *DashboardService) ActiveNav(path string) (domain.NavItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shell.Navigation().ActiveItem(path)
}

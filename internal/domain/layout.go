package domain

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// LayoutShell composes the dashboard chrome around caller-supplied content.
// It owns the notification list and the mobile sidebar flag; everything else
// it renders is static.
//
// A LayoutShell is not safe for concurrent use.
type LayoutShell struct {
	brand             string
	searchPlaceholder string
	previewLimit      int
	user              UserProfile
	nav               *NavigationView
	notifications     *NotificationStore
	sidebarOpen       bool
}

// NewLayoutShell builds a shell from cfg, seeding notifications from
// cfg.Notifications. The sidebar starts closed.
func NewLayoutShell(cfg DashboardConfig) (*LayoutShell, error) {
	store, err := NewNotificationStore(cfg.Notifications)
	if err != nil {
		return nil, fmt.Errorf("seeding notifications: %w", err)
	}
	return &LayoutShell{
		brand:             cfg.Brand,
		searchPlaceholder: cfg.SearchPlaceholder,
		previewLimit:      cfg.PreviewLimit,
		user:              cfg.User,
		nav:               NewNavigationView(cfg.Nav),
		notifications:     store,
	}, nil
}

// ToggleSidebar flips the mobile sidebar flag and returns the new value.
func (s *LayoutShell) ToggleSidebar() bool {
	s.sidebarOpen = !s.sidebarOpen
	return s.sidebarOpen
}

// SidebarOpen reports whether the mobile sidebar is open.
func (s *LayoutShell) SidebarOpen() bool { return s.sidebarOpen }

// SelectNotification handles a click on a notification menu item.
func (s *LayoutShell) SelectNotification(id int) bool {
	return s.notifications.MarkAsRead(id)
}

// Notifications exposes the underlying store.
func (s *LayoutShell) Notifications() *NotificationStore { return s.notifications }

// Navigation exposes the nav projection.
func (s *LayoutShell) Navigation() *NavigationView { return s.nav }

// User returns the signed-in user.
func (s *LayoutShell) User() UserProfile { return s.user }

// Compose builds the render tree for currentPath.
func (s *LayoutShell) Compose(currentPath, content string) ShellView {
	unread := s.notifications.UnreadCount()
	toggle := IconMenu
	if s.sidebarOpen {
		toggle = IconClose
	}

	return ShellView{
		Brand: BrandView{Name: s.brand, Mark: brandMark(s.brand)},
		Sidebar: SidebarView{
			Open:       s.sidebarOpen,
			Entries:    s.nav.Entries(currentPath),
			LogoutPath: PathLogin,
		},
		Header: HeaderView{
			ToggleIcon:        toggle,
			SearchPlaceholder: s.searchPlaceholder,
			Notifications: NotificationMenu{
				UnreadCount: unread,
				HasUnread:   unread > 0,
				Badge:       UnreadBadge(unread),
				Items:       s.notifications.List(s.previewLimit),
				Empty:       s.notifications.Len() == 0,
				ViewAllPath: PathNotifications,
			},
			Profile: ProfileMenu{
				Initials: s.user.Initials(),
				Name:     s.user.Name,
				Email:    s.user.Email,
				Links:    ProfileMenuLinks(),
			},
		},
		CurrentPath: currentPath,
		Content:     content,
	}
}

// UnreadBadge returns the "N new" label, or "" when nothing is unread.
func UnreadBadge(unread int) string {
	if unread <= 0 {
		return ""
	}
	return fmt.Sprintf("%d new", unread)
}

func brandMark(brand string) string {
	r, _ := utf8.DecodeRuneInString(brand)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// ShellView is the render tree of the dashboard shell.
type ShellView struct {
	Brand       BrandView   `json:"brand"`
	Sidebar     SidebarView `json:"sidebar"`
	Header      HeaderView  `json:"header"`
	CurrentPath string      `json:"current_path"`
	Content     string      `json:"content,omitempty"`
}

type BrandView struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

type SidebarView struct {
	Open       bool       `json:"open"`
	Entries    []NavEntry `json:"entries"`
	LogoutPath string     `json:"logout_path"`
}

type HeaderView struct {
	ToggleIcon        IconID           `json:"toggle_icon"`
	SearchPlaceholder string           `json:"search_placeholder"`
	Notifications     NotificationMenu `json:"notifications"`
	Profile           ProfileMenu      `json:"profile"`
}

// NotificationMenu is the header dropdown. Items holds the preview only;
// the full list lives behind ViewAllPath.
type NotificationMenu struct {
	UnreadCount int            `json:"unread_count"`
	HasUnread   bool           `json:"has_unread"`
	Badge       string         `json:"badge,omitempty"`
	Items       []Notification `json:"items"`
	Empty       bool           `json:"empty"`
	ViewAllPath string         `json:"view_all_path"`
}

type ProfileMenu struct {
	Initials string     `json:"initials"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Links    []MenuLink `json:"links"`
}

package domain

import (
	"errors"
	"fmt"
)

// PreviewLimit is the number of notifications shown in the header menu.
const PreviewLimit = 5

var (
	ErrDuplicateNotificationID = errors.New("duplicate notification id")
	ErrNegativeNotificationID  = errors.New("negative notification id")
)

// Notification is a user-facing message with a one-way read flag.
// Time is a display string such as "2 hours ago" and is never parsed.
type Notification struct {
	ID       int    `yaml:"id"                 json:"id"`
	Title    string `yaml:"title"              json:"title"`
	Message  string `yaml:"message"            json:"message"`
	Time     string `yaml:"time"               json:"time"`
	Read     bool   `yaml:"read"               json:"read"`
	Category string `yaml:"category,omitempty" json:"category,omitempty"`
}

// SampleNotifications returns the notifications the dashboard is seeded with.
func SampleNotifications() []Notification {
	return []Notification{
		{
			ID:       1,
			Title:    "Portfolio update",
			Message:  "Your investment portfolio has grown by 2.3% this week.",
			Time:     "10 minutes ago",
			Read:     false,
			Category: "portfolio",
		},
		{
			ID:       2,
			Title:    "New feature",
			Message:  "Check out our new automation tools for investing.",
			Time:     "2 hours ago",
			Read:     false,
			Category: "feature",
		},
		{
			ID:       3,
			Title:    "Account security",
			Message:  "We've detected a new login to your account.",
			Time:     "Yesterday",
			Read:     true,
			Category: "security",
		},
	}
}

// NotificationStore holds notifications in display order. Entries are never
// reordered or removed, and a read entry never becomes unread again.
//
// The store is not safe for concurrent use; callers serialize access.
type NotificationStore struct {
	items  []Notification
	nextID int
}

// NewNotificationStore seeds a store. Entries with ID 0 get the next free id;
// duplicate or negative ids are rejected.
func NewNotificationStore(seed []Notification) (*NotificationStore, error) {
	s := &NotificationStore{nextID: 1}
	seen := make(map[int]bool, len(seed))
	for _, n := range seed {
		if n.ID < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeNotificationID, n.ID)
		}
		if n.ID == 0 {
			continue
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNotificationID, n.ID)
		}
		seen[n.ID] = true
		if n.ID >= s.nextID {
			s.nextID = n.ID + 1
		}
	}

	s.items = make([]Notification, 0, len(seed))
	for _, n := range seed {
		if n.ID == 0 {
			s.Add(n)
			continue
		}
		s.items = append(s.items, n)
	}
	return s, nil
}

// Add appends n with a freshly assigned id and returns the stored copy.
func (s *NotificationStore) Add(n Notification) Notification {
	n.ID = s.nextID
	s.nextID++
	s.items = append(s.items, n)
	return n
}

// Len returns the number of stored notifications.
func (s *NotificationStore) Len() int { return len(s.items) }

// UnreadCount returns how many notifications are unread.
func (s *NotificationStore) UnreadCount() int {
	count := 0
	for _, n := range s.items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkAsRead marks the notification with the given id read. Unknown ids are
// a no-op. It reports whether the entry changed state.
func (s *NotificationStore) MarkAsRead(id int) bool {
	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if s.items[i].Read {
			return false
		}
		s.items[i].Read = true
		return true
	}
	return false
}

// MarkAllAsRead marks every unread notification read and returns how many
// entries changed.
func (s *NotificationStore) MarkAllAsRead() int {
	changed := 0
	for i := range s.items {
		if !s.items[i].Read {
			s.items[i].Read = true
			changed++
		}
	}
	return changed
}

// List returns the first limit notifications in stored order. A limit of
// zero or less returns all of them.
func (s *NotificationStore) List(limit int) []Notification {
	n := len(s.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Notification, n)
	copy(out, s.items[:n])
	return out
}

// All returns every notification in stored order.
func (s *NotificationStore) All() []Notification { return s.List(0) }

// Unread returns the unread notifications in stored order.
func (s *NotificationStore) Unread() []Notification {
	out := make([]Notification, 0, len(s.items))
	for _, n := range s.items {
		if !n.Read {
			out = append(out, n)
		}
	}
	return out
}

// Get returns the notification with the given id.
func (s *NotificationStore) Get(id int) (Notification, bool) {
	for _, n := range s.items {
		if n.ID == id {
			return n, true
		}
	}
	return Notification{}, false
}

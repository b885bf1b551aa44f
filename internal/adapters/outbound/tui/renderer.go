package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/moneywise/moneywise/internal/domain"
)

// ── Warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

const (
	sidebarWidth = 26
	mainWidth    = 56
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 1).
			Width(sidebarWidth)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Padding(0, 1).
			Width(mainWidth)

	contentStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(dim).
			Padding(1, 2).
			Width(mainWidth)

	brandMarkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(accent).
			Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(danger).
			Padding(0, 1)

	activeStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	dangerStyle   = lipgloss.NewStyle().Foreground(danger)
	infoStyle     = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	unreadStyle   = lipgloss.NewStyle().Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderShell draws the whole dashboard: sidebar on the left, header with
// the notification and profile menus on the right, content underneath.
func RenderShell(view domain.ShellView) string {
	sidebar := renderSidebar(view)
	main := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(view.Header),
		renderNotificationMenu(view.Header.Notifications),
		renderProfileMenu(view.Header.Profile),
		renderContent(view.Content),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", main) + "\n"
}

func renderSidebar(view domain.ShellView) string {
	var b strings.Builder

	b.WriteString(brandMarkStyle.Render(view.Brand.Mark))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(view.Brand.Name))
	b.WriteString("\n")
	if view.Sidebar.Open {
		b.WriteString(dimStyle.Render("menu open"))
	}
	b.WriteString("\n")

	for _, e := range view.Sidebar.Entries {
		b.WriteString(renderNavEntry(e))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s  %s",
		dangerStyle.Render(Glyph(domain.IconLogout)),
		dangerStyle.Render("Logout"),
		faintStyle.Render(view.Sidebar.LogoutPath),
	)

	return sidebarStyle.Render(b.String())
}

func renderNavEntry(e domain.NavEntry) string {
	glyph := Glyph(e.Icon)
	if e.Active {
		return activeStyle.Render("▌" + glyph + " " + e.Label)
	}
	return " " + dimStyle.Render(glyph) + " " + e.Label
}

func renderHeader(h domain.HeaderView) string {
	bell := Glyph(domain.IconBell)
	if h.Notifications.HasUnread {
		bell = unreadStyle.Render(bell) + dangerStyle.Render("•")
	}

	line := fmt.Sprintf("%s  %s %s   %s  %s",
		titleStyle.Render(Glyph(h.ToggleIcon)),
		dimStyle.Render(Glyph(domain.IconSearch)),
		faintStyle.Render(padRight(h.SearchPlaceholder, 20)),
		bell,
		brandMarkStyle.Render(h.Profile.Initials),
	)
	return panelStyle.Render(line)
}

func renderNotificationMenu(m domain.NotificationMenu) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Notifications"))
	if m.Badge != "" {
		b.WriteString("  ")
		b.WriteString(badgeStyle.Render(m.Badge))
	}
	b.WriteString("\n")

	if m.Empty {
		b.WriteString(dimStyle.Render("No notifications"))
		b.WriteString("\n")
	}
	for _, n := range m.Items {
		b.WriteString(renderNotificationLine(n))
		b.WriteString("\n")
	}
	b.WriteString(infoStyle.Render("View all notifications → " + m.ViewAllPath))

	return panelStyle.Render(b.String())
}

func renderNotificationLine(n domain.Notification) string {
	if n.Read {
		return fmt.Sprintf("%s %s  %s",
			faintStyle.Render("○"),
			dimStyle.Render(n.Title),
			faintStyle.Render(n.Time),
		)
	}
	return fmt.Sprintf("%s %s  %s",
		unreadStyle.Render("●"),
		titleStyle.Render(n.Title),
		dimStyle.Render(n.Time),
	)
}

func renderProfileMenu(p domain.ProfileMenu) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", brandMarkStyle.Render(p.Initials), titleStyle.Render(p.Name))
	b.WriteString(dimStyle.Render(p.Email))
	b.WriteString("\n")

	for _, l := range p.Links {
		label := Glyph(l.Icon) + " " + l.Label
		if l.Danger {
			label = dangerStyle.Render(label)
		}
		fmt.Fprintf(&b, "%s  %s\n", label, faintStyle.Render(l.Path))
	}

	return panelStyle.Render(strings.TrimSuffix(b.String(), "\n"))
}

func renderContent(content string) string {
	if content == "" {
		content = faintStyle.Render("(empty)")
	}
	return contentStyle.Render(content)
}

// RenderNotifications formats the full notification list.
func RenderNotifications(items []domain.Notification, unread int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Notifications"))
	if badge := domain.UnreadBadge(unread); badge != "" {
		b.WriteString("  " + badgeStyle.Render(badge))
	}
	b.WriteString("\n")
	b.WriteString("  " + separatorLine + "\n\n")

	if len(items) == 0 {
		b.WriteString("  " + dimStyle.Render("No notifications") + "\n")
		return b.String()
	}

	for _, n := range items {
		id := faintStyle.Render(fmt.Sprintf("#%-3d", n.ID))
		fmt.Fprintf(&b, "  %s %s\n", id, renderNotificationLine(n))
		if n.Message != "" {
			fmt.Fprintf(&b, "        %s\n", dimStyle.Render(n.Message))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderNavigation lists the sidebar entries for currentPath.
func RenderNavigation(entries []domain.NavEntry, currentPath string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + headerStyle.Render("Navigation") + "  " + dimStyle.Render(currentPath) + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	matched := false
	for _, e := range entries {
		fmt.Fprintf(&b, "  %s  %s\n", padRight(renderNavEntry(e), sidebarWidth), faintStyle.Render(e.Path))
		matched = matched || e.Active
	}
	if !matched {
		b.WriteString("\n  " + dimStyle.Render("No item matches this path.") + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderBanner is shown once when the interactive shell starts.
func RenderBanner(brand, path string) string {
	title := headerStyle.Render(brand)
	subtitle := dimStyle.Render("Dashboard shell")
	hint := passStyle.Render("type help for commands") + dimStyle.Render("  ·  at "+path)
	return boxStyle.Render(title+"\n"+subtitle+"\n\n"+hint) + "\n"
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

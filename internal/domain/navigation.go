package domain

// IconID names an icon symbolically. The rendering layer resolves it to a
// glyph or markup.
type IconID string

const (
	IconHome        IconID = "home"
	IconBarChart    IconID = "bar-chart"
	IconWallet      IconID = "wallet"
	IconRefresh     IconID = "refresh"
	IconSettings    IconID = "settings"
	IconBell        IconID = "bell"
	IconSearch      IconID = "search"
	IconUserCircle  IconID = "user-circle"
	IconLogout      IconID = "logout"
	IconMenu        IconID = "menu"
	IconClose       IconID = "close"
	IconSettingsAlt IconID = "settings-alt"
)

// ValidIcons enumerates every known icon id.
var ValidIcons = []IconID{
	IconHome, IconBarChart, IconWallet, IconRefresh, IconSettings, IconBell,
	IconSearch, IconUserCircle, IconLogout, IconMenu, IconClose, IconSettingsAlt,
}

// IsValid reports whether id is a known icon.
func (id IconID) IsValid() bool {
	for _, v := range ValidIcons {
		if v == id {
			return true
		}
	}
	return false
}

// Route paths the shell links to.
const (
	PathDashboard     = "/dashboard"
	PathInsights      = "/dashboard/insights"
	PathInvestments   = "/dashboard/investments"
	PathAutomation    = "/dashboard/automation"
	PathNotifications = "/dashboard/notifications"
	PathSettings      = "/dashboard/settings"
	PathProfile       = "/dashboard/profile"
	PathLogin         = "/login"
	PathLogout        = "/logout"
)

// NavItem is a static sidebar entry.
type NavItem struct {
	Icon  IconID `yaml:"icon"  json:"icon"`
	Label string `yaml:"label" json:"label"`
	Path  string `yaml:"path"  json:"path"`
}

// NavEntry is a NavItem projected against the current route.
type NavEntry struct {
	NavItem
	Active bool `json:"active"`
}

// DefaultNavItems returns the sidebar entries in display order.
func DefaultNavItems() []NavItem {
	return []NavItem{
		{Icon: IconHome, Label: "Overview", Path: PathDashboard},
		{Icon: IconBarChart, Label: "Insights", Path: PathInsights},
		{Icon: IconWallet, Label: "Investments", Path: PathInvestments},
		{Icon: IconRefresh, Label: "Automation", Path: PathAutomation},
		{Icon: IconBell, Label: "Notification", Path: PathNotifications},
		{Icon: IconSettings, Label: "Settings", Path: PathSettings},
	}
}

// IsActive reports whether a nav item is highlighted for currentPath.
// Matching is exact: no prefix matching and no trailing-slash normalization,
// so "/dashboard/insights/detail" does not highlight "/dashboard/insights".
func IsActive(currentPath, itemPath string) bool {
	return currentPath == itemPath
}

// NavigationView projects a fixed list of nav items onto a route.
type NavigationView struct {
	items []NavItem
}

// NewNavigationView copies items so later changes to the slice are not seen.
func NewNavigationView(items []NavItem) *NavigationView {
	cp := make([]NavItem, len(items))
	copy(cp, items)
	return &NavigationView{items: cp}
}

// Entries returns every item with its active flag for currentPath.
func (v *NavigationView) Entries(currentPath string) []NavEntry {
	out := make([]NavEntry, len(v.items))
	for i, item := range v.items {
		out[i] = NavEntry{NavItem: item, Active: IsActive(currentPath, item.Path)}
	}
	return out
}

// ActiveItem returns the first item whose path equals currentPath.
func (v *NavigationView) ActiveItem(currentPath string) (NavItem, bool) {
	for _, item := range v.items {
		if IsActive(currentPath, item.Path) {
			return item, true
		}
	}
	return NavItem{}, false
}

// MenuLink is an entry of the profile menu.
type MenuLink struct {
	Icon   IconID `json:"icon"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Danger bool   `json:"danger,omitempty"`
}

// ProfileMenuLinks returns the profile menu entries in display order.
func ProfileMenuLinks() []MenuLink {
	return []MenuLink{
		{Icon: IconUserCircle, Label: "Profile", Path: PathProfile},
		{Icon: IconSettingsAlt, Label: "Account Settings", Path: PathSettings},
		{Icon: IconLogout, Label: "Logout", Path: PathLogout, Danger: true},
	}
}

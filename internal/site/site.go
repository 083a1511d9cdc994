// Package site holds the view models of the application shell that depend on
// the build configuration: the root layout (navigation and developer
// tooling) and the debug page.
package site

import (
	"strings"

	"github.com/nauticalab/buildenv/internal/config"
)

// Route is one page of the hash-routed application
type Route struct {
	Path  string `yaml:"path" json:"path"`
	Title string `yaml:"title" json:"title"`
}

// Href returns the hash-router link for the route
func (r Route) Href() string {
	return "#" + r.Path
}

// NavLink is an entry in the navigation bar
type NavLink struct {
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
	// Muted links are rendered de-emphasised (the debug page)
	Muted bool `yaml:"muted,omitempty" json:"muted,omitempty"`
}

// RootLayout is the shell rendered around every page
type RootLayout struct {
	Nav          []NavLink `yaml:"nav" json:"nav"`
	ShowDevtools bool      `yaml:"showDevtools" json:"showDevtools"`
}

var (
	HomeRoute     = Route{Path: "/", Title: "Home"}
	AboutRoute    = Route{Path: "/about", Title: "About"}
	DebugRoute    = Route{Path: "/debug", Title: "Debug"}
	NotFoundRoute = Route{Path: "", Title: "404 - Page not found"}
)

// Routes returns the pages of the application in navigation order
func Routes() []Route {
	return []Route{HomeRoute, AboutRoute, DebugRoute}
}

// Resolve maps a hash-router path ("/about", "#/about", "/about/") to its
// route. Unknown paths resolve to NotFoundRoute.
func Resolve(path string) Route {
	path = strings.TrimPrefix(path, "#")
	if path == "" {
		path = "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	for _, r := range Routes() {
		if r.Path == path {
			return r
		}
	}
	return NotFoundRoute
}

// Layout builds the root layout. The router developer panel is shown only
// when enabled by configuration and never in test mode.
func Layout(cfg *config.BuildConfig, mode string) RootLayout {
	return RootLayout{
		Nav: []NavLink{
			{Label: HomeRoute.Title, Href: HomeRoute.Href()},
			{Label: AboutRoute.Title, Href: AboutRoute.Href()},
			{Label: "🔧 " + DebugRoute.Title, Href: DebugRoute.Href(), Muted: true},
		},
		ShowDevtools: cfg.EnableRouterDevtools && mode != config.ModeTest,
	}
}

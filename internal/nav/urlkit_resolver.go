package nav

import (
	"fmt"
	"strings"
	"sync"

	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-folio/internal/i18n"
)

// RouteResolverOptions configures the go-urlkit backed resolver.
type RouteResolverOptions struct {
	Manager      *urlkit.RouteManager
	DefaultGroup string
	LocaleGroups map[string]string
}

// RouteResolver resolves named routes through go-urlkit route groups, picking
// the locale-specific group when one is configured so localized route shapes
// ("/projekte/:slug") resolve without string surgery.
type RouteResolver struct {
	manager      *urlkit.RouteManager
	defaultGroup string
	localeGroups map[string]string

	mu         sync.RWMutex
	groupCache map[string]*urlkit.Group
}

// NewRouteResolver constructs a resolver backed by go-urlkit.
func NewRouteResolver(opts RouteResolverOptions) *RouteResolver {
	return &RouteResolver{
		manager:      opts.Manager,
		defaultGroup: strings.TrimSpace(opts.DefaultGroup),
		localeGroups: opts.LocaleGroups,
		groupCache:   make(map[string]*urlkit.Group),
	}
}

// Resolve builds the URL for a named route under the locale's route group.
func (r *RouteResolver) Resolve(route string, locale i18n.Locale, params map[string]any) (string, error) {
	if r == nil || r.manager == nil {
		return "", fmt.Errorf("nav: route manager not configured")
	}
	route = strings.TrimSpace(route)
	if route == "" {
		return "", fmt.Errorf("nav: route name is required")
	}

	groupPath := r.defaultGroup
	if r.localeGroups != nil {
		if path, ok := r.localeGroups[locale.String()]; ok && strings.TrimSpace(path) != "" {
			groupPath = strings.TrimSpace(path)
		}
	}
	if groupPath == "" {
		return "", fmt.Errorf("nav: no route group for locale %q", locale)
	}

	group, err := r.groupForPath(groupPath)
	if err != nil {
		return "", err
	}

	builder, err := r.safeBuilder(group, route)
	if err != nil {
		return "", err
	}
	if builder == nil {
		return "", fmt.Errorf("nav: route %q has no builder", route)
	}
	for key, value := range params {
		builder.WithParam(key, value)
	}

	url, err := builder.Build()
	if err != nil {
		return "", fmt.Errorf("nav: build route %q: %w", route, err)
	}
	return url, nil
}

func (r *RouteResolver) groupForPath(path string) (*urlkit.Group, error) {
	r.mu.RLock()
	group, ok := r.groupCache[path]
	r.mu.RUnlock()
	if ok {
		return group, nil
	}

	parts := strings.Split(path, ".")
	root, err := lookupGroup(r.manager, parts[0])
	if err != nil {
		return nil, err
	}
	current := root
	for _, part := range parts[1:] {
		current, err = lookupChildGroup(current, part)
		if err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.groupCache[path] = current
	r.mu.Unlock()
	return current, nil
}

// go-urlkit panics on unknown groups/routes; convert those into errors so a
// misconfigured menu cannot take down a build.
func (r *RouteResolver) safeBuilder(group *urlkit.Group, route string) (builder *urlkit.Builder, err error) {
	if group == nil {
		return nil, fmt.Errorf("nav: urlkit group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			builder = nil
			err = fmt.Errorf("nav: urlkit builder panic: %v", rec)
		}
	}()
	builder = group.Builder(route)
	return builder, nil
}

func lookupGroup(manager *urlkit.RouteManager, name string) (group *urlkit.Group, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("nav: route group %q not found", name)
		}
	}()
	group = manager.Group(name)
	return group, nil
}

func lookupChildGroup(parent *urlkit.Group, name string) (group *urlkit.Group, err error) {
	if parent == nil {
		return nil, fmt.Errorf("nav: parent group is nil")
	}
	defer func() {
		if rec := recover(); rec != nil {
			group = nil
			err = fmt.Errorf("nav: child group %q not found", name)
		}
	}()
	group = parent.Group(name)
	return group, nil
}

package ratelimit

import (
	"fmt"
	"time"
)

// Route identifies a rate-limited endpoint. Bucket keys include the route,
// so two endpoints never share counters even when a dimension value
// collides.
type Route string

// RequestContext carries the dimensions a rule can key on.
type RequestContext struct {
	ClientIP string
	UserID   string
}

// Rule is one fixed-window limit. KeyFn extracts the dimension to count
// on; returning "" skips the rule for this request (a per-user rule has no
// effect on an unauthenticated request).
type Rule struct {
	Name   string
	Limit  int
	Window time.Duration
	KeyFn  func(RequestContext) string
}

// ByClientIP keys a rule on the caller's IP address.
func ByClientIP(rc RequestContext) string {
	return rc.ClientIP
}

// ByUserID keys a rule on the authenticated user, skipping anonymous
// requests.
func ByUserID(rc RequestContext) string {
	return rc.UserID
}

// RouteTable maps every rate-limited route to its rules, in evaluation
// order. A misspelled or unmapped route used to silently bypass limiting;
// the table is now validated exhaustively at startup instead.
type RouteTable map[Route][]Rule

// Validate checks the table against the full set of registered routes:
// every registered route must have an entry and every rule must be
// well-formed. Called once at startup; any error is fatal.
func (t RouteTable) Validate(registered []Route) error {
	for _, route := range registered {
		rules, ok := t[route]
		if !ok {
			return fmt.Errorf("route %q registered but has no rate limit entry", route)
		}
		for _, rule := range rules {
			if rule.Name == "" {
				return fmt.Errorf("route %q has a rule with no name", route)
			}
			if rule.Limit <= 0 {
				return fmt.Errorf("rule %q on route %q has non-positive limit", rule.Name, route)
			}
			if rule.Window <= 0 {
				return fmt.Errorf("rule %q on route %q has non-positive window", rule.Name, route)
			}
			if rule.KeyFn == nil {
				return fmt.Errorf("rule %q on route %q has no key function", rule.Name, route)
			}
		}
	}

	known := make(map[Route]struct{}, len(registered))
	for _, route := range registered {
		known[route] = struct{}{}
	}
	for route := range t {
		if _, ok := known[route]; !ok {
			return fmt.Errorf("rate limit entry for unknown route %q", route)
		}
	}

	return nil
}

package model

import "strings"

// Role is the closed set of capability labels attached to a user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSubmitter Role = "submitter"
	RoleBuyer     Role = "buyer"
)

// Permission names a single capability granted to one or more roles.
type Permission string

const (
	PermFilmsSubmit     Permission = "films:submit"
	PermFilmsEditOwn    Permission = "films:edit_own"
	PermFilmsReview     Permission = "films:review"
	PermFilmsViewAll    Permission = "films:view_all"
	PermStatsView       Permission = "stats:view"
	PermTicketsPurchase Permission = "tickets:purchase"
	PermTicketsViewOwn  Permission = "tickets:view_own"
)

// rolePermissions is the permission matrix.  A role not listed here has
// no permissions at all.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermFilmsReview:  true,
		PermFilmsViewAll: true,
		PermStatsView:    true,
	},
	RoleSubmitter: {
		PermFilmsSubmit:  true,
		PermFilmsEditOwn: true,
	},
	RoleBuyer: {
		PermTicketsPurchase: true,
		PermTicketsViewOwn:  true,
	},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether the role has been granted p.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}

// ParseRole normalizes s and returns the matching role.  Historical
// clients send "filmmaker" for the submitter role, so it is accepted as
// an alias.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RoleSubmitter, RoleBuyer:
		return r, true
	case "filmmaker":
		return RoleSubmitter, true
	}
	return "", false
}

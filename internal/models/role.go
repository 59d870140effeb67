package models

// Role is stored with its ordinal as a string so that role comparisons are a
// plain total order over the wire encoding: "0" < "1" < "2" < "3".
type Role string

const (
	RoleBuddy     Role = "0"
	RoleHR        Role = "1"
	RolePresident Role = "2"
	RoleAdmin     Role = "3"
)

func AllRoles() []Role {
	return []Role{RoleBuddy, RoleHR, RolePresident, RoleAdmin}
}

func (role Role) Valid() bool {
	switch role {
	case RoleBuddy, RoleHR, RolePresident, RoleAdmin:
		return true
	}
	return false
}

// Level returns the role's position in the hierarchy. Unknown values rank
// below BUDDY so a corrupted role never gains privileges.
func (role Role) Level() int {
	switch role {
	case RoleBuddy:
		return 0
	case RoleHR:
		return 1
	case RolePresident:
		return 2
	case RoleAdmin:
		return 3
	}
	return -1
}

func (role Role) Label() string {
	switch role {
	case RoleBuddy:
		return "BUDDY"
	case RoleHR:
		return "HR"
	case RolePresident:
		return "PRESIDENT"
	case RoleAdmin:
		return "ADMIN"
	}
	return "UNKNOWN"
}

func (role Role) Above(other Role) bool {
	return role.Level() > other.Level()
}

func (role Role) AtLeast(other Role) bool {
	return role.Level() >= other.Level()
}

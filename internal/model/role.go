package model

// Role is a user's privilege level on a board.
type Role string

const (
	RoleViewer Role = "viewer" // may only view the board
	RoleEditor Role = "editor" // may edit board content
	RoleOwner  Role = "owner"  // full control, exactly one per board

	// RoleNone marks the absence of a membership. It is only ever a
	// query result, never a stored value.
	RoleNone Role = ""
)

// Allowed role sets per operation category. The sets are named rather than
// derived from an ordinal comparison because an operation's allowed set is
// not required to be a contiguous range of the ordering.
var (
	// MemberRoles gates view-class operations: board detail, member list.
	MemberRoles = []Role{RoleOwner, RoleEditor, RoleViewer}
	// WriteRoles gates content edits on the board.
	WriteRoles = []Role{RoleOwner, RoleEditor}
	// OwnerRoles gates administrative operations: rename, share,
	// role change, member removal, delete.
	OwnerRoles = []Role{RoleOwner}
)

// In reports whether the role appears in the allowed set.
func (r Role) In(allowed []Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// CanWrite reports whether the role may modify board content.
func (r Role) CanWrite() bool {
	return r.In(WriteRoles)
}

// AssignableRole validates a role received over the wire. Only viewer and
// editor can be assigned through sharing; owner is set once at creation.
func AssignableRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleViewer, RoleEditor:
		return Role(s), true
	}
	return RoleNone, false
}

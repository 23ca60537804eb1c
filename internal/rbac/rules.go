package rbac

// Simple default policy. The public finder surface needs no role at all;
// these cover the authenticated admin/editor operations.
var RolePermissions = map[string][]string{
	"editor": {
		"schools:bulk_upsert",
		"prefs:write",
	},
	"admin": {
		"*", // everything
	},
}

package rbac

// Default policy: one student role, one shared teacher account.
var RolePermissions = map[string][]string{
	"student": {
		"module:view",
		"quiz:take",
		"result:view-own",
		"assignment:submit",
		"assignment:view-own",
		"assignment:delete-own",
	},
	"teacher": {
		"module:view",
		"module:edit",
		"quiz:grade",
		"result:view-all",
		"assignment:view-all",
		"assignment:grade",
		"assignment:delete-any",
	},
}

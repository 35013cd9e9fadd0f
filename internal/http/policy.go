package http

import "github.com/ShishirShekhar/E-Learning-Platform/internal/model"

// policy is the allowed-role set for a route group. The admin bypass lives in
// the table itself: rolePolicy appends the admin role to every set it builds,
// so Allows is a plain membership test.
type policy struct {
	allowed []string
}

func rolePolicy(roles ...string) policy {
	allowed := make([]string, 0, len(roles)+1)
	hasAdmin := false
	for _, role := range roles {
		if role == model.RoleAdmin {
			hasAdmin = true
		}
		allowed = append(allowed, role)
	}
	if !hasAdmin {
		allowed = append(allowed, model.RoleAdmin)
	}
	return policy{allowed: allowed}
}

func (p policy) Allows(role string) bool {
	for _, allowed := range p.allowed {
		if allowed == role {
			return true
		}
	}
	return false
}

// Route policy table. Auth routes are public, /user/me needs authentication
// only; everything else is restricted by role.
var (
	studentRoutes     = rolePolicy(model.RoleStudent)
	instructorRoutes  = rolePolicy(model.RoleInstructor)
	adminRoutes       = rolePolicy(model.RoleAdmin)
	aiAuthoringRoutes = rolePolicy(model.RoleInstructor, model.RoleAdmin)
	aiStudyRoutes     = rolePolicy(model.RoleStudent, model.RoleInstructor, model.RoleAdmin)
)

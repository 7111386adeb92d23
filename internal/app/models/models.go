package models

// UserRole defines the caller role type
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// RegistrationStatus values for the membership review flow
const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationRejected = "rejected"
)

// TeamRoleOrder is the fixed display priority for team members. Roles not in
// this list rank last, keeping their insertion order.
var TeamRoleOrder = []string{
	"Faculty coordinator",
	"Student president",
	"Core member",
	"Volunteer",
}

// Canonical category enumerations. Clients restrict their pickers to these;
// the model itself permits arbitrary strings.
var (
	AchievementCategories  = []string{"Student awards", "Competition wins", "Grants received", "Research papers"}
	GalleryCategories      = []string{"Workshops", "Hackathons", "Guest Lectures", "Competitions", "Field Visits"}
	AnnouncementCategories = []string{"Meeting notice", "Event update", "Opportunity alert"}
	ResourceCategories     = []string{"Research papers", "Learning links", "Tools for students", "Innovation guides"}
)

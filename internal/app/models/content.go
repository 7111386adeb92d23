package models

import (
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
)

// All content entities share the draft/publish lifecycle: created with
// IsPublic=false, made public once by an explicit publish, never downgraded.
// Blob-valued fields hold store references; the DTO layer resolves them to
// directly fetchable URLs.

// TeamMember defines a council member shown on the team page
type TeamMember struct {
	ID         int64          `json:"id" db:"id"`
	Name       string         `json:"name" db:"name"`
	Role       string         `json:"role" db:"role"`
	Department string         `json:"department" db:"department"`
	Photo      *blobstore.Ref `json:"photo,omitempty" db:"photo"`
	IsPublic   bool           `json:"isPublic" db:"is_public"`
}

// Event defines a council event with an ordered photo sequence and an
// optional poster. Date is a Unix-nanosecond timestamp; IsPast partitions the
// upcoming/past listings.
type Event struct {
	ID               int64           `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Date             int64           `json:"date" db:"date"`
	Description      string          `json:"description" db:"description"`
	IsPast           bool            `json:"isPast" db:"is_past"`
	Outcomes         *string         `json:"outcomes,omitempty" db:"outcomes"`
	RegistrationLink *string         `json:"registrationLink,omitempty" db:"registration_link"`
	Photos           []blobstore.Ref `json:"photos" db:"photos"`
	Poster           *blobstore.Ref  `json:"poster,omitempty" db:"poster"`
	IsPublic         bool            `json:"isPublic" db:"is_public"`
}

// GalleryImage defines one image in the public gallery. Image is mandatory.
type GalleryImage struct {
	ID       int64         `json:"id" db:"id"`
	Category string        `json:"category" db:"category"`
	Image    blobstore.Ref `json:"image" db:"image"`
	Caption  *string       `json:"caption,omitempty" db:"caption"`
	IsPublic bool          `json:"isPublic" db:"is_public"`
}

// Project defines a student-submitted project. SubmittedBy is set at creation
// and immutable; edit permission is owner-or-admin. Projects stay drafts until
// an admin publishes them.
type Project struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Description string  `json:"description" db:"description"`
	TechUsed    string  `json:"techUsed" db:"tech_used"`
	TeamMembers string  `json:"teamMembers" db:"team_members"`
	DemoLink    *string `json:"demoLink,omitempty" db:"demo_link"`
	SubmittedBy int64   `json:"submittedBy" db:"submitted_by"`
	SubmittedAt int64   `json:"submittedAt" db:"submitted_at"`
	IsPublic    bool    `json:"isPublic" db:"is_public"`
}

// Achievement defines a council achievement. Date is the effective date as a
// Unix-nanosecond timestamp.
type Achievement struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Category    string `json:"category" db:"category"`
	Description string `json:"description" db:"description"`
	Date        int64  `json:"date" db:"date"`
	Recipients  string `json:"recipients" db:"recipients"`
	IsPublic    bool   `json:"isPublic" db:"is_public"`
}

// Announcement defines a council announcement, ordered by posting time
type Announcement struct {
	ID       int64  `json:"id" db:"id"`
	Title    string `json:"title" db:"title"`
	Content  string `json:"content" db:"content"`
	Category string `json:"category" db:"category"`
	PostedAt int64  `json:"postedAt" db:"posted_at"`
	IsPublic bool   `json:"isPublic" db:"is_public"`
}

// Collaboration defines an industry collaboration listing
type Collaboration struct {
	ID                    int64   `json:"id" db:"id"`
	CompanyName           string  `json:"companyName" db:"company_name"`
	ProblemStatement      *string `json:"problemStatement,omitempty" db:"problem_statement"`
	InternshipOpportunity *string `json:"internshipOpportunity,omitempty" db:"internship_opportunity"`
	ContactInfo           *string `json:"contactInfo,omitempty" db:"contact_info"`
	IsPublic              bool    `json:"isPublic" db:"is_public"`
}

// Resource defines a learning resource link
type Resource struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Category    string `json:"category" db:"category"`
	Description string `json:"description" db:"description"`
	Link        string `json:"link" db:"link"`
	IsPublic    bool   `json:"isPublic" db:"is_public"`
}

// Registration is the per-caller membership registration singleton. At most
// one registration exists per caller; the database enforces uniqueness.
type Registration struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Branch       string `json:"branch" db:"branch"`
	Year         string `json:"year" db:"year"`
	Skills       string `json:"skills" db:"skills"`
	InterestArea string `json:"interestArea" db:"interest_area"`
	Status       string `json:"status" db:"status"`
	SubmittedBy  int64  `json:"submittedBy" db:"submitted_by"`
	SubmittedAt  int64  `json:"submittedAt" db:"submitted_at"`
}

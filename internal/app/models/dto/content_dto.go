package dto

import (
	"github.com/aaryan/councilhub/internal/app/models"
	"github.com/aaryan/councilhub/internal/pkg/blobstore"
)

// Create requests for admin-authored content carry a Publish flag: when set,
// the entry is created and made public in one transaction instead of the
// older create-then-publish call pair.

// CreateTeamMemberRequest creates a team member
type CreateTeamMemberRequest struct {
	Name       string         `json:"name" binding:"required"`
	Role       string         `json:"role" binding:"required"`
	Department string         `json:"department" binding:"required"`
	Photo      *blobstore.Ref `json:"photo,omitempty"`
	Publish    bool           `json:"publish"`
}

// UpdateTeamMemberRequest carries the full editable field set. Photo holds
// the prior ref unchanged unless the client uploaded a replacement.
type UpdateTeamMemberRequest struct {
	Name       string         `json:"name" binding:"required"`
	Role       string         `json:"role" binding:"required"`
	Department string         `json:"department" binding:"required"`
	Photo      *blobstore.Ref `json:"photo,omitempty"`
}

// CreateEventRequest creates an event
type CreateEventRequest struct {
	Name             string          `json:"name" binding:"required"`
	Date             int64           `json:"date" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	Photos           []blobstore.Ref `json:"photos"`
	Outcomes         *string         `json:"outcomes,omitempty"`
	RegistrationLink *string         `json:"registrationLink,omitempty"`
	Poster           *blobstore.Ref  `json:"poster,omitempty"`
	IsPast           bool            `json:"isPast"`
	Publish          bool            `json:"publish"`
}

// UpdateEventRequest updates an event
type UpdateEventRequest struct {
	Name             string          `json:"name" binding:"required"`
	Date             int64           `json:"date" binding:"required"`
	Description      string          `json:"description" binding:"required"`
	Photos           []blobstore.Ref `json:"photos"`
	Outcomes         *string         `json:"outcomes,omitempty"`
	RegistrationLink *string         `json:"registrationLink,omitempty"`
	Poster           *blobstore.Ref  `json:"poster,omitempty"`
	IsPast           bool            `json:"isPast"`
}

// UploadGalleryImageRequest creates a gallery entry; the image is mandatory
type UploadGalleryImageRequest struct {
	Category string        `json:"category" binding:"required"`
	Image    blobstore.Ref `json:"image" binding:"required"`
	Caption  *string       `json:"caption,omitempty"`
	Publish  bool          `json:"publish"`
}

// SubmitProjectRequest submits a project; any authenticated caller may do so.
// Submissions always start as drafts pending admin review.
type SubmitProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	TechUsed    string  `json:"techUsed" binding:"required"`
	TeamMembers string  `json:"teamMembers" binding:"required"`
	DemoLink    *string `json:"demoLink,omitempty"`
}

// UpdateProjectRequest updates a project (owner or admin)
type UpdateProjectRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	TechUsed    string  `json:"techUsed" binding:"required"`
	TeamMembers string  `json:"teamMembers" binding:"required"`
	DemoLink    *string `json:"demoLink,omitempty"`
}

// CreateAchievementRequest creates an achievement
type CreateAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        int64  `json:"date" binding:"required"`
	Recipients  string `json:"recipients" binding:"required"`
	Publish     bool   `json:"publish"`
}

// UpdateAchievementRequest updates an achievement
type UpdateAchievementRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        int64  `json:"date" binding:"required"`
	Recipients  string `json:"recipients" binding:"required"`
}

// PostAnnouncementRequest creates an announcement
type PostAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
	Publish  bool   `json:"publish"`
}

// UpdateAnnouncementRequest updates an announcement
type UpdateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Category string `json:"category" binding:"required"`
}

// CreateCollaborationRequest creates a collaboration listing
type CreateCollaborationRequest struct {
	CompanyName           string  `json:"companyName" binding:"required"`
	ProblemStatement      *string `json:"problemStatement,omitempty"`
	InternshipOpportunity *string `json:"internshipOpportunity,omitempty"`
	ContactInfo           *string `json:"contactInfo,omitempty"`
	Publish               bool    `json:"publish"`
}

// UpdateCollaborationRequest updates a collaboration listing
type UpdateCollaborationRequest struct {
	CompanyName           string  `json:"companyName" binding:"required"`
	ProblemStatement      *string `json:"problemStatement,omitempty"`
	InternshipOpportunity *string `json:"internshipOpportunity,omitempty"`
	ContactInfo           *string `json:"contactInfo,omitempty"`
}

// CreateResourceRequest creates a resource
type CreateResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
	Publish     bool   `json:"publish"`
}

// UpdateResourceRequest updates a resource
type UpdateResourceRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
	Link        string `json:"link" binding:"required,url"`
}

// BlobResponse describes an uploaded attachment
type BlobResponse struct {
	Ref blobstore.Ref `json:"ref"`
	URL string        `json:"url"`
}

// RefResolver resolves a blob ref to its directly fetchable URL
type RefResolver func(blobstore.Ref) string

// TeamMemberResponse is a team member with its photo resolved to a URL
type TeamMemberResponse struct {
	models.TeamMember
	PhotoURL string `json:"photoUrl,omitempty"`
}

// NewTeamMemberResponse resolves blob refs for a team member
func NewTeamMemberResponse(m models.TeamMember, resolve RefResolver) TeamMemberResponse {
	resp := TeamMemberResponse{TeamMember: m}
	if m.Photo != nil {
		resp.PhotoURL = resolve(*m.Photo)
	}
	return resp
}

// NewTeamMemberResponses resolves blob refs for a list of team members
func NewTeamMemberResponses(members []models.TeamMember, resolve RefResolver) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, NewTeamMemberResponse(m, resolve))
	}
	return out
}

// EventResponse is an event with photo/poster refs resolved to URLs. Photo
// order is preserved; the first photo serves as the thumbnail.
type EventResponse struct {
	models.Event
	PhotoURLs []string `json:"photoUrls"`
	PosterURL string   `json:"posterUrl,omitempty"`
}

// NewEventResponse resolves blob refs for an event
func NewEventResponse(e models.Event, resolve RefResolver) EventResponse {
	resp := EventResponse{Event: e, PhotoURLs: make([]string, 0, len(e.Photos))}
	for _, p := range e.Photos {
		resp.PhotoURLs = append(resp.PhotoURLs, resolve(p))
	}
	if e.Poster != nil {
		resp.PosterURL = resolve(*e.Poster)
	}
	return resp
}

// NewEventResponses resolves blob refs for a list of events
func NewEventResponses(events []models.Event, resolve RefResolver) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e, resolve))
	}
	return out
}

// GalleryImageResponse is a gallery entry with its image resolved to a URL
type GalleryImageResponse struct {
	models.GalleryImage
	ImageURL string `json:"imageUrl"`
}

// NewGalleryImageResponse resolves blob refs for a gallery entry
func NewGalleryImageResponse(g models.GalleryImage, resolve RefResolver) GalleryImageResponse {
	return GalleryImageResponse{GalleryImage: g, ImageURL: resolve(g.Image)}
}

// NewGalleryImageResponses resolves blob refs for a list of gallery entries
func NewGalleryImageResponses(images []models.GalleryImage, resolve RefResolver) []GalleryImageResponse {
	out := make([]GalleryImageResponse, 0, len(images))
	for _, g := range images {
		out = append(out, NewGalleryImageResponse(g, resolve))
	}
	return out
}

package model

// CampaignPlatform is the outreach channel of a campaign.
type CampaignPlatform string

const (
	PlatformEmail     CampaignPlatform = "Email"
	PlatformLinkedIn  CampaignPlatform = "LinkedIn"
	PlatformInstagram CampaignPlatform = "Instagram"
)

// CampaignStatus is derived from the campaign's date range against today.
type CampaignStatus string

const (
	CampaignUpcoming CampaignStatus = "Upcoming"
	CampaignActive   CampaignStatus = "Active"
	CampaignPast     CampaignStatus = "Past"
)

// CampaignLeadStatus tracks a contact within a campaign.
type CampaignLeadStatus string

const (
	CampaignLeadPending   CampaignLeadStatus = "Pending"
	CampaignLeadContacted CampaignLeadStatus = "Contacted"
	CampaignLeadReplied   CampaignLeadStatus = "Replied"
	CampaignLeadConverted CampaignLeadStatus = "Converted"
)

// CampaignLead is a contact scoped to one campaign. It is a distinct
// entity from Lead; which optional fields are filled depends on the
// campaign's platform.
type CampaignLead struct {
	ID              string             `json:"id"`
	Name            string             `json:"name,omitempty"`
	Email           string             `json:"email,omitempty"`
	CompanyName     string             `json:"companyName,omitempty"`
	LinkedinProfile string             `json:"linkedinProfile,omitempty"`
	InstagramHandle string             `json:"instagramHandle,omitempty"`
	FollowersCount  string             `json:"followersCount,omitempty"`
	Status          CampaignLeadStatus `json:"status"`
}

// Campaign is an outreach campaign with a date-derived status.
type Campaign struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Platform       CampaignPlatform `json:"platform"`
	LeadsGenerated int              `json:"leadsGenerated"`
	Status         CampaignStatus   `json:"status"`
	StartDate      string           `json:"startDate"` // YYYY-MM-DD
	DueDate        string           `json:"dueDate"`   // YYYY-MM-DD
	Leads          []CampaignLead   `json:"leads"`
	Documents      []string         `json:"documents"`
}

// CampaignStatusFor derives the status of a campaign from its date range.
// Dates are YYYY-MM-DD strings, which compare correctly as strings.
func CampaignStatusFor(startDate, dueDate, today string) CampaignStatus {
	switch {
	case today > dueDate:
		return CampaignPast
	case today >= startDate && today <= dueDate:
		return CampaignActive
	default:
		return CampaignUpcoming
	}
}

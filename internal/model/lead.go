package model

// LeadStatus is the telecalling pipeline state of a lead.
type LeadStatus string

const (
	LeadNew                 LeadStatus = "New"
	LeadInterestedBooked    LeadStatus = "Interested - Meeting Booked"
	LeadInterestedNotBooked LeadStatus = "Interested - Not Booked"
	LeadNotInterested       LeadStatus = "Not Interested"
	LeadFollowUp            LeadStatus = "Follow Up"
)

// LeadStatuses lists every status in display order.
var LeadStatuses = []LeadStatus{
	LeadNew,
	LeadInterestedBooked,
	LeadInterestedNotBooked,
	LeadNotInterested,
	LeadFollowUp,
}

// Lead is a prospect record. City and Category are free-text
// classification keys matched by name against the folder tree;
// there is no stored folder reference.
type Lead struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email,omitempty"`
	City             string     `json:"city"`
	Country          string     `json:"country,omitempty"`
	Category         string     `json:"category"`
	Phone            string     `json:"phone"`
	Status           LeadStatus `json:"status"`
	MeetingDate      string     `json:"meetingDate,omitempty"` // YYYY-MM-DDTHH:MM
	Remarks          string     `json:"remarks,omitempty"`
	SocialMediaLinks []string   `json:"socialMediaLinks"`
}

// LeadUpdate holds a partial set of lead fields for merge updates.
// Nil pointers leave the existing value untouched.
type LeadUpdate struct {
	Name             *string
	Email            *string
	City             *string
	Country          *string
	Category         *string
	Phone            *string
	Status           *LeadStatus
	MeetingDate      *string
	Remarks          *string
	SocialMediaLinks []string
}

// Apply merges the update into the lead.
func (u LeadUpdate) Apply(l *Lead) {
	if u.Name != nil {
		l.Name = *u.Name
	}
	if u.Email != nil {
		l.Email = *u.Email
	}
	if u.City != nil {
		l.City = *u.City
	}
	if u.Country != nil {
		l.Country = *u.Country
	}
	if u.Category != nil {
		l.Category = *u.Category
	}
	if u.Phone != nil {
		l.Phone = *u.Phone
	}
	if u.Status != nil {
		l.Status = *u.Status
	}
	if u.MeetingDate != nil {
		l.MeetingDate = *u.MeetingDate
	}
	if u.Remarks != nil {
		l.Remarks = *u.Remarks
	}
	if u.SocialMediaLinks != nil {
		l.SocialMediaLinks = u.SocialMediaLinks
	}
}

// NewLeadParams holds parameters for creating a new Lead.
type NewLeadParams struct {
	Name             string
	Email            string
	City             string
	Country          string
	Category         string
	Phone            string
	Status           LeadStatus
	MeetingDate      string
	Remarks          string
	SocialMediaLinks []string
}

// NewLead creates a Lead with a generated ID and defaulted fields.
func NewLead(params NewLeadParams) Lead {
	status := params.Status
	if status == "" {
		status = LeadNew
	}
	links := params.SocialMediaLinks
	if links == nil {
		links = []string{}
	}

	return Lead{
		ID:               GenerateID(),
		Name:             params.Name,
		Email:            params.Email,
		City:             params.City,
		Country:          params.Country,
		Category:         params.Category,
		Phone:            params.Phone,
		Status:           status,
		MeetingDate:      params.MeetingDate,
		Remarks:          params.Remarks,
		SocialMediaLinks: links,
	}
}

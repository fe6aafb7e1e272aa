package model

import "time"

// Seed data used when a collection is missing or unreadable on startup.

// SeedFolders returns the default classification tree:
// Global Database → India → Mumbai/Delhi with starter categories.
func SeedFolders() []Folder {
	root := "root"
	india := "in"
	mumbai := "mumbai"
	delhi := "delhi"
	return []Folder{
		{ID: root, Name: "Global Database", Type: FolderRoot},
		{ID: india, Name: "India", Type: FolderCountry, ParentID: &root},
		{ID: mumbai, Name: "Mumbai", Type: FolderCity, ParentID: &india},
		{ID: delhi, Name: "Delhi", Type: FolderCity, ParentID: &india},
		{ID: "mum-real", Name: "Real Estate", Type: FolderCategory, ParentID: &mumbai},
		{ID: "mum-cafe", Name: "Cafes", Type: FolderCategory, ParentID: &mumbai},
		{ID: "mum-int", Name: "Interior Designers", Type: FolderCategory, ParentID: &mumbai},
		{ID: "del-real", Name: "Real Estate", Type: FolderCategory, ParentID: &delhi},
	}
}

// SeedLeads returns the starter lead records.
func SeedLeads() []Lead {
	return []Lead{
		{
			ID: "1", Name: "Supreme Interiors", Email: "info@supreme.com",
			City: "Mumbai", Country: "India", Category: "Interior Designers",
			Phone: "099201 61633", Status: LeadInterestedBooked,
			MeetingDate:      "2023-10-15T14:00",
			SocialMediaLinks: []string{"https://instagram.com/supreme_interiors"},
		},
		{
			ID: "2", Name: "Artneit Designs", Email: "contact@artneit.com",
			City: "Mumbai", Country: "India", Category: "Interior Designers",
			Phone: "075068 03602", Status: LeadInterestedNotBooked,
			Remarks: "Busy, call later", SocialMediaLinks: []string{},
		},
		{
			ID: "3", Name: "Bandra Cafe", Email: "hello@bandracafe.com",
			City: "Mumbai", Country: "India", Category: "Cafes",
			Phone: "098765 43210", Status: LeadNew,
			SocialMediaLinks: []string{"https://facebook.com/bandracafe", "https://instagram.com/bandracafe"},
		},
		{
			ID: "4", Name: "Delhi Estate", Email: "sales@delhiestate.in",
			City: "Delhi", Country: "India", Category: "Real Estate",
			Phone: "011223 34455", Status: LeadNotInterested,
			SocialMediaLinks: []string{},
		},
	}
}

// SeedProjects returns the starter projects.
func SeedProjects() []Project {
	return []Project{
		{
			ID: "1", Name: "Raulo CRM V1", Client: "Internal",
			Status:      ProjectOngoing,
			Description: "Developing the internal CRM system.",
			Progress:    67,
			Documents:   []string{"specs.pdf"},
			Milestones: []Milestone{
				{ID: "m1", Title: "UI Design", IsCompleted: true},
				{ID: "m2", Title: "Frontend Dev", IsCompleted: true},
				{ID: "m3", Title: "Backend Integration", IsCompleted: false},
			},
		},
		{
			ID: "2", Name: "E-commerce Redesign", Client: "ShopifyClient",
			Status:      ProjectUpcoming,
			Description: "Redesigning the checkout flow.",
			Documents:   []string{},
			Milestones: []Milestone{
				{ID: "m4", Title: "Kickoff Meeting", IsCompleted: false},
			},
		},
		{
			ID: "3", Name: "Social Booster", Client: "InfluencerAgency",
			Status:      ProjectCompleted,
			Description: "Setting up social media handles and content.",
			Progress:    100,
			Documents:   []string{},
			Milestones: []Milestone{
				{ID: "m5", Title: "Create Accounts", IsCompleted: true},
			},
		},
	}
}

// SeedCampaigns returns the starter campaigns with date ranges placed
// around now so the derived statuses cover all three states.
func SeedCampaigns(now time.Time) []Campaign {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	return []Campaign{
		{
			ID: "1", Name: "Winter Email Blast", Platform: PlatformEmail,
			LeadsGenerated: 2, Status: CampaignActive,
			StartDate: day(0), DueDate: day(7),
			Documents: []string{"email_copy_v1.pdf"},
			Leads: []CampaignLead{
				{ID: "e1", Name: "John Doe", Email: "john@corp.com", CompanyName: "MegaCorp", Status: CampaignLeadContacted},
				{ID: "e2", Name: "Jane Smith", Email: "jane@start.up", CompanyName: "StartUp Inc", Status: CampaignLeadReplied},
			},
		},
		{
			ID: "2", Name: "CEO Outreach", Platform: PlatformLinkedIn,
			LeadsGenerated: 1, Status: CampaignPast,
			StartDate: day(-7), DueDate: day(-1),
			Documents: []string{},
			Leads: []CampaignLead{
				{ID: "l1", Name: "Michael Scott", LinkedinProfile: "linkedin.com/in/mscott", Status: CampaignLeadConverted},
			},
		},
		{
			ID: "3", Name: "Influencer Collab", Platform: PlatformInstagram,
			Status:    CampaignUpcoming,
			StartDate: day(7), DueDate: day(14),
			Documents: []string{"influencer_list.xlsx"},
			Leads:     []CampaignLead{},
		},
	}
}

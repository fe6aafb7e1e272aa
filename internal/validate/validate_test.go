package validate_test

import (
	"testing"

	"github.com/raulo/crm/internal/model"
	"github.com/raulo/crm/internal/validate"
)

func validCampaign() model.Campaign {
	return model.Campaign{
		Name:      "Winter Email Blast",
		Platform:  model.PlatformEmail,
		StartDate: "2024-01-01",
		DueDate:   "2024-01-10",
	}
}

func TestCampaign_Valid(t *testing.T) {
	if err := validate.Campaign(validCampaign()); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
}

func TestCampaign_DueBeforeStart(t *testing.T) {
	c := validCampaign()
	c.DueDate = "2023-12-31"
	if err := validate.Campaign(c); err == nil {
		t.Error("expected due-before-start to fail")
	}
}

func TestCampaign_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Campaign)
	}{
		{"no name", func(c *model.Campaign) { c.Name = "" }},
		{"no platform", func(c *model.Campaign) { c.Platform = "" }},
		{"bad platform", func(c *model.Campaign) { c.Platform = "Fax" }},
		{"bad start date", func(c *model.Campaign) { c.StartDate = "01/01/2024" }},
		{"no due date", func(c *model.Campaign) { c.DueDate = "" }},
	}
	for _, tc := range tests {
		c := validCampaign()
		tc.mutate(&c)
		if err := validate.Campaign(c); err == nil {
			t.Errorf("%s: expected validation failure", tc.name)
		}
	}
}

func TestLead(t *testing.T) {
	if err := validate.Lead(model.Lead{Name: "Acme", Phone: "12345"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := validate.Lead(model.Lead{Name: "Acme"}); err == nil {
		t.Error("expected missing phone to fail")
	}
	if err := validate.Lead(model.Lead{Phone: "12345"}); err == nil {
		t.Error("expected missing name to fail")
	}
}

func TestProject(t *testing.T) {
	if err := validate.Project(model.Project{Name: "CRM", Client: "Internal"}); err != nil {
		t.Errorf("expected valid, got %v", err)
	}
	if err := validate.Project(model.Project{Name: "CRM"}); err == nil {
		t.Error("expected missing client to fail")
	}
}

func TestReport(t *testing.T) {
	valid := model.Report{Date: "2024-06-15", FileName: "daily.pdf", Uploader: "Telecaller"}
	if err := validate.Report(valid); err != nil {
		t.Errorf("expected valid, got %v", err)
	}

	bad := valid
	bad.Date = "15/06/2024"
	if err := validate.Report(bad); err == nil {
		t.Error("expected bad date format to fail")
	}
}

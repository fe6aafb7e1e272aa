// Package validate holds the form-level validation rules. Failures
// surface to the caller before any mutation; nothing is ever partially
// applied.
package validate

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/raulo/crm/internal/model"
)

const dateLayout = "2006-01-02"

// Campaign validates a campaign before it is added or updated:
// required name/platform/dates, and the due date must not precede the
// start date.
func Campaign(c model.Campaign) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Platform, validation.Required, validation.In(
			model.PlatformEmail, model.PlatformLinkedIn, model.PlatformInstagram,
		)),
		validation.Field(&c.StartDate, validation.Required, validation.Date(dateLayout)),
		validation.Field(&c.DueDate, validation.Required, validation.Date(dateLayout)),
	)
	if err != nil {
		return err
	}

	// YYYY-MM-DD strings compare correctly as strings.
	if c.DueDate < c.StartDate {
		return errors.New("dueDate: must not be before the start date")
	}
	return nil
}

// Lead validates a manually added lead: name and phone are the
// required display identity.
func Lead(l model.Lead) error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.Phone, validation.Required),
	)
}

// Project validates a project before it is added or updated.
func Project(p model.Project) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.Client, validation.Required),
	)
}

// Report validates a daily report entry.
func Report(r model.Report) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Date, validation.Required, validation.Date(dateLayout)),
		validation.Field(&r.FileName, validation.Required),
		validation.Field(&r.Uploader, validation.Required),
	)
}

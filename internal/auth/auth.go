// Package auth gates the dashboard behind a fixed, compiled-in
// credential table. There is no external identity provider.
package auth

import "github.com/raulo/crm/internal/model"

type credential struct {
	email    string
	password string
	name     string
}

var credentials = map[model.Role]credential{
	model.RoleBoss:         {email: "boss@raulo.com", password: "boss123", name: "Boss"},
	model.RoleSalesManager: {email: "salesmanager@raulo.com", password: "salesmanager123", name: "Sales Manager"},
	model.RoleTelecaller:   {email: "telecaller@raulo.com", password: "telecaller123", name: "Telecaller"},
	model.RoleTechLead:     {email: "techlead@raulo.com", password: "techlead123", name: "Tech Lead"},
}

// Login checks email and password against the credential table.
// Returns the matched user and true, or false for no match.
func Login(email, password string) (model.User, bool) {
	for role, c := range credentials {
		if c.email == email && c.password == password {
			return model.User{Email: email, Name: c.name, Role: role}, true
		}
	}
	return model.User{}, false
}

// UserForEmail resolves a stored session email back to its user.
func UserForEmail(email string) (model.User, bool) {
	for role, c := range credentials {
		if c.email == email {
			return model.User{Email: email, Name: c.name, Role: role}, true
		}
	}
	return model.User{}, false
}

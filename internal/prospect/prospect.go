package prospect

import "strings"

type Profile struct {
	Role         string `json:"role"`
	CompanyName  string `json:"company_name"`
	Industry     string `json:"industry"`
	SizeCategory string `json:"size_category"`
	ContactName  string `json:"contact_name"`
	Email        string `json:"email"`
}

func (p Profile) FirstName() string {
	fields := strings.Fields(p.ContactName)
	if len(fields) == 0 {
		return "there"
	}
	return fields[0]
}

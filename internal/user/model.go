package user

// Profile is the buyer identity collected during onboarding.
type Profile struct {
	IsOnboarded bool   `json:"isOnboarded"`
	Phone       string `json:"phone" validate:"omitempty,len=10,number"`
	UserType    string `json:"userType" validate:"omitempty,usertype"`
	City        string `json:"city" validate:"omitempty,city"`
	Name        string `json:"name"`
}

// Default is the signed-out profile.
func Default() Profile {
	return Profile{}
}

// Patch carries the fields to change; nil fields are left as they are.
type Patch struct {
	IsOnboarded *bool
	Phone       *string
	UserType    *string
	City        *string
	Name        *string
}

// Apply merges patch into p and returns the result. p is not modified.
func Apply(p Profile, patch Patch) Profile {
	if patch.IsOnboarded != nil {
		p.IsOnboarded = *patch.IsOnboarded
	}
	if patch.Phone != nil {
		p.Phone = *patch.Phone
	}
	if patch.UserType != nil {
		p.UserType = *patch.UserType
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	return p
}

type UserType struct {
	ID          string
	Label       string
	Description string
}

var UserTypes = []UserType{
	{ID: "contractor", Label: "Contractor", Description: "Building projects for clients"},
	{ID: "builder", Label: "Builder / Developer", Description: "Real estate development"},
	{ID: "retailer", Label: "Material Retailer", Description: "Selling construction materials"},
	{ID: "architect", Label: "Architect / Engineer", Description: "Design and planning"},
	{ID: "individual", Label: "Individual Buyer", Description: "Personal construction needs"},
}

var Cities = []string{
	"Hyderabad",
	"Bengaluru",
	"Chennai",
	"Mumbai",
	"Pune",
	"Ahmedabad",
	"Delhi NCR",
	"Kolkata",
	"Jaipur",
	"Lucknow",
}

// LookupUserType finds a user type by id.
func LookupUserType(id string) (UserType, bool) {
	for _, t := range UserTypes {
		if t.ID == id {
			return t, true
		}
	}
	return UserType{}, false
}

func IsCity(name string) bool {
	for _, c := range Cities {
		if c == name {
			return true
		}
	}
	return false
}

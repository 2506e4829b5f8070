package entity

import "time"

type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleShopOwner Role = "shop_owner"
	RoleAdmin     Role = "admin"
)

// Page identifies one screen of the client. Each role has exactly one home
// page; the guard redirects a session landing anywhere else.
type Page string

const (
	PageLanding       Page = "landing"
	PageFarmerHome    Page = "farmer_dashboard"
	PageShopOwnerHome Page = "shop_dashboard"
	PageAdminHome     Page = "admin_dashboard"
)

func HomePage(role Role) Page {
	switch role {
	case RoleShopOwner:
		return PageShopOwnerHome
	case RoleAdmin:
		return PageAdminHome
	default:
		return PageFarmerHome
	}
}

// Session is the persisted bearer token plus its role tag. The token's
// absence means "unauthenticated" regardless of the role value.
type Session struct {
	AccessToken string    `json:"access_token"`
	Role        Role      `json:"role"`
	SavedAt     time.Time `json:"saved_at"`
}

func (s *Session) Authenticated() bool {
	return s != nil && s.AccessToken != ""
}

type User struct {
	UserID        int64     `json:"user_id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Role          Role      `json:"role"`
	IsActive      bool      `json:"is_active"`
	UPIID         string    `json:"upi_id,omitempty"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Location      string    `json:"location,omitempty"`
	CropsGrown    string    `json:"crops_grown,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ProfileUpdate carries only the fields the user changed; zero-valued fields
// are omitted from the request body.
type ProfileUpdate struct {
	Name          string `json:"name,omitempty"`
	UPIID         string `json:"upi_id,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Location      string `json:"location,omitempty"`
	CropsGrown    string `json:"crops_grown,omitempty"`
	Password      string `json:"password,omitempty"`
}

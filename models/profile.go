package models

// MerchantProfile is the account record of the signed-in merchant.
type MerchantProfile struct {
	Name       string  `json:"name"`
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	Avatar     string  `json:"avatar"`
	Plan       string  `json:"plan"`
	Revenue    string  `json:"revenue"`
	StoreCount int     `json:"storeCount"`
	Rating     float64 `json:"rating"`
}

// ProfileUpdate carries a partial profile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name       *string  `json:"name"`
	ID         *string  `json:"id"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	Avatar     *string  `json:"avatar"`
	Plan       *string  `json:"plan"`
	Revenue    *string  `json:"revenue"`
	StoreCount *int     `json:"storeCount"`
	Rating     *float64 `json:"rating"`
}

// Apply merges the set fields of u over p and returns the result.
func (u ProfileUpdate) Apply(p MerchantProfile) MerchantProfile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.ID != nil {
		p.ID = *u.ID
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Avatar != nil {
		p.Avatar = *u.Avatar
	}
	if u.Plan != nil {
		p.Plan = *u.Plan
	}
	if u.Revenue != nil {
		p.Revenue = *u.Revenue
	}
	if u.StoreCount != nil {
		p.StoreCount = *u.StoreCount
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	return p
}

// IsEmpty reports whether no field is set.
func (u ProfileUpdate) IsEmpty() bool {
	return u == ProfileUpdate{}
}

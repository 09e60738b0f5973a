package dto

// ClerkWebhookEvent is the envelope Clerk posts to the webhook endpoint
// for user.created, user.updated and user.deleted events.
type ClerkWebhookEvent struct {
	Type   string        `json:"type"`
	Object string        `json:"object"`
	Data   ClerkUserData `json:"data"`
}

type ClerkUserData struct {
	ID                    string              `json:"id"`
	Username              *string             `json:"username"`
	FirstName             *string             `json:"first_name"`
	LastName              *string             `json:"last_name"`
	ImageURL              *string             `json:"image_url"`
	PrimaryEmailAddressID *string             `json:"primary_email_address_id"`
	EmailAddresses        []ClerkEmailAddress `json:"email_addresses"`
}

type ClerkEmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
}

// PrimaryEmail returns the address matching primary_email_address_id,
// falling back to the first listed address. Empty when none exist.
func (d *ClerkUserData) PrimaryEmail() string {
	if d.PrimaryEmailAddressID != nil {
		for _, e := range d.EmailAddresses {
			if e.ID == *d.PrimaryEmailAddressID {
				return e.EmailAddress
			}
		}
	}
	if len(d.EmailAddresses) > 0 {
		return d.EmailAddresses[0].EmailAddress
	}
	return ""
}

// FullName joins the provided name parts, skipping absent ones.
func (d *ClerkUserData) FullName() string {
	name := ""
	if d.FirstName != nil && *d.FirstName != "" {
		name = *d.FirstName
	}
	if d.LastName != nil && *d.LastName != "" {
		if name != "" {
			name += " "
		}
		name += *d.LastName
	}
	return name
}

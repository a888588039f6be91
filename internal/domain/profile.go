package domain

import "fmt"

// PublicProfile is the anonymous view of a user: profile fields plus the
// active items in display order.
type PublicProfile struct {
	Username    string
	DisplayName string
	Bio         *string
	AvatarURL   *string
	Theme       Theme
	Items       []Item
}

// NewPublicProfile projects a user and their items into a PublicProfile,
// dropping inactive items.
func NewPublicProfile(u User, items []Item) PublicProfile {
	active := make([]Item, 0, len(items))
	for _, it := range items {
		if it.IsActive {
			active = append(active, it)
		}
	}
	return PublicProfile{
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Theme:       u.Theme,
		Items:       active,
	}
}

// PageTitle returns the title used for the public page and share previews.
func (p PublicProfile) PageTitle(siteName string) string {
	return fmt.Sprintf("%s | %s", p.name(), siteName)
}

// PageDescription returns the bio, or a generic line when the bio is empty.
func (p PublicProfile) PageDescription(siteName string) string {
	if p.Bio != nil && *p.Bio != "" {
		return *p.Bio
	}
	return fmt.Sprintf("Check out %s's latest drops on %s", p.name(), siteName)
}

func (p PublicProfile) name() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Username
}

// ShareURL builds the public link for a username.
func ShareURL(baseURL, username string) string {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return baseURL + "/" + username
}

package profile

import "github.com/heartmarshall/dripdrop-backend/internal/domain"

// PublicPage is a public profile with the metadata used for page titles and
// link previews.
type PublicPage struct {
	Profile     *domain.PublicProfile
	Title       string
	Description string
	ShareURL    string
}

// Dashboard is the owner's view: every item, inactive ones included.
type Dashboard struct {
	User     *domain.User
	Items    []domain.Item
	ShareURL string
}

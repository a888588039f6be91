package profile

import (
	"strings"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
)

// UpdateProfileInput is a partial profile update. A nil field is left
// untouched; an empty bio or avatar_url clears it.
type UpdateProfileInput struct {
	DisplayName *string `json:"display_name" validate:"omitnil,notblank,max=60"`
	Bio         *string `json:"bio"          validate:"omitnil,max=300"`
	AvatarURL   *string `json:"avatar_url"   validate:"omitnil,http_url_or_empty,max=2048"`
	Theme       *string `json:"theme"        validate:"omitnil,theme"`
}

func (i *UpdateProfileInput) normalize() {
	if i.DisplayName != nil {
		n := domain.NormalizeText(*i.DisplayName)
		i.DisplayName = &n
	}
	if i.Bio != nil {
		b := strings.TrimSpace(*i.Bio)
		i.Bio = &b
	}
	if i.AvatarURL != nil {
		a := strings.TrimSpace(*i.AvatarURL)
		i.AvatarURL = &a
	}
	if i.Theme != nil {
		t := strings.ToLower(strings.TrimSpace(*i.Theme))
		i.Theme = &t
	}
}

func (i UpdateProfileInput) changes() domain.ProfileChanges {
	c := domain.ProfileChanges{
		DisplayName: i.DisplayName,
		Bio:         i.Bio,
		AvatarURL:   i.AvatarURL,
	}
	if i.Theme != nil {
		th := domain.Theme(*i.Theme)
		c.Theme = &th
	}
	return c
}

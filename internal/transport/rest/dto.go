package rest

import (
	"time"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/service/auth"
	"github.com/heartmarshall/dripdrop-backend/internal/service/profile"
)

type userResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         *string   `json:"bio"`
	AvatarURL   *string   `json:"avatar_url"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"created_at"`
}

type itemResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Brand     *string   `json:"brand"`
	Price     *string   `json:"price"`
	Currency  string    `json:"currency"`
	ImageURL  *string   `json:"image_url"`
	LinkURL   string    `json:"link_url"`
	Category  *string   `json:"category"`
	Position  int       `json:"position"`
	IsActive  bool      `json:"is_active"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// publicItemResponse omits owner-only fields such as click counts.
type publicItemResponse struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Brand    *string `json:"brand"`
	Price    *string `json:"price"`
	Currency string  `json:"currency"`
	ImageURL *string `json:"image_url"`
	LinkURL  string  `json:"link_url"`
	Category *string `json:"category"`
}

type authResponse struct {
	AccessToken      string       `json:"access_token"`
	AccessExpiresAt  time.Time    `json:"access_expires_at"`
	RefreshToken     string       `json:"refresh_token"`
	RefreshExpiresAt time.Time    `json:"refresh_expires_at"`
	User             userResponse `json:"user"`
}

type publicPageResponse struct {
	Username    string               `json:"username"`
	DisplayName string               `json:"display_name"`
	Bio         *string              `json:"bio"`
	AvatarURL   *string              `json:"avatar_url"`
	Theme       string               `json:"theme"`
	Items       []publicItemResponse `json:"items"`
	Meta        pageMeta             `json:"meta"`
}

type pageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ShareURL    string `json:"share_url"`
}

type dashboardResponse struct {
	User     userResponse   `json:"user"`
	Items    []itemResponse `json:"items"`
	ShareURL string         `json:"share_url"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Theme:       string(u.Theme),
		CreatedAt:   u.CreatedAt,
	}
}

func toItemResponse(it *domain.Item) itemResponse {
	return itemResponse{
		ID:        it.ID.String(),
		Title:     it.Title,
		Brand:     it.Brand,
		Price:     priceString(it),
		Currency:  it.Currency,
		ImageURL:  it.ImageURL,
		LinkURL:   it.LinkURL,
		Category:  it.Category,
		Position:  it.Position,
		IsActive:  it.IsActive,
		Clicks:    it.Clicks,
		CreatedAt: it.CreatedAt,
		UpdatedAt: it.UpdatedAt,
	}
}

func toItemsResponse(items []domain.Item) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	return out
}

func toAuthResponse(result *auth.AuthResult) authResponse {
	return authResponse{
		AccessToken:      result.AccessToken,
		AccessExpiresAt:  result.AccessExpiresAt,
		RefreshToken:     result.RefreshToken,
		RefreshExpiresAt: result.RefreshExpiresAt,
		User:             toUserResponse(result.User),
	}
}

func toPublicPageResponse(page *profile.PublicPage) publicPageResponse {
	p := page.Profile
	items := make([]publicItemResponse, 0, len(p.Items))
	for i := range p.Items {
		it := &p.Items[i]
		items = append(items, publicItemResponse{
			ID:       it.ID.String(),
			Title:    it.Title,
			Brand:    it.Brand,
			Price:    priceString(it),
			Currency: it.Currency,
			ImageURL: it.ImageURL,
			LinkURL:  it.LinkURL,
			Category: it.Category,
		})
	}
	return publicPageResponse{
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		Theme:       string(p.Theme),
		Items:       items,
		Meta: pageMeta{
			Title:       page.Title,
			Description: page.Description,
			ShareURL:    page.ShareURL,
		},
	}
}

// priceString renders the price with exactly two decimals.
func priceString(it *domain.Item) *string {
	if it.Price == nil {
		return nil
	}
	s := it.Price.StringFixed(2)
	return &s
}

package item

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/dripdrop-backend/internal/domain"
	"github.com/heartmarshall/dripdrop-backend/internal/validation"
)

// numeric(12,2)
var maxPrice = decimal.New(1, 10)

// CreateItemInput holds the parameters for creating an item.
// Price is a decimal string such as "49.90".
type CreateItemInput struct {
	Title    string  `json:"title"     validate:"notblank,max=200"`
	Brand    *string `json:"brand"     validate:"omitnil,max=100"`
	Price    *string `json:"price"     validate:"omitnil,max=32"`
	Currency *string `json:"currency"  validate:"omitnil,iso4217"`
	ImageURL *string `json:"image_url" validate:"omitnil,http_url_or_empty,max=2048"`
	LinkURL  string  `json:"link_url"  validate:"required,http_url,max=2048"`
	Category *string `json:"category"  validate:"omitnil,max=100"`
}

func (i *CreateItemInput) normalize() {
	i.Title = domain.NormalizeText(i.Title)
	i.Brand = trimOrNil(i.Brand)
	i.Price = trimOrNil(i.Price)
	i.ImageURL = trimOrNil(i.ImageURL)
	i.LinkURL = strings.TrimSpace(i.LinkURL)
	i.Category = trimOrNil(i.Category)
	if c := trimOrNil(i.Currency); c != nil {
		upper := strings.ToUpper(*c)
		i.Currency = &upper
	} else {
		i.Currency = nil
	}
}

// check validates the struct tags and the price, collecting every field error.
func (i CreateItemInput) check(v *validation.Validator) (*decimal.Decimal, error) {
	errs, err := tagErrors(v, i)
	if err != nil {
		return nil, err
	}

	var price *decimal.Decimal
	if i.Price != nil {
		p, msg := parsePrice(*i.Price)
		if msg != "" {
			errs = append(errs, domain.FieldError{Field: "price", Message: msg})
		}
		price = p
	}

	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return price, nil
}

func (i CreateItemInput) toNewItem(userID uuid.UUID, price *decimal.Decimal) domain.NewItem {
	currency := domain.DefaultCurrency
	if i.Currency != nil {
		currency = *i.Currency
	}
	return domain.NewItem{
		UserID:   userID,
		Title:    i.Title,
		Brand:    i.Brand,
		Price:    price,
		Currency: currency,
		ImageURL: i.ImageURL,
		LinkURL:  i.LinkURL,
		Category: i.Category,
	}
}

// UpdateItemInput is a partial update. A nil field is left untouched; an empty
// string clears brand, price, image_url or category.
type UpdateItemInput struct {
	Title    *string `json:"title"     validate:"omitnil,notblank,max=200"`
	Brand    *string `json:"brand"     validate:"omitnil,max=100"`
	Price    *string `json:"price"     validate:"omitnil,max=32"`
	Currency *string `json:"currency"  validate:"omitnil,iso4217"`
	ImageURL *string `json:"image_url" validate:"omitnil,http_url_or_empty,max=2048"`
	LinkURL  *string `json:"link_url"  validate:"omitnil,http_url,max=2048"`
	Category *string `json:"category"  validate:"omitnil,max=100"`
	IsActive *bool   `json:"is_active"`
}

func (i *UpdateItemInput) normalize() {
	if i.Title != nil {
		t := domain.NormalizeText(*i.Title)
		i.Title = &t
	}
	i.Brand = trimPtr(i.Brand)
	i.Price = trimPtr(i.Price)
	i.ImageURL = trimPtr(i.ImageURL)
	i.LinkURL = trimPtr(i.LinkURL)
	i.Category = trimPtr(i.Category)
	if i.Currency != nil {
		c := strings.ToUpper(strings.TrimSpace(*i.Currency))
		i.Currency = &c
	}
}

func (i UpdateItemInput) check(v *validation.Validator) (domain.ItemChanges, error) {
	changes := domain.ItemChanges{
		Title:    i.Title,
		Brand:    i.Brand,
		Currency: i.Currency,
		ImageURL: i.ImageURL,
		LinkURL:  i.LinkURL,
		Category: i.Category,
		IsActive: i.IsActive,
	}

	errs, err := tagErrors(v, i)
	if err != nil {
		return changes, err
	}

	if i.Price != nil {
		if *i.Price == "" {
			changes.ClearPrice = true
		} else {
			p, msg := parsePrice(*i.Price)
			if msg != "" {
				errs = append(errs, domain.FieldError{Field: "price", Message: msg})
			}
			changes.Price = p
		}
	}

	if len(errs) == 0 && changes.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "body", Message: "at least one field is required"})
	}
	if len(errs) > 0 {
		return changes, domain.NewValidationErrors(errs)
	}
	return changes, nil
}

// ReorderInput lists the caller's item ids in their new display order.
type ReorderInput struct {
	ItemIDs []uuid.UUID `json:"item_ids" validate:"required,min=1,max=1000,unique"`
}

// parsePrice returns the price, or a message describing why s is not one.
func parsePrice(s string) (*decimal.Decimal, string) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, "must be a decimal number"
	}
	if d.IsNegative() {
		return nil, "must not be negative"
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return nil, "must have at most 2 decimal places"
	}
	if d.GreaterThanOrEqual(maxPrice) {
		return nil, "is too large"
	}
	d = d.Round(2)
	return &d, ""
}

// tagErrors runs the struct tag rules and returns their field errors.
func tagErrors(v *validation.Validator, s any) ([]domain.FieldError, error) {
	err := v.Validate(s)
	if err == nil {
		return nil, nil
	}
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}
	return ve.Errors, nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace, keeping an empty result.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

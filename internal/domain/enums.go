package domain

// Theme is the color scheme of a public profile page.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is assigned at signup.
const DefaultTheme = ThemeDark

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight:
		return true
	}
	return false
}

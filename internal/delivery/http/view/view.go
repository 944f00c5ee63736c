// Package view renders the HTML fragments the pages are assembled from.
// Renderers are pure functions over templates parsed once at startup; all
// catalog text passes through html/template escaping.
//
// Fragment contract: cards carry data-game-id (open details) and
// data-wishlist-id (toggle) hooks, status messages carry a millisecond
// data-auto-dismiss attribute, and submit controls carry data-busy-disable
// so the client can lock them while a call is in flight.
package view

import (
	"embed"
	"html/template"
	"strings"

	"gamevault/internal/domain/entity"
	"gamevault/internal/usecase"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templatesFS embed.FS

var tmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// gridData wraps the card list for the grid template.
type gridData struct {
	Cards []*usecase.GameCard
}

// navData carries the session state for the nav fragment. User is nil for
// anonymous visitors.
type navData struct {
	User *entity.User
}

// statusData feeds the transient status message fragment.
type statusData struct {
	Kind string // "success" or "error"
	Text string
}

func render(name string, data any) (string, error) {
	var buf strings.Builder
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "failed to render %s fragment", name)
	}

	return buf.String(), nil
}

// GameCard renders a single catalog card with its wishlist toggle state.
func GameCard(card *usecase.GameCard) (string, error) {
	return render("game_card", card)
}

// GameGrid renders a list of cards as one grid fragment.
func GameGrid(cards []*usecase.GameCard) (string, error) {
	return render("game_grid", gridData{Cards: cards})
}

// GameDetail renders the full record fragment shown in the detail modal.
func GameDetail(card *usecase.GameCard) (string, error) {
	return render("game_detail", card)
}

// WishlistEmpty renders the empty-state fragment for a wishlist page.
func WishlistEmpty() (string, error) {
	return render("wishlist_empty", nil)
}

// Nav renders the navigation fragment. Repeated renders fully replace the
// previous state, so syncing after login or logout is idempotent.
func Nav(user *entity.User) (string, error) {
	return render("nav", navData{User: user})
}

// ProfileView renders the display view of a profile.
func ProfileView(profile *usecase.ProfileView) (string, error) {
	return render("profile_view", profile)
}

// ProfileForm renders the edit form with the raw stored values.
func ProfileForm(form *usecase.ProfileForm) (string, error) {
	return render("profile_form", form)
}

// StatusMessage renders a transient notice that the client auto-dismisses.
func StatusMessage(kind, text string) (string, error) {
	return render("status_message", statusData{Kind: kind, Text: text})
}

package ui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/golangdaddy/rush80/pkg/models"
	"github.com/golangdaddy/rush80/pkg/render"
	"github.com/golangdaddy/rush80/pkg/sim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ShopRow is one line of the shop listing
type ShopRow struct {
	Upgrade models.Upgrade
	Price   int
	Owned   bool
}

// Label formats the row for display
func (r ShopRow) Label() string {
	status := fmt.Sprintf("%d coins", r.Price)
	if r.Owned {
		status = "OWNED"
	}
	return fmt.Sprintf("%-14s %s", r.Upgrade.Title, status)
}

// ShopRows lists every catalogue upgrade that has a price
func ShopRows(progress *models.Progress, prices map[string]int) []ShopRow {
	rows := make([]ShopRow, 0, len(models.Catalogue))
	for _, u := range models.Catalogue {
		price, ok := prices[u.Name]
		if !ok {
			continue
		}
		rows = append(rows, ShopRow{
			Upgrade: u,
			Price:   price,
			Owned:   progress.Inventory.Owns(u.Name),
		})
	}
	return rows
}

// ShopScreen sells upgrades for coins
type ShopScreen struct {
	progress *models.Progress
	prices   map[string]int
	selected int
	message  string
	onBuy    func(name string) error
	onExit   func()
}

// NewShopScreen creates the shop. onBuy performs the purchase, onExit returns to the menu.
func NewShopScreen(progress *models.Progress, prices map[string]int, onBuy func(string) error, onExit func()) *ShopScreen {
	return &ShopScreen{
		progress: progress,
		prices:   prices,
		onBuy:    onBuy,
		onExit:   onExit,
	}
}

// Navigate moves the highlight by dir rows, wrapping
func (ss *ShopScreen) Navigate(dir int) {
	n := len(ShopRows(ss.progress, ss.prices))
	if n == 0 {
		return
	}
	ss.selected = ((ss.selected+dir)%n + n) % n
}

// Purchase buys the highlighted upgrade and records the outcome message
func (ss *ShopScreen) Purchase() {
	rows := ShopRows(ss.progress, ss.prices)
	if ss.selected >= len(rows) || ss.onBuy == nil {
		return
	}
	row := rows[ss.selected]

	err := ss.onBuy(row.Upgrade.Name)
	switch {
	case err == nil:
		ss.message = row.Upgrade.Title + " unlocked!"
	case errors.Is(err, sim.ErrAlreadyOwned):
		ss.message = "Already owned"
	case errors.Is(err, sim.ErrInsufficientCoins):
		ss.message = fmt.Sprintf("Need %d coins", row.Price)
	default:
		ss.message = err.Error()
	}
}

// Message returns the outcome of the last purchase attempt
func (ss *ShopScreen) Message() string {
	return ss.message
}

// Update handles input for the shop
func (ss *ShopScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if ss.onExit != nil {
			ss.onExit()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		ss.Navigate(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		ss.Navigate(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		ss.Purchase()
	}
	return nil
}

// Draw renders the shop
func (ss *ShopScreen) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	screen.Fill(color.RGBA{40, 40, 50, 255})

	render.DrawTextCentered(screen, "GARAGE SHOP", width/2, 60, 3, color.RGBA{255, 200, 0, 255})
	render.DrawTextCentered(screen, fmt.Sprintf("COINS %d", ss.progress.Coins), width/2, 110, 1.5, color.RGBA{200, 200, 200, 255})

	startX := width/2 - 180
	y := 160.0
	for i, row := range ShopRows(ss.progress, ss.prices) {
		c := color.RGBA{200, 200, 200, 255}
		if row.Owned {
			c = color.RGBA{100, 255, 100, 255}
		}
		prefix := "  "
		if i == ss.selected {
			prefix = "> "
			c = color.RGBA{255, 220, 80, 255}
		}
		render.DrawText(screen, prefix+row.Label(), startX, y, 1.5, c)
		render.DrawText(screen, row.Upgrade.Description, startX+24, y+24, 1, color.RGBA{150, 150, 170, 255})
		y += 56
	}

	if ss.message != "" {
		render.DrawTextCentered(screen, ss.message, width/2, y+10, 1.5, color.RGBA{255, 160, 80, 255})
	}

	hint := color.RGBA{150, 150, 200, 255}
	render.DrawText(screen, "ENTER to buy", startX, y+50, 1, hint)
	render.DrawText(screen, "ESCAPE to return to the menu", startX, y+70, 1, hint)
}

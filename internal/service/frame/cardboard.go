package frame

import "frameshop/internal/storage"

type CardboardSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SelectCardboard подбирает самый маленький картон в наличии, который покрывает width x height.
// Запас не добавляется: если нужен зазор, увеличьте размеры перед вызовом.
func SelectCardboard(width, height int, stock []storage.CardboardStock) (storage.CardboardStock, bool) {
	var (
		best  storage.CardboardStock
		found bool
	)

	for _, c := range stock {
		if c.Stock <= 0 || c.Width < width || c.Height < height {
			continue
		}
		if !found || c.Width < best.Width || (c.Width == best.Width && c.Height < best.Height) {
			best = c
			found = true
		}
	}

	return best, found
}

func SelectCardboardSize(width, height int, stock []storage.CardboardStock) (CardboardSize, bool) {
	c, ok := SelectCardboard(width, height, stock)
	if !ok {
		return CardboardSize{}, false
	}
	return CardboardSize{Width: c.Width, Height: c.Height}, true
}

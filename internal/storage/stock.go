package storage

// StretcherBarStock - остаток подрамных реек одной длины и профиля.
type StretcherBarStock struct {
	Length int    `json:"length"`
	Type   string `json:"type"`
	Stock  int    `json:"stock"`
}

type CrossbarStock struct {
	Length int `json:"length"`
	Stock  int `json:"stock"`
}

type CardboardStock struct {
	ID     int64   `json:"id"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Stock  int     `json:"stock"`
	Price  float64 `json:"price"`
}

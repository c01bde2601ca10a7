package model

// Plan describes a pricing tier. Plans are compiled-in constants, never
// stored.
type Plan struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    string   `json:"price"`
	Period   string   `json:"period"`
	Features []string `json:"features"`
	CTA      string   `json:"cta"`
	Popular  bool     `json:"popular"`
}

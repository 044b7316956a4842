package brand

type Tier string

const (
	TierMass    Tier = "mass"
	TierPremium Tier = "premium"
	TierLuxury  Tier = "luxury"
)

// Weight is the ranking bonus of a tier: luxury > premium > mass.
func (t Tier) Weight() float64 {
	switch t {
	case TierLuxury:
		return 2
	case TierPremium:
		return 1
	default:
		return 0
	}
}

func (t Tier) Valid() bool {
	return t == TierMass || t == TierPremium || t == TierLuxury
}

type Brand struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Aliases    []string           `json:"-"`
	Tier       Tier               `json:"tier"`
	Popularity map[string]float64 `json:"-"`
	LogoURL    string             `json:"logo_url"`
	IsActive   bool               `json:"-"`
}

// RegionPopularity returns the popularity score for a region, 0 when the
// region is absent from the map.
func (b Brand) RegionPopularity(region string) float64 {
	return b.Popularity[region]
}

// Summary is the public projection of a catalog brand: no aliases, no
// popularity, no internal tokens.
type Summary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Tier    Tier   `json:"tier"`
	LogoURL string `json:"logo_url,omitempty"`
}

func (b Brand) Summary() Summary {
	return Summary{
		ID:      b.ID,
		Name:    b.Name,
		Tier:    b.Tier,
		LogoURL: b.LogoURL,
	}
}
